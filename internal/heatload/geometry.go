package heatload

import (
	"fmt"

	"github.com/heizwerk/heizlast/internal/model"
)

// AdjacentThickness returns the thickness a construction contributes to
// a neighboring element's gross dimension. External walls sit entirely
// outside the net measurement and contribute their full thickness;
// internal walls, floors and ceilings are shared between two spaces and
// contribute half. Windows and doors are net openings without adjacency
// geometry, so querying them is an error.
func AdjacentThickness(c model.Construction) (float64, error) {
	switch c.ElementType {
	case model.ExternalWall:
		return derefThickness(c), nil
	case model.InternalWall, model.Floor, model.Ceiling:
		return derefThickness(c) / 2, nil
	case model.Window, model.Door:
		return 0, fmt.Errorf("construction %q (%s): %w", c.Name, c.ElementType, ErrNoAdjacentThickness)
	default:
		return 0, fmt.Errorf("construction %q: %w", c.Name, model.ErrInvalidConstructionType)
	}
}

func derefThickness(c model.Construction) float64 {
	if c.Thickness == nil {
		return 0
	}
	return *c.Thickness
}

func adjacentThicknessByName(cat *model.Catalog, name string) (float64, error) {
	con, err := cat.Construction(name)
	if err != nil {
		return 0, err
	}
	return AdjacentThickness(con)
}

// WallGrossLength expands the wall's net length outward by the adjacency
// contribution of both neighboring wall assemblies.
func WallGrossLength(cat *model.Catalog, wall model.Wall) (float64, error) {
	left, err := adjacentThicknessByName(cat, wall.LeftAdjacent)
	if err != nil {
		return 0, fmt.Errorf("wall %q left neighbor: %w", wall.Orientation, err)
	}
	right, err := adjacentThicknessByName(cat, wall.RightAdjacent)
	if err != nil {
		return 0, fmt.Errorf("wall %q right neighbor: %w", wall.Orientation, err)
	}
	return wall.NetLength + left + right, nil
}

// RoomGrossHeight is the room's net height plus the full thickness of
// its ceiling assembly, or the net height when no ceiling is assigned.
func RoomGrossHeight(cat *model.Catalog, room model.Room) (float64, error) {
	if room.Ceiling == nil {
		return room.NetHeight, nil
	}
	con, err := cat.Construction(room.Ceiling.ConstructionName)
	if err != nil {
		return 0, fmt.Errorf("room %q ceiling: %w", room.Name, err)
	}
	return room.NetHeight + derefThickness(con), nil
}

// WallGrossArea is gross length × gross height. The gross height comes
// from the room so every wall of a room uses the same value.
func WallGrossArea(cat *model.Catalog, wall model.Wall, grossHeight float64) (float64, error) {
	length, err := WallGrossLength(cat, wall)
	if err != nil {
		return 0, err
	}
	return length * grossHeight, nil
}

// RoomGrossFootprintArea derives the gross floor/ceiling area with the
// perimeter strip method: the net footprint plus, per wall, a strip
// (net length + neighbor contributions) × wall thickness. Each corner is
// covered half by each of its two walls, so corners are counted exactly
// once in total. The result depends only on the wall assemblies, never
// on the floor or ceiling construction itself, which is why a room's
// gross floor and gross ceiling areas are always identical.
func RoomGrossFootprintArea(cat *model.Catalog, room model.Room) (float64, error) {
	area := room.NetFloorArea()
	for _, wall := range room.Walls {
		con, err := cat.Construction(wall.ConstructionName)
		if err != nil {
			return 0, fmt.Errorf("wall %q: %w", wall.Orientation, err)
		}
		if !con.ElementType.WallType() {
			return 0, fmt.Errorf("wall %q construction %q (%s): %w",
				wall.Orientation, con.Name, con.ElementType, ErrNotWallConstruction)
		}
		stripLength, err := WallGrossLength(cat, wall)
		if err != nil {
			return 0, err
		}
		area += stripLength * derefThickness(con)
	}
	return area, nil
}
