// Package model holds the building data model for the DIN EN 12831
// heating load calculation: reusable catalogs of construction assemblies
// and reference temperatures, plus the room/wall/element geometry that
// references them by name.
package model

import "fmt"

// Construction is a reusable thermal assembly in the building catalog.
// Thickness is present exactly for wall, floor and ceiling types;
// windows and doors are net openings without one.
type Construction struct {
	Name        string           `json:"name"`
	ElementType ConstructionType `json:"element_type"`
	UValue      float64          `json:"u_value_w_m2k"`
	Thickness   *float64         `json:"thickness_m,omitempty"`
}

func (c Construction) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("construction: %w", ErrMissingName)
	}
	if !c.ElementType.Valid() {
		return fmt.Errorf("construction %q: %w", c.Name, ErrInvalidConstructionType)
	}
	if c.UValue <= 0 {
		return fmt.Errorf("construction %q: %w", c.Name, ErrInvalidUValue)
	}
	if c.ElementType.RequiresThickness() {
		if c.Thickness == nil {
			return fmt.Errorf("construction %q (%s): %w", c.Name, c.ElementType, ErrMissingThickness)
		}
		if *c.Thickness < 0 {
			return fmt.Errorf("construction %q: %w", c.Name, ErrNegativeThickness)
		}
	} else if c.Thickness != nil {
		return fmt.Errorf("construction %q (%s): %w", c.Name, c.ElementType, ErrUnexpectedThickness)
	}
	return nil
}

// Temperature is a named reference temperature (e.g. "Außen", "Keller").
type Temperature struct {
	Name         string  `json:"name"`
	ValueCelsius float64 `json:"value_celsius"`
}

func (t Temperature) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("temperature: %w", ErrMissingName)
	}
	return nil
}

// Ventilation holds the air change rate n for a room, in 1/h.
type Ventilation struct {
	AirChange float64 `json:"air_change_1_h"`
}

func (v Ventilation) Validate() error {
	if v.AirChange < 0 {
		return ErrNegativeAirChange
	}
	return nil
}

// Area is one rectangle of a room footprint. Rooms with L-shaped plans
// are composed of several. The four adjacency names are part of the
// persisted shape; the canonical gross-area derivation works from the
// room's walls instead (see the heatload package).
type Area struct {
	Length         float64 `json:"length_m"`
	Width          float64 `json:"width_m"`
	LeftAdjacent   string  `json:"left_adjacent_name,omitempty"`
	TopAdjacent    string  `json:"top_adjacent_name,omitempty"`
	RightAdjacent  string  `json:"right_adjacent_name,omitempty"`
	BottomAdjacent string  `json:"bottom_adjacent_name,omitempty"`
}

// NetArea is length × width.
func (a Area) NetArea() float64 {
	return a.Length * a.Width
}

func (a Area) Validate() error {
	if a.Length < 0 || a.Width < 0 {
		return ErrNegativeArea
	}
	return nil
}

// Element is a concrete envelope instance: a window or door in a wall,
// or a room's floor or ceiling. It references its assembly by catalog
// name. AdjacentTemperature names the zone a floor/ceiling faces
// (basement, attic); empty means it faces outside.
type Element struct {
	Type                ElementType `json:"type"`
	Name                string      `json:"name"`
	ConstructionName    string      `json:"construction_name"`
	Width               *float64    `json:"width_m,omitempty"`
	Height              *float64    `json:"height_m,omitempty"`
	AdjacentTemperature string      `json:"adjacent_temperature_name,omitempty"`
}

// Area is width × height for windows and doors, 0 otherwise.
func (e Element) Area() float64 {
	if e.Width != nil && e.Height != nil {
		return *e.Width * *e.Height
	}
	return 0
}

func (e Element) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("element: %w", ErrMissingName)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("element %q: %w", e.Name, ErrInvalidElementType)
	}
	if e.ConstructionName == "" {
		return fmt.Errorf("element %q: construction %w", e.Name, ErrMissingName)
	}
	if e.Type.RequiresDimensions() {
		if e.Width == nil || e.Height == nil {
			return fmt.Errorf("element %q (%s): %w", e.Name, e.Type, ErrMissingDimensions)
		}
		if *e.Width <= 0 || *e.Height <= 0 {
			return fmt.Errorf("element %q: %w", e.Name, ErrInvalidDimensions)
		}
	}
	return nil
}

// Wall is one wall of a room. Orientation is a label ("Nord", "Süd 1"),
// not necessarily unique per compass direction. LeftAdjacent and
// RightAdjacent name the neighboring wall assemblies used for the
// gross-length derivation. AdjacentRoomTemperature is required when the
// wall's construction is an internal wall.
type Wall struct {
	Orientation             string    `json:"orientation"`
	NetLength               float64   `json:"net_length_m"`
	ConstructionName        string    `json:"construction_name"`
	Windows                 []Element `json:"windows"`
	Doors                   []Element `json:"doors"`
	LeftAdjacent            string    `json:"left_adjacent_name"`
	RightAdjacent           string    `json:"right_adjacent_name"`
	AdjacentRoomTemperature string    `json:"adjacent_room_temperature_name,omitempty"`
}

func (w Wall) Validate() error {
	if w.NetLength <= 0 {
		return fmt.Errorf("wall %q: %w", w.Orientation, ErrInvalidWallLength)
	}
	if w.ConstructionName == "" {
		return fmt.Errorf("wall %q: construction %w", w.Orientation, ErrMissingName)
	}
	for _, win := range w.Windows {
		if err := win.Validate(); err != nil {
			return fmt.Errorf("wall %q: %w", w.Orientation, err)
		}
	}
	for _, door := range w.Doors {
		if err := door.Validate(); err != nil {
			return fmt.Errorf("wall %q: %w", w.Orientation, err)
		}
	}
	return nil
}

// Room is a conditioned space: footprint rectangles, walls, at most one
// floor and one ceiling element, a named room temperature and a
// ventilation rate.
type Room struct {
	Name            string      `json:"name"`
	Areas           []Area      `json:"areas"`
	NetHeight       float64     `json:"net_height_m"`
	TemperatureName string      `json:"room_temperature_name,omitempty"`
	Walls           []Wall      `json:"walls"`
	Floor           *Element    `json:"floor,omitempty"`
	Ceiling         *Element    `json:"ceiling,omitempty"`
	Ventilation     Ventilation `json:"ventilation"`
}

// NetFloorArea is the sum of the footprint rectangle areas.
func (r Room) NetFloorArea() float64 {
	total := 0.0
	for _, a := range r.Areas {
		total += a.NetArea()
	}
	return total
}

// NetVolume is the net footprint area times the net height.
func (r Room) NetVolume() float64 {
	return r.NetFloorArea() * r.NetHeight
}

func (r Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("room: %w", ErrMissingName)
	}
	if r.NetHeight <= 0 {
		return fmt.Errorf("room %q: %w", r.Name, ErrInvalidRoomHeight)
	}
	for _, a := range r.Areas {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	for _, w := range r.Walls {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	if r.Floor != nil {
		if err := r.Floor.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	if r.Ceiling != nil {
		if err := r.Ceiling.Validate(); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	if err := r.Ventilation.Validate(); err != nil {
		return fmt.Errorf("room %q: %w", r.Name, err)
	}
	return nil
}

// Building is the root aggregate: catalogs, global parameters and rooms.
// The calculation core treats a Building value as an immutable snapshot.
type Building struct {
	Name                       string         `json:"name"`
	TemperatureCatalog         []Temperature  `json:"temperature_catalog"`
	ConstructionCatalog        []Construction `json:"construction_catalog"`
	OutsideTemperatureName     string         `json:"outside_temperature_name,omitempty"`
	DefaultRoomTemperatureName string         `json:"default_room_temperature_name,omitempty"`
	ThermalBridgeSurcharge     float64        `json:"thermal_bridge_surcharge"`
	Rooms                      []Room         `json:"rooms"`
}

func (b Building) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("building: %w", ErrMissingName)
	}
	if b.ThermalBridgeSurcharge < 0 {
		return fmt.Errorf("building %q: %w", b.Name, ErrNegativeSurcharge)
	}
	for _, t := range b.TemperatureCatalog {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, c := range b.ConstructionCatalog {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, r := range b.Rooms {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
