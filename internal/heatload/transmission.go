package heatload

import (
	"fmt"

	"github.com/heizwerk/heizlast/internal/model"
)

// ElementResult is the itemized transmission loss of one envelope
// element. The per-element detail (raw and corrected U-value, net area,
// temperature differential) is a first-class output for reporting, not
// just an intermediate.
type ElementResult struct {
	ElementName     string  `json:"element_name"`
	UValue          float64 `json:"u_value_w_m2k"`
	UValueCorrected float64 `json:"u_value_corrected_w_m2k"`
	Area            float64 `json:"area_m2"`
	DeltaTemp       float64 `json:"delta_temp_k"`
	Transmission    float64 `json:"transmission_w"`
}

// elementTransmission applies the transmission formula for one element:
// (U + surcharge) × (area − deduction) × ΔT. The deduction covers
// openings cut out of a wall's gross area.
func elementTransmission(cat *model.Catalog, surcharge float64, elementName, constructionName string, area, deltaTemp, deduction float64) (ElementResult, error) {
	con, err := cat.Construction(constructionName)
	if err != nil {
		return ElementResult{}, fmt.Errorf("element %q: %w", elementName, err)
	}
	corrected := con.UValue + surcharge
	netArea := area - deduction
	return ElementResult{
		ElementName:     elementName,
		UValue:          con.UValue,
		UValueCorrected: corrected,
		Area:            netArea,
		DeltaTemp:       deltaTemp,
		Transmission:    corrected * netArea * deltaTemp,
	}, nil
}

// wallDeltaTemp resolves the temperature differential across a wall.
// External walls face outside; internal walls need an explicitly
// assigned adjacent room temperature.
func wallDeltaTemp(cat *model.Catalog, wall model.Wall, con model.Construction, roomTemp, outsideTemp float64) (float64, error) {
	switch con.ElementType {
	case model.ExternalWall:
		return roomTemp - outsideTemp, nil
	case model.InternalWall:
		if wall.AdjacentRoomTemperature == "" {
			return 0, fmt.Errorf("wall %q: %w", wall.Orientation, ErrMissingAdjacentTemperature)
		}
		adj, err := cat.Temperature(wall.AdjacentRoomTemperature)
		if err != nil {
			return 0, fmt.Errorf("wall %q: %w", wall.Orientation, err)
		}
		return roomTemp - adj.ValueCelsius, nil
	default:
		return 0, fmt.Errorf("wall %q construction %q (%s): %w",
			wall.Orientation, con.Name, con.ElementType, ErrNotWallConstruction)
	}
}

// wallsTransmission computes one result per wall plus one per window and
// door in it. The wall uses its gross area minus the opening areas;
// each opening is computed separately with the wall's own ΔT, because
// openings share the wall's thermal boundary condition.
func wallsTransmission(cat *model.Catalog, surcharge float64, room model.Room, roomTemp, outsideTemp float64) ([]ElementResult, error) {
	grossHeight, err := RoomGrossHeight(cat, room)
	if err != nil {
		return nil, err
	}

	var results []ElementResult
	for _, wall := range room.Walls {
		con, err := cat.Construction(wall.ConstructionName)
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", wall.Orientation, err)
		}
		deltaTemp, err := wallDeltaTemp(cat, wall, con, roomTemp, outsideTemp)
		if err != nil {
			return nil, err
		}
		grossArea, err := WallGrossArea(cat, wall, grossHeight)
		if err != nil {
			return nil, err
		}

		deduction := 0.0
		for _, win := range wall.Windows {
			deduction += win.Area()
		}
		for _, door := range wall.Doors {
			deduction += door.Area()
		}
		if deduction > grossArea {
			return nil, fmt.Errorf("wall %q: openings %.3f m² against gross area %.3f m²: %w",
				wall.Orientation, deduction, grossArea, ErrOpeningsExceedWall)
		}

		wallResult, err := elementTransmission(cat, surcharge, wall.Orientation, wall.ConstructionName, grossArea, deltaTemp, deduction)
		if err != nil {
			return nil, err
		}
		results = append(results, wallResult)

		for _, opening := range append(append([]model.Element{}, wall.Windows...), wall.Doors...) {
			res, err := elementTransmission(cat, surcharge, opening.Name, opening.ConstructionName, opening.Area(), deltaTemp, 0)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

// floorCeilingTransmission computes the floor and ceiling results. Both
// use the room's gross footprint area. An element facing a named zone
// (basement, attic) uses that zone's temperature, otherwise outside.
func floorCeilingTransmission(cat *model.Catalog, surcharge float64, room model.Room, roomTemp, outsideTemp float64) ([]ElementResult, error) {
	if room.Floor == nil && room.Ceiling == nil {
		return nil, nil
	}
	grossArea, err := RoomGrossFootprintArea(cat, room)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", room.Name, err)
	}

	var results []ElementResult
	for _, element := range []*model.Element{room.Floor, room.Ceiling} {
		if element == nil {
			continue
		}
		refTemp := outsideTemp
		if element.AdjacentTemperature != "" {
			adj, err := cat.Temperature(element.AdjacentTemperature)
			if err != nil {
				return nil, fmt.Errorf("element %q: %w", element.Name, err)
			}
			refTemp = adj.ValueCelsius
		}
		res, err := elementTransmission(cat, surcharge, element.Name, element.ConstructionName, grossArea, roomTemp-refTemp, 0)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
