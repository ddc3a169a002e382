// Package heatload computes steady-state room-by-room heating loads per
// DIN EN 12831: transmission losses through the building envelope plus
// ventilation losses from air exchange. Every function is a pure
// projection over an immutable Building snapshot; nothing here mutates
// the data model or performs I/O.
package heatload

import (
	"fmt"

	"github.com/heizwerk/heizlast/internal/model"
)

// RoomResult is the heat load of one room with its itemized per-element
// transmission breakdown.
type RoomResult struct {
	RoomName    string          `json:"room_name"`
	Elements    []ElementResult `json:"element_transmissions"`
	Ventilation float64         `json:"ventilation_w"`
}

// TransmissionTotal sums the per-element transmissions.
func (r RoomResult) TransmissionTotal() float64 {
	total := 0.0
	for _, e := range r.Elements {
		total += e.Transmission
	}
	return total
}

// Total is transmission plus ventilation.
func (r RoomResult) Total() float64 {
	return r.TransmissionTotal() + r.Ventilation
}

// RoomOutcome pairs a room with either its result or the error that
// broke its calculation. A room with corrupt data fails distinctly
// instead of zeroing out or aborting the whole building.
type RoomOutcome struct {
	RoomName string
	Result   *RoomResult
	Err      error
}

// RoomHeatLoad computes one room against the given outside temperature.
// The room's own temperature is resolved from the catalog and missing
// entries propagate as errors; no default temperature is ever
// substituted.
func RoomHeatLoad(b *model.Building, room model.Room, outsideTemp float64) (*RoomResult, error) {
	return roomHeatLoad(model.NewCatalog(b), b.ThermalBridgeSurcharge, room, outsideTemp)
}

func roomHeatLoad(cat *model.Catalog, surcharge float64, room model.Room, outsideTemp float64) (*RoomResult, error) {
	if room.TemperatureName == "" {
		return nil, fmt.Errorf("room %q: %w", room.Name, ErrMissingRoomTemperature)
	}
	roomTemp, err := cat.Temperature(room.TemperatureName)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", room.Name, err)
	}

	walls, err := wallsTransmission(cat, surcharge, room, roomTemp.ValueCelsius, outsideTemp)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", room.Name, err)
	}
	floorCeiling, err := floorCeilingTransmission(cat, surcharge, room, roomTemp.ValueCelsius, outsideTemp)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", room.Name, err)
	}

	return &RoomResult{
		RoomName:    room.Name,
		Elements:    append(walls, floorCeiling...),
		Ventilation: VentilationLoss(room, roomTemp.ValueCelsius, outsideTemp),
	}, nil
}

// BuildingHeatLoad maps the room calculation over every room using the
// building's outside temperature. Outcomes keep room insertion order;
// a failing room carries its error while the remaining rooms still
// compute.
func BuildingHeatLoad(b *model.Building) ([]RoomOutcome, error) {
	cat := model.NewCatalog(b)
	if b.OutsideTemperatureName == "" {
		return nil, ErrMissingOutsideTemperature
	}
	outside, err := cat.Temperature(b.OutsideTemperatureName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingOutsideTemperature, err)
	}

	outcomes := make([]RoomOutcome, 0, len(b.Rooms))
	for _, room := range b.Rooms {
		result, err := roomHeatLoad(cat, b.ThermalBridgeSurcharge, room, outside.ValueCelsius)
		outcomes = append(outcomes, RoomOutcome{RoomName: room.Name, Result: result, Err: err})
	}
	return outcomes, nil
}
