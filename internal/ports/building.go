package ports

import (
	"github.com/heizwerk/heizlast/internal/heatload"
	"github.com/heizwerk/heizlast/internal/model"
)

// BuildingService is the control-plane port used by controllers
// (HTTP/CLI) to read, edit and evaluate the building aggregate.
type BuildingService interface {
	Snapshot() model.Building

	SetName(string) error
	SetThermalBridgeSurcharge(float64) error
	SetOutsideTemperature(string) error
	SetDefaultRoomTemperature(string) error

	UpsertConstruction(model.Construction) error
	RemoveConstruction(string) error
	UpsertTemperature(model.Temperature) error
	RemoveTemperature(string) error

	AddRoom(model.Room) error
	UpdateRoom(string, model.Room) error
	RemoveRoom(string) error

	HeatLoad() ([]heatload.RoomOutcome, error)
	Save() (string, error)
}
