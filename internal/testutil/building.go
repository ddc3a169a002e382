package testutil

import "github.com/heizwerk/heizlast/internal/model"

// Fixture catalogs and rooms shared by test packages. Put ONLY what
// multiple test packages need here.

func F64(v float64) *float64 { return &v }

// NewBuilding returns a building with a populated catalog and no rooms.
func NewBuilding(opts ...func(*model.Building)) *model.Building {
	b := &model.Building{
		Name: "Testgebäude",
		ConstructionCatalog: []model.Construction{
			{Name: "Außenwand Standard", ElementType: model.ExternalWall, UValue: 0.24, Thickness: F64(0.36)},
			{Name: "Innenwand Standard", ElementType: model.InternalWall, UValue: 0.5, Thickness: F64(0.12)},
			{Name: "Fenster Dreifach", ElementType: model.Window, UValue: 0.8},
			{Name: "Haustür", ElementType: model.Door, UValue: 1.8},
			{Name: "Bodenplatte", ElementType: model.Floor, UValue: 0.3, Thickness: F64(0.25)},
			{Name: "Decke Standard", ElementType: model.Ceiling, UValue: 0.2, Thickness: F64(0.30)},
			{Name: "Keine Wand", ElementType: model.InternalWall, UValue: 0.5, Thickness: F64(0)},
		},
		TemperatureCatalog: []model.Temperature{
			{Name: "Außen", ValueCelsius: -12},
			{Name: "Wohnraum", ValueCelsius: 20},
			{Name: "Keller", ValueCelsius: 10},
			{Name: "Dachboden", ValueCelsius: 5},
		},
		OutsideTemperatureName:     "Außen",
		DefaultRoomTemperatureName: "Wohnraum",
		ThermalBridgeSurcharge:     0.05,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewRoom returns a 5×4 m living room with one external wall holding a
// window, a floor facing the basement and a ceiling facing the attic.
func NewRoom(opts ...func(*model.Room)) model.Room {
	r := model.Room{
		Name:            "Wohnzimmer",
		Areas:           []model.Area{{Length: 5, Width: 4}},
		NetHeight:       2.5,
		TemperatureName: "Wohnraum",
		Ventilation:     model.Ventilation{AirChange: 0.5},
		Walls: []model.Wall{
			{
				Orientation:      "Nord",
				NetLength:        5,
				ConstructionName: "Außenwand Standard",
				LeftAdjacent:     "Außenwand Standard",
				RightAdjacent:    "Außenwand Standard",
				Windows: []model.Element{
					{
						Type:             model.ElementWindow,
						Name:             "Fenster 1",
						ConstructionName: "Fenster Dreifach",
						Width:            F64(1.2),
						Height:           F64(1.5),
					},
				},
			},
		},
		Floor: &model.Element{
			Type:                model.ElementFloor,
			Name:                "Boden",
			ConstructionName:    "Bodenplatte",
			AdjacentTemperature: "Keller",
		},
		Ceiling: &model.Element{
			Type:                model.ElementCeiling,
			Name:                "Decke",
			ConstructionName:    "Decke Standard",
			AdjacentTemperature: "Dachboden",
		},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
