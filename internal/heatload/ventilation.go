package heatload

import "github.com/heizwerk/heizlast/internal/model"

// AirHeatCapacity is the volumetric heat capacity of air in Wh/(m³·K),
// ≈ ρ_air·cp_air / 3600.
const AirHeatCapacity = 0.34

// VentilationLoss is the air-exchange heat loss of a room:
// Qv = 0.34 × n × V × ΔT, with V the net room volume. An air change
// rate of zero yields exactly zero; no minimum is imposed.
func VentilationLoss(room model.Room, roomTemp, outsideTemp float64) float64 {
	return AirHeatCapacity * room.Ventilation.AirChange * room.NetVolume() * (roomTemp - outsideTemp)
}
