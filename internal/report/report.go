// Package report renders the building heat-load results as PDF and XLSX
// documents: a per-room overview with building totals plus the itemized
// per-element breakdown.
package report

import (
	"github.com/heizwerk/heizlast/internal/heatload"
)

// Totals aggregates the building-wide figures over all computed rooms.
// Failed counts rooms whose calculation carried an error; their loads
// are not part of the sums.
type Totals struct {
	Transmission float64
	Ventilation  float64
	Total        float64
	Failed       int
}

func BuildingTotals(outcomes []heatload.RoomOutcome) Totals {
	var t Totals
	for _, o := range outcomes {
		if o.Err != nil {
			t.Failed++
			continue
		}
		t.Transmission += o.Result.TransmissionTotal()
		t.Ventilation += o.Result.Ventilation
		t.Total += o.Result.Total()
	}
	return t
}
