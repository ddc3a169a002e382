package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/heizwerk/heizlast/internal/heatload"
	"github.com/heizwerk/heizlast/internal/model"
)

// PDF writes the heat-load report for one building. Rooms that failed
// to compute are listed with their error instead of numbers.
func PDF(w io.Writer, b model.Building, outcomes []heatload.RoomOutcome) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Heizlast-Report (DIN EN 12831)"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Gebäude: %s", b.Name)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Normaußentemperatur: %s", b.OutsideTemperatureName)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Wärmebrückenzuschlag: %.3f W/(m²·K)", b.ThermalBridgeSurcharge)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Datum: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	totals := BuildingTotals(outcomes)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Gesamtheizlast: %.0f W (%.2f kW)", totals.Total, totals.Total/1000)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Transmission %.0f W, Lüftung %.0f W", totals.Transmission, totals.Ventilation)))
	pdf.Ln(10)

	for _, o := range outcomes {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, tr(o.RoomName))
		pdf.Ln(7)

		if o.Err != nil {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Berechnung fehlgeschlagen: %v", o.Err)), "", "L", false)
			pdf.Ln(3)
			continue
		}

		pdf.SetFont("Helvetica", "", 9)
		for _, e := range o.Result.Elements {
			line := fmt.Sprintf("%-24s U=%.2f (korr. %.2f)  A=%.2f m²  dT=%.1f K  %.1f W",
				e.ElementName, e.UValue, e.UValueCorrected, e.Area, e.DeltaTemp, e.Transmission)
			pdf.Cell(0, 5, tr(line))
			pdf.Ln(5)
		}
		pdf.Cell(0, 5, tr(fmt.Sprintf("%-24s %.1f W", "Lüftung", o.Result.Ventilation)))
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.Cell(0, 5, tr(fmt.Sprintf("%-24s %.1f W", "Summe", o.Result.Total())))
		pdf.Ln(8)
	}

	return pdf.Output(w)
}
