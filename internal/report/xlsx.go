package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/heizwerk/heizlast/internal/heatload"
	"github.com/heizwerk/heizlast/internal/model"
)

const (
	overviewSheet = "Heizlast"
	elementsSheet = "Elemente"
)

// XLSX writes the heat-load report as a workbook with a per-room
// overview sheet and an itemized element sheet.
func XLSX(w io.Writer, b model.Building, outcomes []heatload.RoomOutcome) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", overviewSheet)
	if _, err := f.NewSheet(elementsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	overviewHeader := []any{"Raum", "Transmission [W]", "Lüftung [W]", "Gesamt [W]", "Gesamt [kW]"}
	if err := setRow(f, overviewSheet, 1, overviewHeader); err != nil {
		return err
	}

	row := 2
	for _, o := range outcomes {
		var cells []any
		if o.Err != nil {
			cells = []any{o.RoomName, fmt.Sprintf("Fehler: %v", o.Err), "", "", ""}
		} else {
			cells = []any{
				o.RoomName,
				o.Result.TransmissionTotal(),
				o.Result.Ventilation,
				o.Result.Total(),
				o.Result.Total() / 1000,
			}
		}
		if err := setRow(f, overviewSheet, row, cells); err != nil {
			return err
		}
		row++
	}

	totals := BuildingTotals(outcomes)
	totalCells := []any{b.Name, totals.Transmission, totals.Ventilation, totals.Total, totals.Total / 1000}
	if err := setRow(f, overviewSheet, row+1, totalCells); err != nil {
		return err
	}

	elementsHeader := []any{"Raum", "Element", "U [W/m²K]", "U korr. [W/m²K]", "Fläche [m²]", "ΔT [K]", "Transmission [W]"}
	if err := setRow(f, elementsSheet, 1, elementsHeader); err != nil {
		return err
	}
	row = 2
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		for _, e := range o.Result.Elements {
			cells := []any{o.RoomName, e.ElementName, e.UValue, e.UValueCorrected, e.Area, e.DeltaTemp, e.Transmission}
			if err := setRow(f, elementsSheet, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("set row %d on %s: %w", row, sheet, err)
	}
	return nil
}
