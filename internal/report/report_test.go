package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/heizwerk/heizlast/internal/heatload"
	"github.com/heizwerk/heizlast/internal/model"
	"github.com/heizwerk/heizlast/internal/testutil"
)

func computedOutcomes(t *testing.T) (model.Building, []heatload.RoomOutcome) {
	t.Helper()

	b := testutil.NewBuilding()
	b.Rooms = []model.Room{
		testutil.NewRoom(),
		testutil.NewRoom(func(r *model.Room) { r.Name = "Schlafzimmer" }),
	}

	outcomes, err := heatload.BuildingHeatLoad(b)
	if err != nil {
		t.Fatalf("BuildingHeatLoad() unexpected error: %v", err)
	}
	return *b, outcomes
}

func TestBuildingTotals(t *testing.T) {
	_, outcomes := computedOutcomes(t)
	outcomes = append(outcomes, heatload.RoomOutcome{RoomName: "Kaputt", Err: errors.New("boom")})

	totals := BuildingTotals(outcomes)

	want := 0.0
	for _, o := range outcomes[:2] {
		want += o.Result.Total()
	}
	if totals.Total != want {
		t.Fatalf("Total=%v want %v", totals.Total, want)
	}
	if totals.Total != totals.Transmission+totals.Ventilation {
		t.Fatalf("Total %v != Transmission %v + Ventilation %v", totals.Total, totals.Transmission, totals.Ventilation)
	}
	if totals.Failed != 1 {
		t.Fatalf("Failed=%d want 1", totals.Failed)
	}
}

func TestPDF(t *testing.T) {
	b, outcomes := computedOutcomes(t)
	outcomes = append(outcomes, heatload.RoomOutcome{RoomName: "Kaputt", Err: errors.New("boom")})

	var buf bytes.Buffer
	if err := PDF(&buf, b, outcomes); err != nil {
		t.Fatalf("PDF() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}

func TestXLSX(t *testing.T) {
	b, outcomes := computedOutcomes(t)

	var buf bytes.Buffer
	if err := XLSX(&buf, b, outcomes); err != nil {
		t.Fatalf("XLSX() unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	room, err := f.GetCellValue(overviewSheet, "A2")
	if err != nil {
		t.Fatal(err)
	}
	if room != "Wohnzimmer" {
		t.Fatalf("A2=%q want %q", room, "Wohnzimmer")
	}

	rows, err := f.GetRows(elementsSheet)
	if err != nil {
		t.Fatal(err)
	}
	// header + 4 elements per room × 2 rooms
	if len(rows) != 9 {
		t.Fatalf("element rows=%d want 9", len(rows))
	}
	if rows[1][1] != "Nord" {
		t.Fatalf("first element %q want %q", rows[1][1], "Nord")
	}
}

func TestXLSXMarksFailedRoom(t *testing.T) {
	b, outcomes := computedOutcomes(t)
	outcomes = append(outcomes, heatload.RoomOutcome{RoomName: "Kaputt", Err: errors.New("boom")})

	var buf bytes.Buffer
	if err := XLSX(&buf, b, outcomes); err != nil {
		t.Fatalf("XLSX() unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	msg, err := f.GetCellValue(overviewSheet, "B4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(msg, "Fehler:") {
		t.Fatalf("B4=%q, expected failure marker", msg)
	}
}
