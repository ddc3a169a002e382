package editor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/heizwerk/heizlast/internal/model"
	"github.com/heizwerk/heizlast/internal/store"
	"github.com/heizwerk/heizlast/internal/testutil"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return New(testutil.NewBuilding(), t.TempDir(), nil)
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := newTestEditor(t)

	snap := e.Snapshot()
	snap.Name = "Geändert"
	snap.ConstructionCatalog[0].UValue = 99

	if got := e.Snapshot(); got.Name != "Testgebäude" {
		t.Fatalf("editing a snapshot leaked into the aggregate: %q", got.Name)
	}
	if got := e.Snapshot(); got.ConstructionCatalog[0].UValue != 0.24 {
		t.Fatal("editing a snapshot catalog leaked into the aggregate")
	}
}

func TestUpsertConstruction(t *testing.T) {
	e := newTestEditor(t)

	count := len(e.Snapshot().ConstructionCatalog)

	// overwrite an existing entry
	err := e.UpsertConstruction(model.Construction{
		Name: "Außenwand Standard", ElementType: model.ExternalWall, UValue: 0.30, Thickness: testutil.F64(0.40),
	})
	if err != nil {
		t.Fatalf("UpsertConstruction() unexpected error: %v", err)
	}
	snap := e.Snapshot()
	if len(snap.ConstructionCatalog) != count {
		t.Fatalf("overwrite must not grow the catalog: %d -> %d", count, len(snap.ConstructionCatalog))
	}
	if snap.ConstructionCatalog[0].UValue != 0.30 {
		t.Fatalf("UValue=%v want 0.30", snap.ConstructionCatalog[0].UValue)
	}

	// append a new entry
	err = e.UpsertConstruction(model.Construction{
		Name: "Kellerdecke", ElementType: model.Ceiling, UValue: 0.35, Thickness: testutil.F64(0.20),
	})
	if err != nil {
		t.Fatalf("UpsertConstruction() unexpected error: %v", err)
	}
	if got := len(e.Snapshot().ConstructionCatalog); got != count+1 {
		t.Fatalf("catalog size %d want %d", got, count+1)
	}

	// invalid entries are rejected before touching the catalog
	err = e.UpsertConstruction(model.Construction{Name: "Kaputt", ElementType: model.Floor, UValue: 0.3})
	if !errors.Is(err, model.ErrMissingThickness) {
		t.Fatalf("expected ErrMissingThickness, got %v", err)
	}
}

func TestRemoveConstruction(t *testing.T) {
	e := newTestEditor(t)

	if err := e.RemoveConstruction("Haustür"); err != nil {
		t.Fatalf("RemoveConstruction() unexpected error: %v", err)
	}
	err := e.RemoveConstruction("Haustür")
	if !errors.Is(err, model.ErrConstructionNotFound) {
		t.Fatalf("expected ErrConstructionNotFound, got %v", err)
	}
}

func TestTemperatureOperations(t *testing.T) {
	e := newTestEditor(t)

	if err := e.UpsertTemperature(model.Temperature{Name: "Bad", ValueCelsius: 24}); err != nil {
		t.Fatalf("UpsertTemperature() unexpected error: %v", err)
	}
	if err := e.SetOutsideTemperature("Bad"); err != nil {
		t.Fatalf("SetOutsideTemperature() unexpected error: %v", err)
	}

	err := e.SetOutsideTemperature("Gibt es nicht")
	if !errors.Is(err, model.ErrTemperatureNotFound) {
		t.Fatalf("expected ErrTemperatureNotFound, got %v", err)
	}

	if err := e.RemoveTemperature("Bad"); err != nil {
		t.Fatalf("RemoveTemperature() unexpected error: %v", err)
	}
	err = e.RemoveTemperature("Bad")
	if !errors.Is(err, model.ErrTemperatureNotFound) {
		t.Fatalf("expected ErrTemperatureNotFound, got %v", err)
	}
}

func TestRoomOperations(t *testing.T) {
	e := newTestEditor(t)

	if err := e.AddRoom(testutil.NewRoom()); err != nil {
		t.Fatalf("AddRoom() unexpected error: %v", err)
	}

	err := e.AddRoom(testutil.NewRoom())
	if !errors.Is(err, ErrRoomExists) {
		t.Fatalf("expected ErrRoomExists, got %v", err)
	}

	renamed := testutil.NewRoom(func(r *model.Room) { r.Name = "Esszimmer" })
	if err := e.UpdateRoom("Wohnzimmer", renamed); err != nil {
		t.Fatalf("UpdateRoom() unexpected error: %v", err)
	}
	if got := e.Snapshot().Rooms[0].Name; got != "Esszimmer" {
		t.Fatalf("room name %q want %q", got, "Esszimmer")
	}

	err = e.UpdateRoom("Wohnzimmer", renamed)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}

	if err := e.RemoveRoom("Esszimmer"); err != nil {
		t.Fatalf("RemoveRoom() unexpected error: %v", err)
	}
	if got := len(e.Snapshot().Rooms); got != 0 {
		t.Fatalf("rooms remaining: %d", got)
	}
}

func TestSetThermalBridgeSurcharge(t *testing.T) {
	e := newTestEditor(t)

	if err := e.SetThermalBridgeSurcharge(0.1); err != nil {
		t.Fatalf("SetThermalBridgeSurcharge() unexpected error: %v", err)
	}
	err := e.SetThermalBridgeSurcharge(-0.1)
	if !errors.Is(err, model.ErrNegativeSurcharge) {
		t.Fatalf("expected ErrNegativeSurcharge, got %v", err)
	}
}

func TestHeatLoad(t *testing.T) {
	e := newTestEditor(t)
	if err := e.AddRoom(testutil.NewRoom()); err != nil {
		t.Fatal(err)
	}

	outcomes, err := e.HeatLoad()
	if err != nil {
		t.Fatalf("HeatLoad() unexpected error: %v", err)
	}
	if len(outcomes) != 1 || outcomes[0].Err != nil {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}
}

func TestSaveWritesLoadableFile(t *testing.T) {
	dir := t.TempDir()
	e := New(testutil.NewBuilding(), dir, nil)
	if err := e.AddRoom(testutil.NewRoom()); err != nil {
		t.Fatal(err)
	}

	path, err := e.Save()
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("saved outside the session dir: %q", path)
	}

	loaded, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if loaded.Name != "Testgebäude" || len(loaded.Rooms) != 1 {
		t.Fatalf("unexpected loaded building %q with %d rooms", loaded.Name, len(loaded.Rooms))
	}
}
