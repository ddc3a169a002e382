// Package editor owns the mutable Building aggregate for one session.
// All writes go through the editor's mutex; the calculation core and
// reports only ever see cloned snapshots. Persistence is an explicit
// Save call, never a side effect of a mutation or a calculation.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heizwerk/heizlast/internal/heatload"
	"github.com/heizwerk/heizlast/internal/model"
	"github.com/heizwerk/heizlast/internal/store"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomExists   = errors.New("room with this name already exists")
)

type Editor struct {
	mu  sync.RWMutex
	b   model.Building
	dir string
	log *slog.Logger
}

// New wraps a loaded or freshly created building. dir is where Save
// writes the JSON document.
func New(b *model.Building, dir string, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	return &Editor{b: b.Clone(), dir: dir, log: log}
}

// Snapshot returns a deep copy of the current aggregate.
func (e *Editor) Snapshot() model.Building {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.b.Clone()
}

func (e *Editor) SetName(name string) error {
	if name == "" {
		return model.ErrMissingName
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.b.Name = name
	return nil
}

func (e *Editor) SetThermalBridgeSurcharge(v float64) error {
	if v < 0 {
		return model.ErrNegativeSurcharge
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.b.ThermalBridgeSurcharge = v
	return nil
}

// SetOutsideTemperature points the building at a catalog temperature.
// The name must resolve now; a dangling reference would only surface
// during calculation.
func (e *Editor) SetOutsideTemperature(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := model.NewCatalog(&e.b).Temperature(name); err != nil {
		return err
	}
	e.b.OutsideTemperatureName = name
	return nil
}

func (e *Editor) SetDefaultRoomTemperature(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := model.NewCatalog(&e.b).Temperature(name); err != nil {
		return err
	}
	e.b.DefaultRoomTemperatureName = name
	return nil
}

// UpsertConstruction replaces the entry with the same name or appends a
// new one. Edits are in place; keeping references valid when renaming is
// the caller's responsibility.
func (e *Editor) UpsertConstruction(c model.Construction) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.b.ConstructionCatalog {
		if existing.Name == c.Name {
			e.b.ConstructionCatalog[i] = c
			return nil
		}
	}
	e.b.ConstructionCatalog = append(e.b.ConstructionCatalog, c)
	return nil
}

func (e *Editor) RemoveConstruction(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.b.ConstructionCatalog {
		if existing.Name == name {
			e.b.ConstructionCatalog = append(e.b.ConstructionCatalog[:i], e.b.ConstructionCatalog[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("construction %q: %w", name, model.ErrConstructionNotFound)
}

func (e *Editor) UpsertTemperature(t model.Temperature) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.b.TemperatureCatalog {
		if existing.Name == t.Name {
			e.b.TemperatureCatalog[i] = t
			return nil
		}
	}
	e.b.TemperatureCatalog = append(e.b.TemperatureCatalog, t)
	return nil
}

func (e *Editor) RemoveTemperature(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.b.TemperatureCatalog {
		if existing.Name == name {
			e.b.TemperatureCatalog = append(e.b.TemperatureCatalog[:i], e.b.TemperatureCatalog[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("temperature %q: %w", name, model.ErrTemperatureNotFound)
}

// ApplySeed merges catalog seed entries, overwriting same-named ones.
func (e *Editor) ApplySeed(constructions []model.Construction, temperatures []model.Temperature) error {
	for _, c := range constructions {
		if err := e.UpsertConstruction(c); err != nil {
			return err
		}
	}
	for _, t := range temperatures {
		if err := e.UpsertTemperature(t); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) AddRoom(r model.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.b.Rooms {
		if existing.Name == r.Name {
			return fmt.Errorf("room %q: %w", r.Name, ErrRoomExists)
		}
	}
	e.b.Rooms = append(e.b.Rooms, r)
	return nil
}

// UpdateRoom replaces the room with the given name; the replacement may
// rename it.
func (e *Editor) UpdateRoom(name string, r model.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.b.Rooms {
		if existing.Name == name {
			e.b.Rooms[i] = r
			return nil
		}
	}
	return fmt.Errorf("room %q: %w", name, ErrRoomNotFound)
}

func (e *Editor) RemoveRoom(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.b.Rooms {
		if existing.Name == name {
			e.b.Rooms = append(e.b.Rooms[:i], e.b.Rooms[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("room %q: %w", name, ErrRoomNotFound)
}

// HeatLoad computes the building heat load over a snapshot of the
// aggregate.
func (e *Editor) HeatLoad() ([]heatload.RoomOutcome, error) {
	snapshot := e.Snapshot()
	return heatload.BuildingHeatLoad(&snapshot)
}

// Save writes the aggregate to its JSON file and returns the path.
func (e *Editor) Save() (string, error) {
	snapshot := e.Snapshot()
	path, err := store.Save(e.dir, &snapshot)
	if err != nil {
		return "", err
	}
	e.log.Info("building saved", "path", path, "rooms", len(snapshot.Rooms))
	return path, nil
}
