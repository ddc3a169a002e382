package heatload

import (
	"errors"
	"reflect"
	"testing"

	"github.com/heizwerk/heizlast/internal/model"
	"github.com/heizwerk/heizlast/internal/testutil"
)

func TestRoomHeatLoad(t *testing.T) {
	b := testutil.NewBuilding()
	room := testutil.NewRoom()

	result, err := RoomHeatLoad(b, room, -12)
	if err != nil {
		t.Fatalf("RoomHeatLoad() unexpected error: %v", err)
	}

	if result.RoomName != "Wohnzimmer" {
		t.Fatalf("RoomName=%q want %q", result.RoomName, "Wohnzimmer")
	}

	names := make(map[string]bool)
	for _, e := range result.Elements {
		names[e.ElementName] = true
	}
	for _, want := range []string{"Nord", "Fenster 1", "Boden", "Decke"} {
		if !names[want] {
			t.Fatalf("missing element %q in breakdown %v", want, names)
		}
	}

	assertApprox(t, result.Ventilation, 272)

	// The room total must equal the sum of the reported parts, verified
	// by summation rather than a hardcoded figure.
	sum := 0.0
	for _, e := range result.Elements {
		sum += e.Transmission
	}
	assertApprox(t, result.TransmissionTotal(), sum)
	assertApprox(t, result.Total(), sum+result.Ventilation)
}

func TestRoomHeatLoadIsIdempotent(t *testing.T) {
	b := testutil.NewBuilding()
	room := testutil.NewRoom()

	first, err := RoomHeatLoad(b, room, -12)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := RoomHeatLoad(b, room, -12)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between identical calls:\n%+v\n%+v", first, second)
	}
}

func TestRoomHeatLoadMissingRoomTemperature(t *testing.T) {
	b := testutil.NewBuilding()
	room := testutil.NewRoom(func(r *model.Room) { r.TemperatureName = "" })

	_, err := RoomHeatLoad(b, room, -12)
	if !errors.Is(err, ErrMissingRoomTemperature) {
		t.Fatalf("expected ErrMissingRoomTemperature, got %v", err)
	}
}

func TestRoomHeatLoadUnresolvedRoomTemperature(t *testing.T) {
	// An unresolved name must fail loudly, never silently fall back to a
	// default room temperature.
	b := testutil.NewBuilding()
	room := testutil.NewRoom(func(r *model.Room) { r.TemperatureName = "Gibt es nicht" })

	_, err := RoomHeatLoad(b, room, -12)
	if !errors.Is(err, model.ErrTemperatureNotFound) {
		t.Fatalf("expected ErrTemperatureNotFound, got %v", err)
	}
}

func TestBuildingHeatLoad(t *testing.T) {
	b := testutil.NewBuilding()
	b.Rooms = []model.Room{
		testutil.NewRoom(),
		testutil.NewRoom(func(r *model.Room) { r.Name = "Schlafzimmer" }),
	}

	outcomes, err := BuildingHeatLoad(b)
	if err != nil {
		t.Fatalf("BuildingHeatLoad() unexpected error: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	// insertion order, no sorting
	if outcomes[0].RoomName != "Wohnzimmer" || outcomes[1].RoomName != "Schlafzimmer" {
		t.Fatalf("unexpected order: %q, %q", outcomes[0].RoomName, outcomes[1].RoomName)
	}
	for _, o := range outcomes {
		if o.Err != nil {
			t.Fatalf("room %q failed: %v", o.RoomName, o.Err)
		}
		if o.Result.Total() <= 0 {
			t.Fatalf("room %q total %v, want > 0", o.RoomName, o.Result.Total())
		}
	}
}

func TestBuildingHeatLoadIsolatesBrokenRoom(t *testing.T) {
	b := testutil.NewBuilding()
	b.Rooms = []model.Room{
		testutil.NewRoom(),
		testutil.NewRoom(func(r *model.Room) {
			r.Name = "Kaputt"
			r.Walls[0].ConstructionName = "Gibt es nicht"
		}),
		testutil.NewRoom(func(r *model.Room) { r.Name = "Küche" }),
	}

	outcomes, err := BuildingHeatLoad(b)
	if err != nil {
		t.Fatalf("BuildingHeatLoad() unexpected error: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}

	if outcomes[0].Err != nil || outcomes[2].Err != nil {
		t.Fatalf("healthy rooms must not fail: %v, %v", outcomes[0].Err, outcomes[2].Err)
	}
	if outcomes[1].Err == nil {
		t.Fatal("broken room must carry its error")
	}
	if !errors.Is(outcomes[1].Err, model.ErrConstructionNotFound) {
		t.Fatalf("expected ErrConstructionNotFound, got %v", outcomes[1].Err)
	}
	if outcomes[1].Result != nil {
		t.Fatal("broken room must not carry a partial result")
	}
}

func TestBuildingHeatLoadMissingOutsideTemperature(t *testing.T) {
	b := testutil.NewBuilding(func(b *model.Building) { b.OutsideTemperatureName = "" })
	b.Rooms = []model.Room{testutil.NewRoom()}

	_, err := BuildingHeatLoad(b)
	if !errors.Is(err, ErrMissingOutsideTemperature) {
		t.Fatalf("expected ErrMissingOutsideTemperature, got %v", err)
	}
}

func TestBuildingHeatLoadUnresolvedOutsideTemperature(t *testing.T) {
	b := testutil.NewBuilding(func(b *model.Building) { b.OutsideTemperatureName = "Sibirien" })
	b.Rooms = []model.Room{testutil.NewRoom()}

	_, err := BuildingHeatLoad(b)
	if !errors.Is(err, ErrMissingOutsideTemperature) {
		t.Fatalf("expected ErrMissingOutsideTemperature, got %v", err)
	}
	// the catalog miss stays inspectable through the wrap
	if !errors.Is(err, model.ErrTemperatureNotFound) {
		t.Fatalf("expected ErrTemperatureNotFound in chain, got %v", err)
	}
}
