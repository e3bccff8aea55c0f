package bus

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestEmitIsolatesPanickingHandler(t *testing.T) {
	var buf bytes.Buffer
	b := New(log.New(&buf, "", 0))

	calls := 0
	b.On(StateUpdated, func(any) { panic("boom") })
	b.On(StateUpdated, func(any) { calls++ })

	b.Emit(StateUpdated, nil)

	if calls != 1 {
		t.Fatalf("Expected second handler to run once, ran %d times", calls)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected panic to be logged, log was %q", buf.String())
	}
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New(nil)
	var got []string
	offA := b.On(RouteAdded, func(any) { got = append(got, "a") })
	b.On(RouteAdded, func(any) { got = append(got, "b") })

	offA()
	offA()
	b.Emit(RouteAdded, RouteEvent{RouteID: "r1"})

	if len(got) != 1 || got[0] != "b" {
		t.Errorf("Expected only b to run, got %v", got)
	}
	if n := b.Handlers(RouteAdded); n != 1 {
		t.Errorf("Expected 1 handler left, got %d", n)
	}
}

func TestEmitRunsInRegistrationOrder(t *testing.T) {
	b := New(nil)
	var got []int
	for i := 0; i < 4; i++ {
		i := i
		b.On(CooldownUpdated, func(any) { got = append(got, i) })
	}
	b.Emit(CooldownUpdated, CooldownEvent{})
	for i, v := range got {
		if v != i {
			t.Fatalf("Handlers ran out of order: %v", got)
		}
	}
}

func TestEmitWithoutHandlers(t *testing.T) {
	b := New(nil)
	b.Emit(DagList, nil)
	if b.Handlers(DagList) != 0 {
		t.Error("Emit should not register anything")
	}
}

func TestTypedOn(t *testing.T) {
	b := New(nil)
	var got []WaypointEvent
	On(b, WaypointAdded, func(ev WaypointEvent) { got = append(got, ev) })

	b.Emit(WaypointAdded, WaypointEvent{RouteID: "r1", Index: 2})
	b.Emit(WaypointAdded, "not a waypoint event")

	if len(got) != 1 || got[0].Index != 2 {
		t.Errorf("Expected one typed event, got %+v", got)
	}
}

func TestHandlerMayUnsubscribeDuringEmit(t *testing.T) {
	b := New(nil)
	calls := 0
	var off func()
	off = b.On(StoryNodeActive, func(any) {
		calls++
		off()
	})
	b.Emit(StoryNodeActive, nil)
	b.Emit(StoryNodeActive, nil)
	if calls != 1 {
		t.Errorf("Expected a single call, got %d", calls)
	}
}
