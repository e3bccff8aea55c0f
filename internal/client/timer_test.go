package client

import (
	"context"
	"math"
	"testing"
	"time"

	"LightSpeedDuelClient/internal/bus"
	pb "LightSpeedDuelClient/internal/proto/ws"
)

func TestCooldownTimerTicks(t *testing.T) {
	clk := &fakeClock{ms: 1000}
	m := NewManager(Options{URL: "ws://unused", Clock: clk, Logger: quietLogger})
	m.HandleFrame(mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_StateUpdate{StateUpdate: &pb.StateUpdate{
		Now:              10,
		NextMissileReady: 12,
	}}}))

	ticks := make(chan float64, 16)
	bus.On(m.Bus(), bus.CooldownUpdated, func(ev bus.CooldownEvent) {
		select {
		case ticks <- ev.SecondsRemaining:
		default:
		}
	})

	timer := NewCooldownTimer(m, 5*time.Millisecond)
	timer.Start(context.Background())
	timer.Start(context.Background())

	if got := waitFor(t, ticks, "cooldown tick"); math.Abs(got-2) > 1e-9 {
		t.Errorf("Expected 2s remaining, got %.3f", got)
	}
	timer.Stop()
	timer.Stop()
}

func TestCooldownTimerTickAfterReady(t *testing.T) {
	clk := &fakeClock{ms: 1000}
	m := NewManager(Options{URL: "ws://unused", Clock: clk, Logger: quietLogger})
	m.HandleFrame(mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_StateUpdate{StateUpdate: &pb.StateUpdate{
		Now:              10,
		NextMissileReady: 12,
	}}}))

	var got []float64
	bus.On(m.Bus(), bus.CooldownUpdated, func(ev bus.CooldownEvent) { got = append(got, ev.SecondsRemaining) })

	timer := NewCooldownTimer(m, 0)
	clk.ms += 500
	timer.tick()
	clk.ms += 5000
	timer.tick()

	if len(got) != 2 || math.Abs(got[0]-1.5) > 1e-9 || got[1] != 0 {
		t.Errorf("Expected [1.5 0], got %v", got)
	}
}

func TestCooldownTimerStopsWithContext(t *testing.T) {
	m := NewManager(Options{URL: "ws://unused", Logger: quietLogger})
	timer := NewCooldownTimer(m, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	timer.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		timer.Stop()
		close(done)
	}()
	waitFor(t, done, "timer stop")
}
