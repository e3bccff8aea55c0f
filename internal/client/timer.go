package client

import (
	"context"
	"sync"
	"time"

	"LightSpeedDuelClient/internal/bus"
	"LightSpeedDuelClient/internal/game"
)

const defaultCooldownInterval = 250 * time.Millisecond

// CooldownTimer re-publishes the launch cooldown between snapshots so a
// countdown can tick smoothly.
type CooldownTimer struct {
	m        *Manager
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

func NewCooldownTimer(m *Manager, interval time.Duration) *CooldownTimer {
	if interval <= 0 {
		interval = defaultCooldownInterval
	}
	return &CooldownTimer{m: m, interval: interval}
}

// Start begins ticking until ctx is done or Stop is called. Calling Start on
// a running timer does nothing.
func (t *CooldownTimer) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.stopped = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.tick()
			}
		}
	}(t.stopped)
}

// Stop halts the timer and waits for the ticking goroutine to exit.
func (t *CooldownTimer) Stop() {
	t.mu.Lock()
	cancel, stopped := t.cancel, t.stopped
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

// tick emits under the state lock like every other bus event, so handlers
// see one consistent rule.
func (t *CooldownTimer) tick() {
	t.m.WithState(func(state *game.AppState) {
		remaining := cooldownRemaining(state, t.m.Clock())
		t.m.Bus().Emit(bus.CooldownUpdated, bus.CooldownEvent{SecondsRemaining: remaining})
	})
}
