package game

import "time"

// Clock supplies a monotonic millisecond timestamp.
type Clock interface {
	NowMs() float64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() float64

func (f ClockFunc) NowMs() float64 {
	return f()
}

var processStart = time.Now()

// MonotonicClock reads Go's monotonic clock, so wall-clock adjustments never
// move it.
var MonotonicClock Clock = ClockFunc(func() float64 {
	return float64(time.Since(processStart)) / float64(time.Millisecond)
})

func clockOrDefault(clk Clock) Clock {
	if clk == nil {
		return MonotonicClock
	}
	return clk
}

// SyncClock records that the server reported simulation time now at this
// instant.
func SyncClock(s *AppState, now float64, clk Clock) {
	s.Now = now
	s.NowSyncedAt = clockOrDefault(clk).NowMs()
}

// ApproxServerNow extrapolates the server clock from the last sync. It never
// runs backwards and never returns NaN.
func ApproxServerNow(s *AppState, clk Clock) float64 {
	if !isFinite(s.Now) {
		return 0
	}
	if !isFinite(s.NowSyncedAt) {
		return s.Now
	}
	elapsedMs := clockOrDefault(clk).NowMs() - s.NowSyncedAt
	if !isFinite(elapsedMs) || elapsedMs < 0 {
		return s.Now
	}
	return s.Now + elapsedMs/1000
}

// StallUntilMs translates a server-time stall deadline su into the client's
// monotonic milliseconds. serverNow must be the now value of the snapshot that
// carried su. Returns 0 when there is no stall or the inputs are unusable.
func StallUntilMs(su, serverNow, syncedAtMs float64) float64 {
	if !isFinite(su) || su <= 0 {
		return 0
	}
	if !isFinite(serverNow) || !isFinite(syncedAtMs) {
		return 0
	}
	return syncedAtMs + (su-serverNow)*1000
}

// ServerHeat is a heat record in server units; StallUntil is server seconds.
type ServerHeat struct {
	Value       float64
	Max         float64
	WarnAt      float64
	OverheatAt  float64
	MarkerSpeed float64
	StallUntil  float64
	KUp         float64
	KDown       float64
	Exp         float64
}

// HeatViewFromServer converts h for display using the snapshot's time origin.
func HeatViewFromServer(h ServerHeat, serverNow, syncedAtMs float64) HeatView {
	return HeatView{
		Value:        h.Value,
		Max:          h.Max,
		WarnAt:       h.WarnAt,
		OverheatAt:   h.OverheatAt,
		MarkerSpeed:  h.MarkerSpeed,
		StallUntilMs: StallUntilMs(h.StallUntil, serverNow, syncedAtMs),
		KUp:          h.KUp,
		KDown:        h.KDown,
		Exp:          h.Exp,
	}
}

// Stalled reports whether the heat view is still stalled at monotonic time nowMs.
func (h *HeatView) Stalled(nowMs float64) bool {
	return h != nil && h.StallUntilMs > nowMs
}
