package game

import (
	"math"
	"testing"
)

func TestSanitizeMissileConfigClampsSpeed(t *testing.T) {
	limits := MissileLimits{SpeedMin: 40, SpeedMax: 250, AgroMin: 100}
	cfg := SanitizeMissileConfig(MissileConfig{Speed: 500, AgroRadius: 800}, DefaultMissileConfig(), limits)
	if cfg.Speed != 250 {
		t.Errorf("Expected speed clamped to 250, got %.2f", cfg.Speed)
	}

	cfg = SanitizeMissileConfig(MissileConfig{Speed: 10, AgroRadius: 800}, DefaultMissileConfig(), limits)
	if cfg.Speed != 40 {
		t.Errorf("Expected speed clamped to 40, got %.2f", cfg.Speed)
	}
}

func TestSanitizeMissileConfigFallbacks(t *testing.T) {
	limits := DefaultMissileLimits()
	fallback := MissileConfig{Speed: 120, AgroRadius: 600, HeatParams: &HeatParams{Max: 70}}

	cfg := SanitizeMissileConfig(MissileConfig{Speed: math.NaN(), AgroRadius: math.Inf(1)}, fallback, limits)
	if cfg.Speed != 120 {
		t.Errorf("Expected fallback speed 120, got %.2f", cfg.Speed)
	}
	if cfg.AgroRadius != 600 {
		t.Errorf("Expected fallback agro 600, got %.2f", cfg.AgroRadius)
	}
	if cfg.HeatParams == nil || cfg.HeatParams.Max != 70 {
		t.Fatalf("Expected fallback heat params, got %+v", cfg.HeatParams)
	}
	if cfg.HeatParams == fallback.HeatParams {
		t.Error("Heat params should be copied, not shared")
	}

	cfg = SanitizeMissileConfig(MissileConfig{Speed: 100, AgroRadius: 20}, fallback, limits)
	if cfg.AgroRadius != limits.AgroMin {
		t.Errorf("Expected agro floored at %.2f, got %.2f", limits.AgroMin, cfg.AgroRadius)
	}
}

func TestMissileLifetimeFor(t *testing.T) {
	limits := MissileLimits{SpeedMin: 40, SpeedMax: 250, AgroMin: 100}
	cases := []struct {
		speed, agro, want float64
	}{
		{40, 100, 300},
		{250, 100, 220},
		{250, 2100, 180},
		{145, 1100, 240},
	}
	for _, tc := range cases {
		if got := MissileLifetimeFor(tc.speed, tc.agro, limits); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("MissileLifetimeFor(%.0f, %.0f) = %.4f, want %.4f", tc.speed, tc.agro, got, tc.want)
		}
	}
}

func TestDefaultMissileConfig(t *testing.T) {
	cfg := DefaultMissileConfig()
	if cfg.Speed != 187.5 {
		t.Errorf("Expected default speed 187.5, got %.2f", cfg.Speed)
	}
	if cfg.AgroRadius != MissileDefaultAgroRadius {
		t.Errorf("Expected default agro %.0f, got %.2f", MissileDefaultAgroRadius, cfg.AgroRadius)
	}
	if cfg.Lifetime != MissileLifetimeFor(cfg.Speed, cfg.AgroRadius, DefaultMissileLimits()) {
		t.Errorf("Default lifetime not derived: %.2f", cfg.Lifetime)
	}
}

func TestMissileLimitsSanitize(t *testing.T) {
	l := MissileLimits{SpeedMin: -5, SpeedMax: 10, AgroMin: math.NaN()}.Sanitize()
	if l.SpeedMin != MissileMinSpeed {
		t.Errorf("Expected SpeedMin %.0f, got %.2f", MissileMinSpeed, l.SpeedMin)
	}
	if l.SpeedMax != MissileMaxSpeed {
		t.Errorf("Expected SpeedMax %.0f, got %.2f", MissileMaxSpeed, l.SpeedMax)
	}
	if l.AgroMin != MissileMinAgroRadius {
		t.Errorf("Expected AgroMin %.0f, got %.2f", MissileMinAgroRadius, l.AgroMin)
	}
}
