package game

// MissileConfig is the locally mirrored missile tuning.
type MissileConfig struct {
	Speed      float64     `json:"speed"`
	AgroRadius float64     `json:"agro_radius"`
	Lifetime   float64     `json:"lifetime"`
	HeatParams *HeatParams `json:"heat_params,omitempty"`
}

// MissileLimits bounds MissileConfig; the server may widen them with upgrades.
type MissileLimits struct {
	SpeedMin float64 `json:"speed_min"`
	SpeedMax float64 `json:"speed_max"`
	AgroMin  float64 `json:"agro_min"`
}

func DefaultMissileLimits() MissileLimits {
	return MissileLimits{
		SpeedMin: MissileMinSpeed,
		SpeedMax: MissileMaxSpeed,
		AgroMin:  MissileMinAgroRadius,
	}
}

func DefaultMissileConfig() MissileConfig {
	return SanitizeMissileConfig(MissileConfig{
		Speed:      ShipMaxSpeed * 0.75,
		AgroRadius: MissileDefaultAgroRadius,
	}, MissileConfig{}, DefaultMissileLimits())
}

// Sanitize keeps limits ordered and positive.
func (l MissileLimits) Sanitize() MissileLimits {
	if !isFinite(l.SpeedMin) || l.SpeedMin <= 0 {
		l.SpeedMin = MissileMinSpeed
	}
	if !isFinite(l.SpeedMax) || l.SpeedMax < l.SpeedMin {
		l.SpeedMax = MissileMaxSpeed
		if l.SpeedMax < l.SpeedMin {
			l.SpeedMax = l.SpeedMin
		}
	}
	if !isFinite(l.AgroMin) || l.AgroMin < 0 {
		l.AgroMin = MissileMinAgroRadius
	}
	return l
}

// SanitizeMissileConfig clamps cfg into limits. Missing or non-finite speed and
// agro values fall back to fallback, and the lifetime is always recomputed.
func SanitizeMissileConfig(cfg MissileConfig, fallback MissileConfig, limits MissileLimits) MissileConfig {
	limits = limits.Sanitize()

	speed := cfg.Speed
	if !isFinite(speed) || speed <= 0 {
		speed = fallback.Speed
	}
	if !isFinite(speed) || speed <= 0 {
		speed = limits.SpeedMin
	}
	speed = Clamp(speed, limits.SpeedMin, limits.SpeedMax)

	agro := cfg.AgroRadius
	if !isFinite(agro) {
		agro = fallback.AgroRadius
	}
	if !isFinite(agro) || agro < limits.AgroMin {
		agro = limits.AgroMin
	}

	heat := cfg.HeatParams
	if heat == nil && fallback.HeatParams != nil {
		hp := *fallback.HeatParams
		heat = &hp
	}

	return MissileConfig{
		Speed:      speed,
		AgroRadius: agro,
		Lifetime:   MissileLifetimeFor(speed, agro, limits),
		HeatParams: heat,
	}
}

// MissileLifetimeFor trades lifetime for speed and agro radius: the faster and
// wider the seeker, the sooner the missile burns out.
func MissileLifetimeFor(speed, agro float64, limits MissileLimits) float64 {
	limits = limits.Sanitize()
	var speedNorm float64
	if span := limits.SpeedMax - limits.SpeedMin; span > 0 {
		speedNorm = Clamp((speed-limits.SpeedMin)/span, 0, 1)
	}
	effectiveAgro := agro - limits.AgroMin
	if effectiveAgro < 0 {
		effectiveAgro = 0
	}
	agroNorm := Clamp(effectiveAgro/MissileLifetimeAgroRef, 0, 1)
	reduction := speedNorm*MissileLifetimeSpeedPenalty + agroNorm*MissileLifetimeAgroPenalty
	lifetime := MissileMaxLifetime - reduction
	return Clamp(lifetime, MissileMinLifetime, MissileMaxLifetime)
}
