package game

import "math"

// HeatParams defines the heat-response curve of a missile.
// Heat rises when flying above MarkerSpeed and dissipates below it.
type HeatParams struct {
	Max         float64 `json:"max"`          // Maximum heat capacity
	WarnAt      float64 `json:"warn_at"`      // Warning threshold for UI
	OverheatAt  float64 `json:"overheat_at"`  // Missile detonates at or above this
	MarkerSpeed float64 `json:"marker_speed"` // Neutral speed where net heat change = 0
	KUp         float64 `json:"k_up"`         // Heating rate scale above marker
	KDown       float64 `json:"k_down"`       // Cooling rate scale below marker
	Exp         float64 `json:"exp"`          // Response exponent for heat curve
}

// DefaultMissileHeatParams returns the missile heat curve used before the
// server has sent one.
func DefaultMissileHeatParams() HeatParams {
	return HeatParams{
		Max:         MissileHeatMax,
		WarnAt:      MissileHeatWarnAt,
		OverheatAt:  MissileHeatOverheatAt,
		MarkerSpeed: MissileHeatMarkerSpeed,
		KUp:         MissileHeatKUp,
		KDown:       MissileHeatKDown,
		Exp:         MissileHeatExp,
	}
}

// SanitizeHeatParams replaces unusable values with the missile defaults.
func SanitizeHeatParams(p HeatParams) HeatParams {
	defaults := DefaultMissileHeatParams()
	if !(p.Max > 0) {
		p.Max = defaults.Max
	}
	if !(p.WarnAt > 0 && p.WarnAt <= p.Max) {
		p.WarnAt = math.Min(defaults.WarnAt, p.Max)
	}
	if !(p.OverheatAt > 0 && p.OverheatAt <= p.Max && p.OverheatAt >= p.WarnAt) {
		p.OverheatAt = p.Max
	}
	if !(p.MarkerSpeed > 0) {
		p.MarkerSpeed = defaults.MarkerSpeed
	}
	if !(p.Exp > 0) {
		p.Exp = defaults.Exp
	}
	if !(p.KUp >= 0) {
		p.KUp = defaults.KUp
	}
	if !(p.KDown >= 0) {
		p.KDown = defaults.KDown
	}
	return p
}

// HeatRate returns the instantaneous heat change per second at speed.
//
// Formula:
//
//	dev = speed - MarkerSpeed
//	if dev >= 0: Ḣ = +KUp * (dev/MarkerSpeed)^Exp
//	else:        Ḣ = -KDown * (|dev|/MarkerSpeed)^Exp
func HeatRate(p HeatParams, speed float64) float64 {
	Vn := math.Max(p.MarkerSpeed, 1e-6) // Avoid division by zero
	dev := speed - p.MarkerSpeed
	if dev >= 0 {
		return p.KUp * math.Pow(dev/Vn, p.Exp)
	}
	return -p.KDown * math.Pow(math.Abs(dev)/Vn, p.Exp)
}

// RouteHeatProjection is the forecast for a route that has not been launched.
type RouteHeatProjection struct {
	Waypoints       []Waypoint `json:"waypoints"`
	HeatAtWaypoints []float64  `json:"heat_at_waypoints"`
	WillOverheat    bool       `json:"will_overheat"`
	OverheatAt      int        `json:"overheat_at"` // index of first overheating waypoint, -1 if none
}

// ProjectRouteHeat integrates heat leg by leg along waypoints. Missiles start
// cold at the first waypoint. A waypoint speed <= 0 falls back to cruiseSpeed.
// Only the first waypoint reached at or above OverheatAt is recorded.
func ProjectRouteHeat(waypoints []Waypoint, cruiseSpeed float64, params HeatParams) RouteHeatProjection {
	proj := RouteHeatProjection{
		Waypoints:       waypoints,
		HeatAtWaypoints: make([]float64, len(waypoints)),
		OverheatAt:      -1,
	}
	if len(waypoints) == 0 {
		return proj
	}

	legSpeed := func(wp Waypoint) float64 {
		if wp.Speed > 0 {
			return wp.Speed
		}
		return cruiseSpeed
	}

	heat := 0.0
	for i := 1; i < len(waypoints); i++ {
		prev := waypoints[i-1]
		cur := waypoints[i]

		distance := cur.Pos().Sub(prev.Pos()).Len()
		if distance < 1e-6 {
			proj.HeatAtWaypoints[i] = heat
			continue
		}

		avgSpeed := (legSpeed(prev) + legSpeed(cur)) * 0.5
		segmentTime := distance / math.Max(avgSpeed, 1.0)

		heat = Clamp(heat+HeatRate(params, avgSpeed)*segmentTime, 0, params.Max)
		proj.HeatAtWaypoints[i] = heat

		if !proj.WillOverheat && heat >= params.OverheatAt {
			proj.WillOverheat = true
			proj.OverheatAt = i
		}
	}
	return proj
}
