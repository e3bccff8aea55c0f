package dag

import "strings"

// Capabilities aggregates active upgrade effects for a player.
type Capabilities struct {
	ShipSpeedMultiplier    float64  `json:"ship_speed_multiplier"`
	MissileSpeedMultiplier float64  `json:"missile_speed_multiplier"`
	ShipHeatCapacity       float64  `json:"ship_heat_capacity"`
	MissileHeatCapacity    float64  `json:"missile_heat_capacity"`
	UnlockedMissiles       []string `json:"unlocked_missiles,omitempty"`
}

// DefaultCapabilities returns base capabilities with no upgrades.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		ShipSpeedMultiplier:    1.0,
		MissileSpeedMultiplier: 1.0,
		ShipHeatCapacity:       1.0,
		MissileHeatCapacity:    1.0,
		UnlockedMissiles:       nil,
	}
}

// Target reports which stat family an upgrade node applies to, based on its
// id prefix: "ship", "missile", or "".
func Target(id NodeID) string {
	switch {
	case strings.HasPrefix(string(id), "upgrade.ship."):
		return "ship"
	case strings.HasPrefix(string(id), "upgrade.missile."):
		return "missile"
	default:
		return ""
	}
}

// CalculateCapabilities computes capabilities from the completed upgrade nodes
// in nodes. Tiers are not additive: the highest multiplier per target wins.
func CalculateCapabilities(nodes []Node) Capabilities {
	caps := DefaultCapabilities()

	highestShipSpeed := 1.0
	highestMissileSpeed := 1.0
	highestShipHeat := 1.0
	highestMissileHeat := 1.0

	for _, node := range nodes {
		if node.Status != StatusCompleted || node.Kind != NodeKindUpgrade {
			continue
		}
		target := Target(node.ID)
		isShip := target == "ship"
		isMissile := target == "missile"
		for _, eff := range node.Effects {
			switch eff.Type {
			case EffectSpeedMultiplier:
				if v, ok := eff.Multiplier(); ok {
					if isShip && v > highestShipSpeed {
						highestShipSpeed = v
					}
					if isMissile && v > highestMissileSpeed {
						highestMissileSpeed = v
					}
				}
			case EffectHeatCapacity:
				if v, ok := eff.Multiplier(); ok {
					if isShip && v > highestShipHeat {
						highestShipHeat = v
					}
					if isMissile && v > highestMissileHeat {
						highestMissileHeat = v
					}
				}
			case EffectMissileUnlock:
				if id, ok := eff.UnlockID(); ok {
					caps.UnlockedMissiles = append(caps.UnlockedMissiles, id)
				}
			}
		}
	}

	caps.ShipSpeedMultiplier = highestShipSpeed
	caps.MissileSpeedMultiplier = highestMissileSpeed
	caps.ShipHeatCapacity = highestShipHeat
	caps.MissileHeatCapacity = highestMissileHeat
	return caps
}
