// Package dag models the tech-tree progression the server reports to each
// player: node status, upgrade effects, and the capabilities they grant.
//
// The graph itself is server-authoritative. The client only mirrors the node
// list from snapshots and dag list responses and derives read-only views.
package dag

// NodeID uniquely identifies a node in the graph.
type NodeID string

// NodeKind categorizes the node type.
type NodeKind string

const (
	// NodeKindCraft represents a crafting node.
	NodeKindCraft NodeKind = "craft"
	// NodeKindUpgrade represents an upgrade node.
	NodeKindUpgrade NodeKind = "upgrade"
	// NodeKindStory represents a narrative beat controlled by the server DAG.
	NodeKindStory NodeKind = "story"
	// NodeKindUnknown is used for kinds this client does not recognize.
	NodeKindUnknown NodeKind = ""
)

// EffectType describes the type of effect an upgrade provides.
type EffectType int

const (
	EffectSpeedMultiplier EffectType = iota
	EffectMissileUnlock
	EffectHeatCapacity
	EffectHeatEfficiency
)

func (t EffectType) String() string {
	switch t {
	case EffectSpeedMultiplier:
		return "speed_multiplier"
	case EffectMissileUnlock:
		return "missile_unlock"
	case EffectHeatCapacity:
		return "heat_capacity"
	case EffectHeatEfficiency:
		return "heat_efficiency"
	default:
		return "unknown"
	}
}

// EffectValue is either a Multiplier or an UnlockID.
type EffectValue interface {
	isEffectValue()
}

// Multiplier scales a ship or missile stat.
type Multiplier float64

// UnlockID names a missile variant made available by an upgrade.
type UnlockID string

func (Multiplier) isEffectValue() {}
func (UnlockID) isEffectValue()   {}

// UpgradeEffect describes what an upgrade does when completed.
type UpgradeEffect struct {
	Type  EffectType  `json:"type"`
	Value EffectValue `json:"value"` // Multiplier for multipliers, UnlockID for unlocks
}

// Multiplier returns the effect's multiplier, if it carries one.
func (e UpgradeEffect) Multiplier() (float64, bool) {
	v, ok := e.Value.(Multiplier)
	return float64(v), ok
}

// UnlockID returns the effect's unlock id, if it carries one.
func (e UpgradeEffect) UnlockID() (string, bool) {
	v, ok := e.Value.(UnlockID)
	return string(v), ok
}

// Node is one tech-tree entry as last reported by the server.
type Node struct {
	ID         NodeID          `json:"id"`
	Kind       NodeKind        `json:"kind"`
	Label      string          `json:"label"`
	Status     Status          `json:"status"`
	RemainingS float64         `json:"remaining_s"` // seconds left while in progress
	DurationS  float64         `json:"duration_s"`  // Duration in seconds (0 = instant)
	Repeatable bool            `json:"repeatable"`  // Can be repeated after completion
	Effects    []UpgradeEffect `json:"effects,omitempty"`
}
