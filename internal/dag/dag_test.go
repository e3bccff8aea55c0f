package dag

import (
	"testing"
)

func upgradeNode(id string, status Status, eff UpgradeEffect) Node {
	return Node{
		ID:      NodeID(id),
		Kind:    NodeKindUpgrade,
		Label:   id,
		Status:  status,
		Effects: []UpgradeEffect{eff},
	}
}

// TestCalculateCapabilitiesHighestWins tests that tiers are not stacked
func TestCalculateCapabilitiesHighestWins(t *testing.T) {
	nodes := []Node{
		upgradeNode("upgrade.missile.speed_1", StatusCompleted, UpgradeEffect{Type: EffectSpeedMultiplier, Value: Multiplier(1.1)}),
		upgradeNode("upgrade.missile.speed_2", StatusCompleted, UpgradeEffect{Type: EffectSpeedMultiplier, Value: Multiplier(1.2)}),
		upgradeNode("upgrade.missile.speed_3", StatusInProgress, UpgradeEffect{Type: EffectSpeedMultiplier, Value: Multiplier(1.3)}),
		upgradeNode("upgrade.ship.heat_cap_1", StatusCompleted, UpgradeEffect{Type: EffectHeatCapacity, Value: Multiplier(1.1)}),
	}

	caps := CalculateCapabilities(nodes)
	if caps.MissileSpeedMultiplier != 1.2 {
		t.Errorf("Expected missile speed 1.2, got %.2f", caps.MissileSpeedMultiplier)
	}
	if caps.ShipSpeedMultiplier != 1.0 {
		t.Errorf("Expected ship speed 1.0, got %.2f", caps.ShipSpeedMultiplier)
	}
	if caps.ShipHeatCapacity != 1.1 {
		t.Errorf("Expected ship heat capacity 1.1, got %.2f", caps.ShipHeatCapacity)
	}
	if caps.MissileHeatCapacity != 1.0 {
		t.Errorf("Expected missile heat capacity 1.0, got %.2f", caps.MissileHeatCapacity)
	}
}

// TestCalculateCapabilitiesIgnoresNonUpgrades tests that craft and story
// nodes never grant capabilities even if their ids look like upgrades
func TestCalculateCapabilitiesIgnoresNonUpgrades(t *testing.T) {
	node := upgradeNode("upgrade.ship.speed_1", StatusCompleted, UpgradeEffect{Type: EffectSpeedMultiplier, Value: Multiplier(1.5)})
	node.Kind = NodeKindCraft

	caps := CalculateCapabilities([]Node{node})
	if caps.ShipSpeedMultiplier != 1.0 {
		t.Errorf("Expected default ship speed, got %.2f", caps.ShipSpeedMultiplier)
	}
}

// TestCalculateCapabilitiesUnlocks tests missile unlock collection
func TestCalculateCapabilitiesUnlocks(t *testing.T) {
	nodes := []Node{
		upgradeNode("upgrade.missile.unlock_scatter", StatusCompleted, UpgradeEffect{Type: EffectMissileUnlock, Value: UnlockID("scatter")}),
		upgradeNode("upgrade.missile.unlock_heavy", StatusAvailable, UpgradeEffect{Type: EffectMissileUnlock, Value: UnlockID("heavy")}),
	}

	caps := CalculateCapabilities(nodes)
	if len(caps.UnlockedMissiles) != 1 || caps.UnlockedMissiles[0] != "scatter" {
		t.Errorf("Expected [scatter], got %v", caps.UnlockedMissiles)
	}
}

// TestEffectValueMismatch tests that a mistyped value is ignored
func TestEffectValueMismatch(t *testing.T) {
	node := upgradeNode("upgrade.ship.speed_1", StatusCompleted, UpgradeEffect{Type: EffectSpeedMultiplier, Value: UnlockID("oops")})

	caps := CalculateCapabilities([]Node{node})
	if caps.ShipSpeedMultiplier != 1.0 {
		t.Errorf("Expected default ship speed, got %.2f", caps.ShipSpeedMultiplier)
	}
}

func TestNodeListLookups(t *testing.T) {
	list := &NodeList{Nodes: []Node{
		{ID: "a", Status: StatusAvailable},
		{ID: "b", Status: StatusInProgress, RemainingS: 12.5},
		{ID: "c", Status: StatusAvailable},
	}}

	if got := list.GetStatus("missing"); got != StatusLocked {
		t.Errorf("Expected StatusLocked for unknown node, got %s", got)
	}
	if got := len(list.ByStatus(StatusAvailable)); got != 2 {
		t.Errorf("Expected 2 available nodes, got %d", got)
	}
	if got := list.RemainingTime("b"); got != 12.5 {
		t.Errorf("Expected 12.5s remaining, got %.2f", got)
	}
	if got := list.RemainingTime("a"); got != 0 {
		t.Errorf("Expected 0s remaining for idle node, got %.2f", got)
	}

	var nilList *NodeList
	if nilList.Get("a") != nil || nilList.Clone() != nil {
		t.Error("nil list should behave as empty")
	}
}

func TestNodeListCloneIsDeep(t *testing.T) {
	list := &NodeList{Nodes: []Node{
		upgradeNode("upgrade.ship.speed_1", StatusCompleted, UpgradeEffect{Type: EffectSpeedMultiplier, Value: Multiplier(1.1)}),
	}}
	clone := list.Clone()
	clone.Nodes[0].Status = StatusLocked
	clone.Nodes[0].Effects[0].Value = Multiplier(9)

	if list.Nodes[0].Status != StatusCompleted {
		t.Error("clone status change leaked into original")
	}
	if v, _ := list.Nodes[0].Effects[0].Multiplier(); v != 1.1 {
		t.Errorf("clone effect change leaked into original: %.2f", v)
	}
}

func TestDescribeEffect(t *testing.T) {
	cases := []struct {
		effect UpgradeEffect
		target string
		want   string
	}{
		{UpgradeEffect{Type: EffectSpeedMultiplier, Value: Multiplier(1.2)}, "missile", "+20% max missile speed"},
		{UpgradeEffect{Type: EffectSpeedMultiplier, Value: Multiplier(1.1)}, "ship", "+10% max ship speed"},
		{UpgradeEffect{Type: EffectHeatCapacity, Value: Multiplier(1.5)}, "missile", "+50% missile heat capacity"},
		{UpgradeEffect{Type: EffectMissileUnlock, Value: UnlockID("scatter")}, "missile", "unlocks scatter"},
		{UpgradeEffect{Type: EffectSpeedMultiplier}, "ship", ""},
	}
	for _, tc := range cases {
		if got := DescribeEffect(tc.effect, tc.target); got != tc.want {
			t.Errorf("DescribeEffect(%v, %q) = %q, want %q", tc.effect.Type, tc.target, got, tc.want)
		}
	}
}

func TestDialogueContinueText(t *testing.T) {
	var d *Dialogue
	if d.ContinueText() != "Continue" {
		t.Errorf("nil dialogue should use default label")
	}
	d = &Dialogue{ContinueLabel: "Engage"}
	if d.ContinueText() != "Engage" {
		t.Errorf("Expected custom label, got %q", d.ContinueText())
	}
}
