package client

import (
	"LightSpeedDuelClient/internal/dag"
	"LightSpeedDuelClient/internal/game"
	pb "LightSpeedDuelClient/internal/proto/ws"
)

// Convert protobuf waypoints, skipping nil entries
func waypointsFromProto(wps []*pb.Waypoint) []game.Waypoint {
	if len(wps) == 0 {
		return nil
	}
	out := make([]game.Waypoint, 0, len(wps))
	for _, wp := range wps {
		if wp == nil {
			continue
		}
		out = append(out, game.Waypoint{X: wp.X, Y: wp.Y, Speed: wp.Speed})
	}
	return out
}

// Convert protobuf heat record into a display view anchored at the snapshot's clock
func heatViewFromProto(h *pb.ShipHeatView, serverNow, syncedAtMs float64) *game.HeatView {
	if h == nil {
		return nil
	}
	view := game.HeatViewFromServer(game.ServerHeat{
		Value:       h.V,
		Max:         h.M,
		WarnAt:      h.W,
		OverheatAt:  h.O,
		MarkerSpeed: h.Ms,
		StallUntil:  h.Su,
		KUp:         h.Ku,
		KDown:       h.Kd,
		Exp:         h.Ex,
	}, serverNow, syncedAtMs)
	return &view
}

// Convert protobuf ghost to the client mirror
func ghostFromProto(g *pb.Ghost, serverNow, syncedAtMs float64) game.Ghost {
	return game.Ghost{
		ID:                   g.Id,
		X:                    g.X,
		Y:                    g.Y,
		VX:                   g.Vx,
		VY:                   g.Vy,
		T:                    g.T,
		Self:                 g.Self,
		Waypoints:            waypointsFromProto(g.Waypoints),
		CurrentWaypointIndex: int(g.CurrentWaypointIndex),
		HP:                   int(g.Hp),
		Kills:                int(g.Kills),
		Heat:                 heatViewFromProto(g.Heat, serverNow, syncedAtMs),
	}
}

// Convert protobuf missile to the client mirror
func missileFromProto(m *pb.Missile, serverNow, syncedAtMs float64) game.Missile {
	return game.Missile{
		ID:         m.Id,
		Owner:      m.Owner,
		Self:       m.Self,
		X:          m.X,
		Y:          m.Y,
		VX:         m.Vx,
		VY:         m.Vy,
		T:          m.T,
		AgroRadius: m.AgroRadius,
		Lifetime:   m.Lifetime,
		LaunchTime: m.LaunchTime,
		ExpiresAt:  m.ExpiresAt,
		TargetID:   m.TargetId,
		Heat:       heatViewFromProto(m.Heat, serverNow, syncedAtMs),
	}
}

func routesFromProto(routes []*pb.MissileRoute) []game.MissileRoute {
	out := make([]game.MissileRoute, 0, len(routes))
	for _, route := range routes {
		if route == nil {
			continue
		}
		out = append(out, game.MissileRoute{
			ID:        route.Id,
			Name:      route.Name,
			Waypoints: waypointsFromProto(route.Waypoints),
		})
	}
	return out
}

// mergeHeatParams fills every field the server left out from prev, or from
// zero (one for the exponent) when there is no previous curve.
func mergeHeatParams(h *pb.HeatParams, prev *game.HeatParams) *game.HeatParams {
	if h == nil {
		if prev == nil {
			return nil
		}
		cp := *prev
		return &cp
	}
	base := game.HeatParams{Exp: 1}
	if prev != nil {
		base = *prev
	}
	pick := func(v *float64, fallback float64) float64 {
		if v != nil {
			return *v
		}
		return fallback
	}
	return &game.HeatParams{
		Max:         pick(h.Max, base.Max),
		WarnAt:      pick(h.WarnAt, base.WarnAt),
		OverheatAt:  pick(h.OverheatAt, base.OverheatAt),
		MarkerSpeed: pick(h.MarkerSpeed, base.MarkerSpeed),
		KUp:         pick(h.KUp, base.KUp),
		KDown:       pick(h.KDown, base.KDown),
		Exp:         pick(h.Exp, base.Exp),
	}
}

// ========== DAG Conversions ==========

// Convert proto enum to DAG node status
func dagStatusFromProto(status pb.DagNodeStatus) dag.Status {
	switch status {
	case pb.DagNodeStatus_DAG_NODE_STATUS_AVAILABLE:
		return dag.StatusAvailable
	case pb.DagNodeStatus_DAG_NODE_STATUS_IN_PROGRESS:
		return dag.StatusInProgress
	case pb.DagNodeStatus_DAG_NODE_STATUS_COMPLETED:
		return dag.StatusCompleted
	default:
		return dag.StatusLocked
	}
}

// Convert proto enum to DAG node kind
// Maps wire kinds: factory→craft, unit→upgrade, story→story
func dagKindFromProto(kind pb.DagNodeKind) dag.NodeKind {
	switch kind {
	case pb.DagNodeKind_DAG_NODE_KIND_FACTORY:
		return dag.NodeKindCraft
	case pb.DagNodeKind_DAG_NODE_KIND_UNIT:
		return dag.NodeKindUpgrade
	case pb.DagNodeKind_DAG_NODE_KIND_STORY:
		return dag.NodeKindStory
	default:
		return dag.NodeKindUnknown
	}
}

func effectFromProto(eff *pb.UpgradeEffect) (dag.UpgradeEffect, bool) {
	if eff == nil {
		return dag.UpgradeEffect{}, false
	}
	var out dag.UpgradeEffect
	switch eff.Type {
	case pb.UpgradeEffectType_UPGRADE_EFFECT_TYPE_SPEED_MULTIPLIER:
		out.Type = dag.EffectSpeedMultiplier
	case pb.UpgradeEffectType_UPGRADE_EFFECT_TYPE_MISSILE_UNLOCK:
		out.Type = dag.EffectMissileUnlock
	case pb.UpgradeEffectType_UPGRADE_EFFECT_TYPE_HEAT_CAPACITY:
		out.Type = dag.EffectHeatCapacity
	case pb.UpgradeEffectType_UPGRADE_EFFECT_TYPE_HEAT_EFFICIENCY:
		out.Type = dag.EffectHeatEfficiency
	default:
		return dag.UpgradeEffect{}, false
	}
	switch v := eff.Value.(type) {
	case *pb.UpgradeEffect_Multiplier:
		out.Value = dag.Multiplier(v.Multiplier)
	case *pb.UpgradeEffect_UnlockId:
		out.Value = dag.UnlockID(v.UnlockId)
	}
	return out, true
}

// Convert protobuf DagState into the client node list
func dagNodesFromProto(state *pb.DagState) []dag.Node {
	if state == nil {
		return nil
	}
	nodes := make([]dag.Node, 0, len(state.Nodes))
	for _, node := range state.Nodes {
		if node == nil {
			continue
		}
		n := dag.Node{
			ID:         dag.NodeID(node.Id),
			Kind:       dagKindFromProto(node.Kind),
			Label:      node.Label,
			Status:     dagStatusFromProto(node.Status),
			RemainingS: node.RemainingS,
			DurationS:  node.DurationS,
			Repeatable: node.Repeatable,
		}
		for _, eff := range node.Effects {
			if e, ok := effectFromProto(eff); ok {
				n.Effects = append(n.Effects, e)
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// ========== Inventory / Capabilities ==========

func inventoryFromProto(inv *pb.Inventory) *game.Inventory {
	if inv == nil {
		return nil
	}
	out := &game.Inventory{Items: make([]game.InventoryItem, 0, len(inv.Items))}
	for _, item := range inv.Items {
		if item == nil {
			continue
		}
		out.Items = append(out.Items, game.InventoryItem{
			Type:         item.Type,
			VariantID:    item.VariantId,
			HeatCapacity: item.HeatCapacity,
			Quantity:     int(item.Quantity),
		})
	}
	return out
}

func capabilitiesFromProto(caps *pb.PlayerCapabilities) *dag.Capabilities {
	if caps == nil {
		return nil
	}
	return &dag.Capabilities{
		ShipSpeedMultiplier:    caps.ShipSpeedMultiplier,
		MissileSpeedMultiplier: caps.MissileSpeedMultiplier,
		ShipHeatCapacity:       caps.ShipHeatCapacity,
		MissileHeatCapacity:    caps.MissileHeatCapacity,
		UnlockedMissiles:       append([]string(nil), caps.UnlockedMissiles...),
	}
}

// ========== Story Conversions ==========

// Convert proto enum to story intent
func storyIntentFromProto(intent pb.StoryIntent) string {
	switch intent {
	case pb.StoryIntent_STORY_INTENT_FACTORY:
		return "factory"
	case pb.StoryIntent_STORY_INTENT_UNIT:
		return "unit"
	default:
		return ""
	}
}

func storyDialogueFromProto(d *pb.StoryDialogue) *dag.Dialogue {
	if d == nil {
		return nil
	}
	out := &dag.Dialogue{
		Speaker:       d.Speaker,
		Text:          d.Text,
		Intent:        storyIntentFromProto(d.Intent),
		ContinueLabel: d.ContinueLabel,
	}
	for _, choice := range d.Choices {
		if choice == nil {
			continue
		}
		out.Choices = append(out.Choices, dag.DialogueChoice{ID: choice.Id, Text: choice.Text})
	}
	if d.TutorialTip != nil {
		out.TutorialTip = &dag.TutorialTip{Title: d.TutorialTip.Title, Text: d.TutorialTip.Text}
	}
	return out
}

func storyFromProto(s *pb.StoryState) game.StoryState {
	out := game.StoryState{
		ActiveNode: s.ActiveNode,
		Dialogue:   storyDialogueFromProto(s.Dialogue),
		Available:  append([]string(nil), s.Available...),
	}
	if len(s.Flags) > 0 {
		out.Flags = make(map[string]bool, len(s.Flags))
		for k, v := range s.Flags {
			out.Flags[k] = v
		}
	}
	for _, ev := range s.RecentEvents {
		if ev == nil {
			continue
		}
		out.RecentEvents = append(out.RecentEvents, game.StoryEvent{
			ChapterID: ev.ChapterId,
			NodeID:    ev.NodeId,
			Timestamp: ev.Timestamp,
		})
	}
	return out
}
