package client

import (
	"math"
	"sort"

	"LightSpeedDuelClient/internal/bus"
	"LightSpeedDuelClient/internal/dag"
	"LightSpeedDuelClient/internal/game"
	pb "LightSpeedDuelClient/internal/proto/ws"
)

// busEvent is an event computed by the applier, emitted once the step that
// produced it has finished.
type busEvent struct {
	name    bus.EventName
	payload any
}

// ApplySnapshot reconciles state with one decoded server snapshot and emits
// the semantic changes on b. prevRoutes, prevActiveRouteID and
// prevMissileCount describe state as it was before this snapshot; see
// CaptureRouteCache. Missing optional fields keep their previous values.
func ApplySnapshot(
	state *game.AppState,
	msg *pb.StateUpdate,
	prevRoutes map[string]game.MissileRoute,
	prevActiveRouteID string,
	prevMissileCount int,
	b *bus.Bus,
	clk game.Clock,
) {
	if state == nil || msg == nil {
		return
	}
	emit := func(name bus.EventName, payload any) {
		if b != nil {
			b.Emit(name, payload)
		}
	}

	// Heat views below are anchored to this snapshot's clock.
	game.SyncClock(state, msg.Now, clk)
	serverNow, syncedAt := msg.Now, state.NowSyncedAt

	if msg.Me != nil {
		me := ghostFromProto(msg.Me, serverNow, syncedAt)
		state.Me = &me
	} else {
		state.Me = nil
	}

	state.Ghosts = make([]game.Ghost, 0, len(msg.Ghosts))
	for _, g := range msg.Ghosts {
		if g != nil {
			state.Ghosts = append(state.Ghosts, ghostFromProto(g, serverNow, syncedAt))
		}
	}
	state.Missiles = make([]game.Missile, 0, len(msg.Missiles))
	for _, m := range msg.Missiles {
		if m != nil {
			state.Missiles = append(state.Missiles, missileFromProto(m, serverNow, syncedAt))
		}
	}

	routes := routesFromProto(msg.MissileRoutes)
	for _, ev := range diffMissileRoutes(prevRoutes, routes) {
		emit(ev.name, ev.payload)
	}
	state.MissileRoutes = routes

	active := msg.ActiveMissileRoute
	if active == "" && len(routes) > 0 {
		active = routes[0].ID
	}
	state.ActiveMissileRouteID = active
	if active != prevActiveRouteID {
		emit(bus.ActiveRouteChange, bus.ActiveRouteChangedEvent{RouteID: active})
	}

	if msg.MissileConfig != nil {
		applyMissileConfig(state, msg.MissileConfig)
	}
	state.NextMissileReadyAt = msg.NextMissileReady

	if msg.Meta != nil {
		state.WorldMeta = game.WorldMeta{
			C: positiveOr(msg.Meta.C, state.WorldMeta.C),
			W: positiveOr(msg.Meta.W, state.WorldMeta.W),
			H: positiveOr(msg.Meta.H, state.WorldMeta.H),
		}
	}
	if msg.Inventory != nil {
		state.Inventory = inventoryFromProto(msg.Inventory)
	}
	if msg.Dag != nil {
		state.Dag = &dag.NodeList{Nodes: dagNodesFromProto(msg.Dag)}
	}
	switch {
	case msg.Capabilities != nil:
		state.Capabilities = capabilitiesFromProto(msg.Capabilities)
	case msg.Dag != nil:
		caps := dag.CalculateCapabilities(state.Dag.Nodes)
		state.Capabilities = &caps
	}

	if msg.Story != nil {
		prevNode := ""
		if state.Story != nil {
			prevNode = state.Story.ActiveNode
		}
		story := storyFromProto(msg.Story)
		state.Story = &story
		if story.ActiveNode != "" && story.ActiveNode != prevNode {
			emit(bus.StoryNodeActive, bus.StoryNodeActivatedEvent{
				NodeID:   story.ActiveNode,
				Dialogue: story.Dialogue,
			})
		}
	}

	if len(state.Missiles) > prevMissileCount {
		start := prevMissileCount
		if start < 0 {
			start = 0
		}
		for _, m := range state.Missiles[start:] {
			if !m.Self {
				continue
			}
			emit(bus.MissileLaunched, bus.MissileLaunchedEvent{
				RouteID:   state.ActiveMissileRouteID,
				MissileID: m.ID,
			})
		}
	}

	emit(bus.CooldownUpdated, bus.CooldownEvent{SecondsRemaining: cooldownRemaining(state, clk)})
}

// applyMissileConfig updates limits first, then clamps the new config into
// them. A positive lifetime from the server overrides the local formula.
func applyMissileConfig(state *game.AppState, cfg *pb.MissileConfig) {
	limits := state.MissileLimits
	limits.SpeedMin = positiveOr(cfg.SpeedMin, limits.SpeedMin)
	limits.SpeedMax = positiveOr(cfg.SpeedMax, limits.SpeedMax)
	limits.AgroMin = positiveOr(cfg.AgroMin, limits.AgroMin)
	limits = limits.Sanitize()
	state.MissileLimits = limits

	prev := state.MissileConfig
	next := game.SanitizeMissileConfig(game.MissileConfig{
		Speed:      cfg.Speed,
		AgroRadius: cfg.AgroRadius,
		HeatParams: mergeHeatParams(cfg.HeatConfig, prev.HeatParams),
	}, prev, limits)
	if isFinite(cfg.Lifetime) && cfg.Lifetime > 0 {
		next.Lifetime = cfg.Lifetime
	}
	state.MissileConfig = next
}

func cooldownRemaining(state *game.AppState, clk game.Clock) float64 {
	remaining := state.NextMissileReadyAt - game.ApproxServerNow(state, clk)
	if !isFinite(remaining) || remaining < 0 {
		return 0
	}
	return remaining
}

// diffMissileRoutes reports how next differs from prev. Waypoint changes are
// detected by count only, so one add plus one delete in the same snapshot is
// indistinguishable from no change. Deleted routes are reported in id order.
func diffMissileRoutes(prev map[string]game.MissileRoute, next []game.MissileRoute) []busEvent {
	var events []busEvent
	seen := make(map[string]struct{}, len(next))
	for _, route := range next {
		seen[route.ID] = struct{}{}
		old, ok := prev[route.ID]
		if !ok {
			events = append(events, busEvent{bus.RouteAdded, bus.RouteEvent{RouteID: route.ID}})
			continue
		}
		if old.Name != route.Name {
			events = append(events, busEvent{bus.RouteRenamed, bus.RouteRenamedEvent{RouteID: route.ID, Name: route.Name}})
		}
		oldCount, newCount := len(old.Waypoints), len(route.Waypoints)
		switch {
		case newCount > oldCount:
			events = append(events, busEvent{bus.WaypointAdded, bus.WaypointEvent{RouteID: route.ID, Index: newCount - 1}})
		case newCount < oldCount:
			events = append(events, busEvent{bus.WaypointDeleted, bus.WaypointEvent{RouteID: route.ID, Index: oldCount - 1}})
			if newCount == 0 {
				events = append(events, busEvent{bus.WaypointsCleared, bus.RouteEvent{RouteID: route.ID}})
			}
		}
	}

	var deleted []string
	for id := range prev {
		if _, ok := seen[id]; !ok {
			deleted = append(deleted, id)
		}
	}
	sort.Strings(deleted)
	for _, id := range deleted {
		events = append(events, busEvent{bus.RouteDeleted, bus.RouteEvent{RouteID: id}})
	}
	return events
}

// CaptureRouteCache snapshots state's routes by id, deep-copied so later
// mutation of state cannot change the cache.
func CaptureRouteCache(state *game.AppState) map[string]game.MissileRoute {
	cache := make(map[string]game.MissileRoute, len(state.MissileRoutes))
	for _, route := range state.MissileRoutes {
		cache[route.ID] = route.Clone()
	}
	return cache
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positiveOr(v, fallback float64) float64 {
	if isFinite(v) && v > 0 {
		return v
	}
	return fallback
}
