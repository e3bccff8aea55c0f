package client

import (
	"testing"

	"LightSpeedDuelClient/internal/game"
)

func TestProjectActiveMissileRouteNoRoute(t *testing.T) {
	proj, ok := ProjectActiveMissileRoute(game.NewAppState())
	if ok {
		t.Fatal("Expected no projection without an active route")
	}
	if proj.OverheatAt != -1 || proj.WillOverheat {
		t.Errorf("Expected empty projection, got %+v", proj)
	}
}

func TestProjectActiveMissileRouteStartsAtShip(t *testing.T) {
	state := game.NewAppState()
	state.Me = &game.Ghost{ID: "me", X: 100, Y: 100, Self: true}
	state.MissileConfig.HeatParams = &game.HeatParams{Max: 100, WarnAt: 40, OverheatAt: 50, MarkerSpeed: 100, KUp: 10, KDown: 10, Exp: 1}
	state.MissileRoutes = []game.MissileRoute{{ID: "r1", Waypoints: []game.Waypoint{
		{X: 400, Y: 100, Speed: 200},
		{X: 700, Y: 100, Speed: 200},
	}}}
	state.ActiveMissileRouteID = "r1"

	proj, ok := ProjectActiveMissileRoute(state)
	if !ok {
		t.Fatal("Expected a projection for the active route")
	}
	if len(proj.Waypoints) != 3 || proj.Waypoints[0].X != 100 {
		t.Fatalf("Expected route to start at the ship, got %+v", proj.Waypoints)
	}
	if proj.Waypoints[0].Speed != state.MissileConfig.Speed {
		t.Errorf("Expected launch leg at cruise speed %.1f, got %.1f", state.MissileConfig.Speed, proj.Waypoints[0].Speed)
	}
	if proj.HeatAtWaypoints[0] != 0 {
		t.Errorf("Missiles launch cold, got %.3f", proj.HeatAtWaypoints[0])
	}
	for i := 1; i < len(proj.HeatAtWaypoints); i++ {
		if proj.HeatAtWaypoints[i] < proj.HeatAtWaypoints[i-1] {
			t.Errorf("Flying above marker should not cool: %v", proj.HeatAtWaypoints)
		}
	}
}

func TestProjectActiveMissileRouteDefaultsHeat(t *testing.T) {
	state := game.NewAppState()
	state.MissileConfig.HeatParams = nil
	state.MissileRoutes = []game.MissileRoute{{ID: "r1", Waypoints: []game.Waypoint{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	state.ActiveMissileRouteID = "r1"

	proj, ok := ProjectActiveMissileRoute(state)
	if !ok || len(proj.HeatAtWaypoints) != 2 {
		t.Fatalf("Expected projection over two waypoints, got %+v (ok=%v)", proj, ok)
	}
}
