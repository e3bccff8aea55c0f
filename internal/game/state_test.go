package game

import "testing"

func TestAppStateCloneIsDeep(t *testing.T) {
	s := NewAppState()
	s.MissileRoutes = []MissileRoute{{ID: "r1", Name: "Alpha", Waypoints: []Waypoint{{X: 1, Y: 2, Speed: 3}}}}
	s.Me = &Ghost{ID: "me", Heat: &HeatView{Value: 5}}

	c := s.Clone()
	c.MissileRoutes[0].Waypoints[0].X = 99
	c.Me.Heat.Value = 50

	if s.MissileRoutes[0].Waypoints[0].X != 1 {
		t.Error("route waypoint change leaked into original")
	}
	if s.Me.Heat.Value != 5 {
		t.Error("heat change leaked into original")
	}
}
