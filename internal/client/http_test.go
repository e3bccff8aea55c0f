package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"LightSpeedDuelClient/internal/game"
	pb "LightSpeedDuelClient/internal/proto/ws"
)

func TestStatusHandler(t *testing.T) {
	m := NewManager(Options{URL: "ws://unused", Logger: quietLogger})
	h := NewStatusHandler(m)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heat", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 without an active route, got %d", rec.Code)
	}

	m.HandleFrame(mustMarshal(t, &pb.WsEnvelope{Payload: &pb.WsEnvelope_StateUpdate{StateUpdate: &pb.StateUpdate{
		Now:           12,
		Me:            &pb.Ghost{Id: "me", X: 100, Y: 100, Self: true},
		MissileRoutes: []*pb.MissileRoute{pbRoute("r1", "Alpha", 2)},
	}}}))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /state, got %d: %s", rec.Code, rec.Body.String())
	}
	var state struct {
		Now      float64 `json:"now"`
		ActiveID string  `json:"active_missile_route_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.Now != 12 || state.ActiveID != "r1" {
		t.Errorf("Unexpected state body: %+v", state)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heat", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /heat, got %d", rec.Code)
	}
	var proj game.RouteHeatProjection
	if err := json.Unmarshal(rec.Body.Bytes(), &proj); err != nil {
		t.Fatalf("decode heat: %v", err)
	}
	if len(proj.HeatAtWaypoints) != 3 {
		t.Errorf("Expected ship plus two waypoints, got %+v", proj)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Body.String() != "idle" {
		t.Errorf("Expected idle health, got %q", rec.Body.String())
	}
}
