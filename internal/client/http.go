package client

import (
	"encoding/json"
	"log"
	"net/http"

	"LightSpeedDuelClient/internal/game"

	"github.com/go-chi/chi/v5"
)

type statusServer struct {
	m *Manager
}

// NewStatusHandler exposes the mirrored state for local inspection. Every
// request works on its own copy of the state.
func NewStatusHandler(m *Manager) http.Handler {
	s := &statusServer{m: m}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(m.Status().String()))
	})
	r.Get("/state", s.handleState)
	r.Get("/heat", s.handleHeat)

	return r
}

func (s *statusServer) snapshot() *game.AppState {
	var state *game.AppState
	s.m.WithState(func(st *game.AppState) {
		state = st.Clone()
	})
	return state
}

func (s *statusServer) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *statusServer) handleHeat(w http.ResponseWriter, r *http.Request) {
	proj, ok := ProjectActiveMissileRoute(s.snapshot())
	if !ok {
		http.Error(w, "no active missile route", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("status: encode %T: %v", v, err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
