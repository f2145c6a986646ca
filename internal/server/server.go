// Package server is the read-only tournament dashboard: live standings,
// per-player registration counts, Prometheus metrics and the WebSocket
// spectator feed. It never schedules or distributes matches.
package server

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"battlefleet/internal/live"
	"battlefleet/internal/scoreboard"
)

type Server struct {
	Scoreboard *scoreboard.Scoreboard
	Hub        *live.Hub
}

func New(sb *scoreboard.Scoreboard, hub *live.Hub) *Server {
	return &Server{Scoreboard: sb, Hub: hub}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/standings", s.handleStandings).Methods(http.MethodGet)
	r.HandleFunc("/players/{name}/matches", s.handlePlayerMatches).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/watch", s.handleWatch).Methods(http.MethodGet)
	return r
}

// ListenAndServe blocks serving the dashboard.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("[Server] Dashboard listening on %s\n", addr)
	return http.ListenAndServe(addr, s.Router())
}
