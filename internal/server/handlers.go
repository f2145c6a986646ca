package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"battlefleet/internal/live"
)

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Scoreboard.Standings()); err != nil {
		log.Printf("[Server] encoding standings: %v\n", err)
	}
}

func (s *Server) handlePlayerMatches(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	resp := struct {
		Player  string `json:"player"`
		Matches int    `json:"matches"`
	}{
		Player:  name,
		Matches: s.Scoreboard.PlayerEnlistedMatches(name),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[Server] encoding player matches: %v\n", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWatch upgrades the request and streams tournament events until the
// spectator disconnects.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[Server] websocket accept: %v\n", err)
		return
	}

	client := &live.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 32),
	}
	s.Hub.Register(client)
	defer s.Hub.Unregister(client.ID)

	client.WritePump(r.Context())
	conn.Close(websocket.StatusNormalClosure, "")
}
