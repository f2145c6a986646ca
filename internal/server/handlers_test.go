package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"battlefleet/internal/events"
	"battlefleet/internal/game"
	"battlefleet/internal/live"
	"battlefleet/internal/scoreboard"
)

func newTestServer() *Server {
	sb := scoreboard.New([]string{"alice", "bob"})
	sb.RegisterMatch("alice", "bob")
	sb.UpdateWithGameResults(&game.Results{Winner: game.WinnerA, PointsA: 4, PointsB: 1}, "alice", "bob")
	return New(sb, live.NewHub(events.NewBus()))
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleStandings(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/standings", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var standings []scoreboard.PlayerStatistics
	if err := json.Unmarshal(rec.Body.Bytes(), &standings); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("standings has %d entries, want 2", len(standings))
	}
	if standings[0].Name != "alice" || standings[0].Wins != 1 {
		t.Errorf("leader = %+v, want alice with 1 win", standings[0])
	}
}

func TestHandlePlayerMatches(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		player string
		want   int
	}{
		{"alice", 1},
		{"nobody", 0},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/players/"+tt.player+"/matches", nil)
		rec := httptest.NewRecorder()

		srv.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var resp struct {
			Player  string `json:"player"`
			Matches int    `json:"matches"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Player != tt.player || resp.Matches != tt.want {
			t.Errorf("response = %+v, want %s with %d matches", resp, tt.player, tt.want)
		}
	}
}

func TestHandleMetrics(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
