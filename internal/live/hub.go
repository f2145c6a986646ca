// Package live streams tournament events to WebSocket spectators. The hub
// drains the event bus and fans each event out to every connected client.
package live

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/coder/websocket"

	"battlefleet/internal/events"
)

// ServerMessage is the JSON structure sent to spectators.
type ServerMessage struct {
	Type     string   `json:"t"`
	MatchID  string   `json:"m,omitempty"`
	Row      int      `json:"r,omitempty"`
	Col      int      `json:"c,omitempty"`
	Result   string   `json:"res,omitempty"`
	Winner   string   `json:"w,omitempty"`
	ForfeitA bool     `json:"fa,omitempty"`
	ForfeitB bool     `json:"fb,omitempty"`
	Round    int      `json:"round,omitempty"`
	Leaders  []string `json:"leaders,omitempty"`
}

// Client is a single spectator connection.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket
// connection until the context ends or the channel closes.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub manages spectator connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a hub draining the given bus in the background.
func NewHub(bus *events.Bus) *Hub {
	h := &Hub{clients: make(map[string]*Client)}
	go func() {
		for {
			select {
			case ev := <-bus.Attacks:
				h.Broadcast(ServerMessage{
					Type: "attack", MatchID: ev.MatchID,
					Row: ev.Row, Col: ev.Col, Result: ev.Result,
				})
			case ev := <-bus.MatchEnds:
				h.Broadcast(ServerMessage{
					Type: "matchEnd", MatchID: ev.MatchID, Winner: ev.Winner,
					ForfeitA: ev.ForfeitA, ForfeitB: ev.ForfeitB,
				})
			case ev := <-bus.Rounds:
				h.Broadcast(ServerMessage{
					Type: "round", Round: ev.RoundNum, Leaders: ev.Leaders,
				})
			}
		}
	}()
	return h
}

// Register adds a spectator to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister removes a spectator and closes its Send channel.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.Send)
		delete(h.clients, id)
	}
}

// Broadcast sends a message to every spectator. Non-blocking: drops for
// clients with full channels.
func (h *Hub) Broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Hub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			// Drop message if channel full
		}
	}
}
