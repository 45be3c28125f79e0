package lobby

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	log "github.com/sirupsen/logrus"
)

// HistorySize caps the replayed backlog sent to late joiners
const HistorySize = 50

// EventType classifies a lobby feed event
type EventType string

const (
	EventChat EventType = "CHAT"
	EventWin  EventType = "WIN"
)

// Event is one lobby feed item: a chat line or a win banner
type Event struct {
	Type      EventType `json:"type"`
	User      string    `json:"user"`
	Message   string    `json:"message,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Game      string    `json:"game,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// Hub fans lobby events out to every connected websocket and keeps the
// last 50 events so a late joiner sees a live room. Presence is cosmetic:
// the feed carries no balance or game state.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	history []Event
	players map[string]bool
}

// NewHub creates an empty lobby hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		// the lobby opens with a couple of regulars already "present"
		players: map[string]bool{"CryptoKing": true, "Sarah99": true},
	}
}

// Publish stamps an event and sends it to every connected client
func (h *Hub) Publish(event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.history = append(h.history, event)
	if len(h.history) > HistorySize {
		h.history = h.history[len(h.history)-HistorySize:]
	}
	if event.User != "" {
		h.players[event.User] = true
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("encoding lobby event")
		return
	}
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			log.WithError(err).Debug("dropping lobby client")
			delete(h.clients, c)
			c.Close()
		}
	}
}

// PublishWin forwards a settled winning round to the feed
func (h *Hub) PublishWin(user, game string, amount float64) {
	h.Publish(Event{Type: EventWin, User: user, Game: game, Amount: amount})
}

// PublishChat posts a chat line to the feed
func (h *Hub) PublishChat(user, message string) {
	h.Publish(Event{Type: EventChat, User: user, Message: message})
}

// History returns the replay backlog, oldest first
func (h *Hub) History() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Event, len(h.history))
	copy(out, h.history)
	return out
}

// Players returns the users seen in the feed
func (h *Hub) Players() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, 0, len(h.players))
	for name := range h.players {
		out = append(out, name)
	}
	return out
}

// ClientCount returns the number of connected websockets
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler serves one lobby websocket: replays the backlog, then relays
// incoming chat lines to the room until the connection drops
func (h *Hub) Handler(c *websocket.Conn) {
	h.mu.Lock()
	backlog := make([]Event, len(h.history))
	copy(backlog, h.history)
	h.clients[c] = true
	h.mu.Unlock()

	for _, event := range backlog {
		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.Close()
	}()

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			break
		}
		var event Event
		if err := json.Unmarshal(data, &event); err != nil || event.Type != EventChat {
			continue
		}
		h.Publish(event)
	}
}
