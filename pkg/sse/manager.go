package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
)

// Event is a named payload pushed to one user's open streams
type Event struct {
	UserID string
	Type   string
	Data   interface{}
}

type client struct {
	userID string
	send   chan Event
}

// Manager fans events out to per-user SSE connections. A user may hold
// several connections (tabs); each gets every event.
type Manager struct {
	mu         sync.RWMutex
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	events     chan Event
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan Event, 64),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			m.mu.Lock()
			m.clients[c] = true
			m.mu.Unlock()
		case c := <-m.unregister:
			m.mu.Lock()
			if m.clients[c] {
				delete(m.clients, c)
				close(c.send)
			}
			m.mu.Unlock()
		case ev := <-m.events:
			m.mu.RLock()
			for c := range m.clients {
				if c.userID != ev.UserID {
					continue
				}
				select {
				case c.send <- ev:
				default:
					// slow consumer, drop rather than block the loop
				}
			}
			m.mu.RUnlock()
		}
	}
}

// SendToUser queues an event for every open stream of the user
func (m *Manager) SendToUser(userID string, eventType string, payload interface{}) {
	select {
	case m.events <- Event{UserID: userID, Type: eventType, Data: payload}:
	default:
		log.Printf("[SSE] Event queue full, dropping %s for user %s", eventType, userID)
	}
}

// ServeHTTP holds the connection open and streams events until the client
// disconnects
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	cl := &client{userID: userID, send: make(chan Event, 16)}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	c.Writer.Flush()
	for {
		select {
		case ev, ok := <-cl.send:
			if !ok {
				return
			}
			data, err := json.Marshal(ev.Data)
			if err != nil {
				log.Printf("[SSE] Failed to marshal %s event: %v", ev.Type, err)
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
