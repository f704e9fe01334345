package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"workpulse/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAssessmentReady MessageType = "assessment_ready"
	MsgError           MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per user and pushes assessment events
// so dashboards learn a recomputation finished without polling.
type Hub struct {
	// userID -> open connections (a user may have several tabs)
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *userMessage
	log        *zap.Logger
}

// Connection represents one WebSocket client
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

type userMessage struct {
	userID  string
	message *Message
}

// NewHub creates a new WebSocket hub
func NewHub(log *zap.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *userMessage, 256),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.UserID] == nil {
				h.conns[conn.UserID] = make(map[*Connection]bool)
			}
			h.conns[conn.UserID][conn] = true
			h.mu.Unlock()
			h.log.Debug("ws client connected", zap.String("userId", conn.UserID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.conns[conn.UserID]; ok && conns[conn] {
				delete(conns, conn)
				close(conn.Send)
				if len(conns) == 0 {
					delete(h.conns, conn.UserID)
				}
			}
			h.mu.Unlock()
			h.log.Debug("ws client disconnected", zap.String("userId", conn.UserID))

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg.message)
			h.mu.RLock()
			for conn := range h.conns[msg.userID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// AssessmentReady pushes a computed assessment to the user's open clients
// (implements service.Broadcaster)
func (h *Hub) AssessmentReady(userID string, assessment *model.OverallAssessment) {
	payload, _ := json.Marshal(assessment)
	h.broadcast <- &userMessage{
		userID: userID,
		message: &Message{
			Type:    MsgAssessmentReady,
			Payload: payload,
		},
	}
}
