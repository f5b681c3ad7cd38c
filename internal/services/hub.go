package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// ReportEvent is broadcast to every connected client when a report run
// completes.
type ReportEvent struct {
	Type      string    `json:"type"`
	RunID     string    `json:"run_id"`
	PoolID    string    `json:"pool_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportHub fans report-completed notifications out to websocket clients.
type ReportHub struct {
	clients    map[*HubClient]bool
	register   chan *HubClient
	unregister chan *HubClient
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewReportHub() *ReportHub {
	return &ReportHub{
		clients:    make(map[*HubClient]bool),
		register:   make(chan *HubClient),
		unregister: make(chan *HubClient),
		broadcast:  make(chan []byte, 16),
	}
}

// Run processes register, unregister and broadcast events. Call it on its
// own goroutine before serving the websocket endpoint.
func (h *ReportHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logrus.Debugf("WebSocket client registered (%d connected)", h.ClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logrus.Debugf("WebSocket client unregistered (%d connected)", h.ClientCount())

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastReportCompleted notifies all clients that a run finished.
func (h *ReportHub) BroadcastReportCompleted(runID, poolID string) {
	event := ReportEvent{
		Type:      "report_completed",
		RunID:     runID,
		PoolID:    poolID,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("Failed to marshal report event: %v", err)
		return
	}
	h.broadcast <- data
}

func (h *ReportHub) Register(client *HubClient) {
	h.register <- client
}

func (h *ReportHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HubClient is one websocket connection attached to the hub.
type HubClient struct {
	hub  *ReportHub
	conn *websocket.Conn
	send chan []byte
}

func NewHubClient(hub *ReportHub, conn *websocket.Conn) *HubClient {
	return &HubClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 16),
	}
}

// ReadPump drains inbound frames so pings and close frames are handled;
// clients never send application messages.
func (c *HubClient) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Debugf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

// WritePump forwards broadcast messages to the connection and keeps it
// alive with pings.
func (c *HubClient) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
