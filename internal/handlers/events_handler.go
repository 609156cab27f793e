package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"bankist/internal/dto"
	"bankist/internal/models"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	eventWriteWait  = 10 * time.Second
	eventPongWait   = 60 * time.Second
	eventPingPeriod = (eventPongWait * 9) / 10
	eventReadLimit  = 512
)

// EventHub pushes session callbacks to websocket subscribers. It implements
// services.SessionObserver; broadcasts never block the session, and a
// subscriber whose buffer is full is dropped.
type EventHub struct {
	formatter  *Formatter
	upgrader   websocket.Upgrader
	bufferSize int
	logger     *slog.Logger

	mu      sync.Mutex
	clients map[*eventClient]struct{}
	closed  bool
}

type eventClient struct {
	send chan []byte
}

// NewEventHub creates a hub accepting connections from allowedOrigins; "*"
// accepts any origin
func NewEventHub(formatter *Formatter, allowedOrigins []string, bufferSize int, logger *slog.Logger) *EventHub {
	if bufferSize <= 0 {
		bufferSize = 16
	}

	h := &EventHub{
		formatter:  formatter,
		bufferSize: bufferSize,
		logger:     logger,
		clients:    make(map[*eventClient]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
		},
	}
	return h
}

// OnRefresh publishes the formatted account view
func (h *EventHub) OnRefresh(snapshot models.AccountSnapshot) {
	account := h.formatter.Snapshot(snapshot)
	h.broadcast(dto.EventMessage{
		Type:    dto.EventRefresh,
		Account: &account,
		At:      h.formatter.clock.Now(),
	})
}

// OnTick publishes the remaining idle time
func (h *EventHub) OnTick(remainingSeconds int) {
	h.broadcast(dto.EventMessage{
		Type:             dto.EventTick,
		RemainingSeconds: &remainingSeconds,
		Timer:            FormatTimer(remainingSeconds),
		At:               h.formatter.clock.Now(),
	})
}

// OnLogout publishes the end of the session
func (h *EventHub) OnLogout(reason string) {
	h.broadcast(dto.EventMessage{
		Type:   dto.EventLogout,
		Reason: reason,
		At:     h.formatter.clock.Now(),
	})
}

// ClientCount returns the number of connected subscribers
func (h *EventHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every subscriber and refuses new ones
func (h *EventHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

// Stream upgrades the request to a websocket and streams session events
// until the peer goes away
// @Summary Session event stream
// @Tags Session
// @Router /events [get]
func (h *EventHub) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.WarnContext(c.Request().Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return nil
	}

	client, ok := h.register()
	if !ok {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(eventWriteWait))
		return conn.Close()
	}

	go h.writePump(conn, client)
	h.readPump(conn, client)
	return nil
}

func (h *EventHub) register() (*eventClient, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, false
	}
	client := &eventClient{send: make(chan []byte, h.bufferSize)}
	h.clients[client] = struct{}{}
	return client, true
}

func (h *EventHub) unregister(client *eventClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *EventHub) broadcast(msg dto.EventMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to encode session event", slog.String("type", msg.Type), slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("dropping slow event subscriber", slog.String("type", msg.Type))
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// readPump discards inbound frames and unregisters the client once the
// connection fails
func (h *EventHub) readPump(conn *websocket.Conn, client *eventClient) {
	defer func() {
		h.unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(eventReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(eventPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(eventPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("event subscriber disconnected", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (h *EventHub) writePump(conn *websocket.Conn, client *eventClient) {
	ticker := time.NewTicker(eventPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case data, ok := <-client.send:
			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
