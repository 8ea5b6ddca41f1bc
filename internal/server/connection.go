package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// Connection wraps one WebSocket client. Each connection owns one service
// session; requests are handled in order on the read pump and responses go
// out through the buffered send channel.
type Connection struct {
	conn      *websocket.Conn
	service   *Service
	sessionID string
	send      chan *Message
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection wrapper bound to a service session.
func NewConnection(conn *websocket.Conn, service *Service, sessionID string, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:      conn,
		service:   service,
		sessionID: sessionID,
		send:      make(chan *Message, 16),
		logger:    logger.WithPrefix("conn").With("sessionID", sessionID),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the read and write pumps.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close tears the connection down once.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Done is closed when the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

func (c *Connection) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read error", "error", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.enqueue(errorMessage(CodeBadPayload, "message must be a JSON envelope with a type field"))
			continue
		}

		c.enqueue(c.service.Handle(c.sessionID, &msg))
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Warn("write error", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) enqueue(msg *Message) {
	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	default:
		c.logger.Warn("send buffer full, closing connection")
		_ = c.Close()
	}
}
