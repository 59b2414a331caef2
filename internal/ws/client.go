package ws

import (
	"encoding/json"
	"sync"
	"time"

	"puzzlebox/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second

	sendQueue = 256
)

type Client struct {
	PlayerID string
	Conn     *websocket.Conn
	Send     chan []byte

	Hub  *Hub
	Done chan struct{}

	mu     sync.Mutex
	closed bool
	quit   chan struct{}
	once   sync.Once
}

func NewClient(playerID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		PlayerID: playerID,
		Conn:     conn,
		Send:     make(chan []byte, sendQueue),
		Hub:      hub,
		Done:     make(chan struct{}),
		quit:     make(chan struct{}),
	}
}

func (c *Client) Run() {
	go c.writePump()

	c.Hub.Register(c)
	c.enqueue([]byte(`{"type":"ready"}`))

	c.readPump()
}

// enqueue reports false when the queue is full. Messages for a closed
// client are discarded.
func (c *Client) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) reply(v any) {
	msg, err := json.Marshal(v)
	if err != nil {
		logger.Error("ws reply marshal failed", "player", c.PlayerID, "error", err)
		return
	}
	if !c.enqueue(msg) {
		logger.Warn("ws queue full, reply dropped", "player", c.PlayerID)
	}
}

//read
func (c *Client) readPump() {
	defer func() {
		c.disconnect()
		close(c.Done)
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("ws read error", "player", c.PlayerID, "error", err)
			}
			return
		}
		c.handleMessage(msg)
	}
}

//write
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.quit:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		case msg := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("ws write error", "player", c.PlayerID, "error", err)
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.quit)
	})
}

//disconnect
func (c *Client) disconnect() {
	c.Hub.OnDisconnect(c)
	c.close()
	_ = c.Conn.Close()
}
