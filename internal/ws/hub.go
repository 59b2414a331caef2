package ws

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"puzzlebox/internal/logger"
	"puzzlebox/internal/session"
)

// Actor applies player actions sent over the socket.
type Actor interface {
	Act(playerID, sessionID string, a session.Action) (session.ActionResult, error)
}

// Hub fans session events out to every socket a player has open.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}

	actor   Actor
	dropped atomic.Int64
	stop    chan struct{}
	once    sync.Once
}

func NewHub(actor Actor) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		actor:   actor,
		stop:    make(chan struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.PlayerID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.PlayerID] = set
	}
	set[c] = struct{}{}
	logger.Debug("ws client registered", "player", c.PlayerID, "sockets", len(set))
}

func (h *Hub) OnDisconnect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.clients[c.PlayerID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.PlayerID)
		}
	}
	logger.Debug("ws client disconnected", "player", c.PlayerID)
}

// Publish queues ev on every socket of the player. It never blocks: a
// socket whose queue is full misses the event.
func (h *Hub) Publish(playerID string, ev session.Event) {
	h.mu.RLock()
	set := h.clients[playerID]
	if len(set) == 0 {
		h.mu.RUnlock()
		return
	}
	targets := make([]*Client, 0, len(set))
	for c := range set {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Error("ws event marshal failed", "type", ev.Type, "error", err)
		return
	}
	for _, c := range targets {
		if !c.enqueue(msg) {
			h.dropped.Add(1)
			logger.Warn("ws queue full, event dropped", "player", playerID, "type", ev.Type)
		}
	}
}

// Dropped counts events lost to full queues.
func (h *Hub) Dropped() int64 { return h.dropped.Load() }

// Connected reports how many sockets the player has open.
func (h *Hub) Connected(playerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[playerID])
}

func (h *Hub) StartCleanup() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				h.cleanupClosedClients()
			}
		}
	}()
}

// cleanupClosedClients drops sockets whose read pump exited without
// unregistering.
func (h *Hub) cleanupClosedClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for playerID, set := range h.clients {
		for c := range set {
			select {
			case <-c.Done:
				delete(set, c)
				removed++
			default:
			}
		}
		if len(set) == 0 {
			delete(h.clients, playerID)
		}
	}
	if removed > 0 {
		logger.Info("cleaned up closed ws clients", "count", removed)
	}
	return removed
}

// Stop ends the cleanup loop and closes every socket.
func (h *Hub) Stop() {
	h.once.Do(func() { close(h.stop) })

	h.mu.Lock()
	var all []*Client
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.clients = make(map[string]map[*Client]struct{})
	h.mu.Unlock()

	for _, c := range all {
		c.close()
	}
}
