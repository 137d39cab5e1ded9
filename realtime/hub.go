package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Fatimadayan/Sooqbot/logger"
)

// Hub tracks one dashboard websocket per store. Opening a second dashboard
// for the same store replaces the old connection.
type Hub struct {
	mu      sync.RWMutex
	byStore map[string]*wsConn
}

func NewHub() *Hub {
	return &Hub{byStore: make(map[string]*wsConn)}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (h *Hub) RegisterStore(storeID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byStore[storeID]; ok {
		old.conn.Close()
	}
	h.byStore[storeID] = &wsConn{conn: conn}
}

// UnregisterStore removes the store's dashboard entry, but only if it
// still holds the given connection. A connection displaced by
// RegisterStore must not tear down its replacement when its read loop
// winds down.
func (h *Hub) UnregisterStore(storeID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.byStore[storeID]
	if !ok || c.conn != conn {
		return
	}
	c.conn.Close()
	delete(h.byStore, storeID)
}

// NotifyStore sends a typed event payload to the store's dashboard if
// connected. Events for disconnected dashboards are dropped.
func (h *Hub) NotifyStore(storeID string, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byStore[storeID]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	msg := map[string]any{"event": event, "data": payload}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(msg); err != nil {
		logger.Log.Warn("dashboard write failed",
			zap.String("store_id", storeID), zap.String("event", event), zap.Error(err))
		return err
	}
	return nil
}
