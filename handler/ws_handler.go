package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	authpkg "github.com/Fatimadayan/Sooqbot/auth"
	"github.com/Fatimadayan/Sooqbot/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WSHandler serves the store dashboard websocket.
type WSHandler struct {
	hub       *realtime.Hub
	jwtSecret string
}

func NewWSHandler(hub *realtime.Hub, jwtSecret string) *WSHandler {
	return &WSHandler{hub: hub, jwtSecret: jwtSecret}
}

// DashboardSocket upgrades to WS and registers the store's dashboard
// connection. The dashboard token is passed as ?token= since browsers
// cannot set headers on websocket upgrades.
func (h *WSHandler) DashboardSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
			return
		}
		claims, err := authpkg.ParseAndValidate(h.jwtSecret, c.Query("token"))
		if err != nil || claims.StoreID != storeID.String() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		h.hub.RegisterStore(claims.StoreID, conn)
		// read loop: the dashboard only listens, but reading drains
		// control frames and detects disconnects
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.UnregisterStore(claims.StoreID, conn)
				break
			}
		}
	}
}
