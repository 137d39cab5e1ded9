package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	storepkg "github.com/Fatimadayan/Sooqbot/store"
)

// HealthHandler reports readiness of the database and the generation API
// credential. The two probes are independent: a database outage flips only
// the database field.
type HealthHandler struct {
	db           *gorm.DB // nil when running on the in-memory backend
	stores       storepkg.Repository
	aiConfigured bool
}

func NewHealthHandler(db *gorm.DB, stores storepkg.Repository, aiConfigured bool) *HealthHandler {
	return &HealthHandler{db: db, stores: stores, aiConfigured: aiConfigured}
}

func (h *HealthHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		database := gin.H{"ok": true}
		healthy := true
		if h.db != nil {
			if err := h.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
				database = gin.H{"ok": false, "error": err.Error()}
				healthy = false
			}
		} else {
			database["mode"] = "memory"
		}
		if healthy {
			if n, err := h.stores.CountStores(ctx); err != nil {
				database = gin.H{"ok": false, "error": err.Error()}
				healthy = false
			} else {
				database["stores"] = n
			}
		}

		status := "ok"
		code := http.StatusOK
		if !healthy {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":   status,
			"database": database,
			"ai":       gin.H{"configured": h.aiConfigured},
		})
	}
}
