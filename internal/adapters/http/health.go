package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

func (h *Handler) health(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok", "time": h.clock.Now()}
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				h.log.Warn().Err(err).Msg("health check: database unreachable")
				status["status"] = "degraded"
				c.JSON(http.StatusServiceUnavailable, envelope{Data: status})
				return
			}
		}
		c.JSON(http.StatusOK, envelope{Success: true, Data: status})
	}
}
