package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clubhouse/internal/domain/entities"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
	ctxAdmin        = "admin"
)

// RequestLogger tags each request with an id and logs method, path, status and latency.
func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()

		status := c.Writer.Status()
		evt := h.log.Info()
		if status >= http.StatusInternalServerError {
			evt = h.log.Error()
		}
		evt.Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Recovery turns panics into a 500 envelope.
func (h *Handler) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		h.log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("panic recovered")
		h.fail(c, http.StatusInternalServerError, codeInternal, nil)
	})
}

// RequireAdmin accepts "Authorization: Bearer <token>" or the older "auth-token" header.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := h.admins.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Set(ctxAdmin, admin)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return c.GetHeader("auth-token")
}

func currentAdmin(c *gin.Context) *entities.Admin {
	if v, ok := c.Get(ctxAdmin); ok {
		if admin, ok := v.(*entities.Admin); ok {
			return admin
		}
	}
	return nil
}

func (h *Handler) notFound(c *gin.Context) {
	h.fail(c, http.StatusNotFound, codeRouteNotFound, nil)
}
