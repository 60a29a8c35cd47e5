package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	// CORSOrigins lists allowed origins; a single "*" allows any.
	CORSOrigins []string
	Ping        Pinger
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(h.Recovery(), h.RequestLogger(), corsMiddleware(cfg.CORSOrigins))
	r.NoRoute(h.notFound)

	r.GET("/health", h.health(cfg.Ping))

	api := r.Group("/api")
	{
		api.GET("/events", h.listEvents)
		api.GET("/events/categorized", h.categorizedEvents)
		api.GET("/events/next", h.nextEvent)
		api.GET("/events/:id", h.getEvent)
		api.POST("/events/:id/registrations", h.register)
		api.POST("/registrations/verify-phone", h.verifyPhone)
		api.GET("/happy-hours", h.happyHourStatus)
		api.POST("/admin/login", h.login)
	}

	admin := api.Group("/admin", h.RequireAdmin())
	{
		admin.GET("/events", h.adminListEvents)
		admin.POST("/events", h.createEvent)
		admin.GET("/events/:id", h.adminGetEvent)
		admin.PATCH("/events/:id", h.updateEvent)
		admin.DELETE("/events/:id", h.deleteEvent)

		admin.GET("/customers", h.listCustomers)
		admin.POST("/customers", h.createCustomer)
		admin.GET("/customers/:id", h.getCustomer)
		admin.PATCH("/customers/:id", h.updateCustomer)
		admin.DELETE("/customers/:id", h.deleteCustomer)

		admin.POST("/admins", h.registerAdmin)

		admin.GET("/happy-hours", h.getHappyHour)
		admin.POST("/happy-hours", h.createHappyHour)
		admin.PUT("/happy-hours/:id", h.updateHappyHour)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "auth-token", headerRequestID},
		ExposeHeaders:    []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
