package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes and the booking views of properties.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, hostOnly gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.POST("/:id/cancel", h.Cancel)
	}

	props := g.Group("/properties")
	{
		props.GET("/:id/calendar", h.PropertyCalendar)
		props.GET("/:id/summary", authMiddleware, hostOnly, h.Summary)
	}
}
