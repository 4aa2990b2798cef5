package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers property routes. hostOnly must run after authMiddleware.
func RegisterRoutes(g *gin.RouterGroup, h *PropertyHandler, authMiddleware, hostOnly gin.HandlerFunc) {
	group := g.Group("/properties")

	// === Public Routes ===
	{
		group.GET("", h.List)
		group.GET("/locations", h.Locations)
		group.GET("/:id", h.Get)
	}

	// === Host Routes ===
	{
		group.PATCH("/:id/bulk-booking", authMiddleware, hostOnly, h.UpdateBulkBooking)
		group.POST("/:id/image", authMiddleware, hostOnly, h.UploadImage)
	}
}
