package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *CatalogHandler) {
	group := g.Group("/packages")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}
