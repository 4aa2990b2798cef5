package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *CalendarHandler) {
	g.GET("/calendar/month", h.Month)
}
