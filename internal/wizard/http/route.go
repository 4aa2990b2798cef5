package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the booking wizard routes. optionalAuth lets a
// signed-in guest skip registration.
func RegisterRoutes(g *gin.RouterGroup, h *WizardHandler, optionalAuth gin.HandlerFunc) {
	group := g.Group("/wizards")
	{
		group.POST("", optionalAuth, h.Create)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Delete)

		group.POST("/:id/registration", h.Register)
		group.POST("/:id/package", h.SkipDates)
		group.POST("/:id/property", h.ChooseProperty)
		group.POST("/:id/payment", h.Pay)
		group.POST("/:id/back", h.Back)
		group.POST("/:id/finish", h.Finish)
	}

	cal := group.Group("/:id/calendar")
	{
		cal.POST("/open", h.OpenCalendar)
		cal.POST("/click", h.Click)
		cal.POST("/mode", h.SetMode)
		cal.POST("/next", h.NextMonth)
		cal.POST("/prev", h.PrevMonth)
		cal.POST("/confirm", h.ConfirmCalendar)
		cal.POST("/cancel", h.CancelCalendar)
	}
}
