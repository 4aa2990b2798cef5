package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/response"
)

type CalendarHandler struct {
	now func() time.Time
}

func NewHandler(now func() time.Time) *CalendarHandler {
	if now == nil {
		now = time.Now
	}
	return &CalendarHandler{now: now}
}

// Month renders a bare month page with no selection.
func (h *CalendarHandler) Month(c *gin.Context) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err)
		return
	}
	month, err := q.Resolve(calendar.MonthOf(h.now()))
	if err != nil {
		response.Error(c, err)
		return
	}

	w := calendar.NewWidget(calendar.Options{Start: &month, Now: h.now})
	c.JSON(http.StatusOK, NewPageResponse(w.Page()))
}
