package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
	"github.com/nekogravitycat/bulkstay-backend/internal/booking"
	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	calendarhttp "github.com/nekogravitycat/bulkstay-backend/internal/calendar/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/request"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/response"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
)

type Handler struct {
	service     booking.Service
	propService property.Service
	now         func() time.Time
}

func NewHandler(service booking.Service, propService property.Service, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		service:     service,
		propService: propService,
		now:         now,
	}
}

// Create books a package for the authenticated guest.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	dates, err := calendar.ParseDates(req.Dates)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:      auth.GetUserID(c),
		PackageID:   req.PackageID,
		PropertyID:  req.PropertyID,
		Dates:       dates,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List returns the caller's own bookings.
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(newBookingResponses(bookings)))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByKeyRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByKeyRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), req.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// PropertyCalendar renders a month of a property with its booked dates marked.
func (h *Handler) PropertyCalendar(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, err)
		return
	}
	var q calendarhttp.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err)
		return
	}
	month, err := q.Resolve(calendar.MonthOf(h.now()))
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.propService.GetByID(ctx, uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	booked, err := h.service.BookedDates(ctx, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	w := calendar.NewWidget(calendar.Options{
		Availability: calendar.Availability{Booked: calendar.NewSet(booked...)},
		Start:        &month,
		Now:          h.now,
	})
	c.JSON(http.StatusOK, calendarhttp.NewPageResponse(w.Page()))
}

// Summary reports revenue and occupancy of a property to its host.
func (h *Handler) Summary(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, err)
		return
	}

	sum, err := h.service.HostSummary(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSummaryResponse(sum))
}
