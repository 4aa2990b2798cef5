package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/request"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/response"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
)

type PropertyHandler struct {
	service property.Service
}

func NewHandler(service property.Service) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List returns properties, optionally narrowed by host, location, price band
// and bulk-booking availability.
func (h *PropertyHandler) List(c *gin.Context) {
	var req ListPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	priceRange, err := property.ParsePriceRange(req.PriceRange)
	if err != nil {
		response.Error(c, err)
		return
	}

	props, err := h.service.List(c.Request.Context(), property.Filter{
		HostID:     req.HostID,
		Location:   req.Location,
		PriceRange: priceRange,
		BulkOnly:   req.BulkOnly,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PropertyResponse, len(props))
	for i, p := range props {
		items[i] = NewPropertyResponse(p)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *PropertyHandler) Locations(c *gin.Context) {
	locs, err := h.service.Locations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, LocationsResponse{Locations: nonNil(locs)})
}

func (h *PropertyHandler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPropertyResponse(p))
}

// UpdateBulkBooking toggles bulk booking on a listing owned by the caller.
func (h *PropertyHandler) UpdateBulkBooking(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, err)
		return
	}
	var body UpdateBulkBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err)
		return
	}

	p, err := h.service.SetBulkBookingEnabled(c.Request.Context(), uri.ID, *body.Enabled, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPropertyResponse(p))
}

// UploadImage replaces the listing photo from the multipart "image" field.
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > property.MaxImageSize {
		response.Error(c, property.ErrImageTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	p, err := h.service.UploadImage(c.Request.Context(), uri.ID, auth.GetUserID(c), fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPropertyResponse(p))
}
