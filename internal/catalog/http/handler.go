package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/request"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/response"
)

type CatalogHandler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List returns every package on offer.
func (h *CatalogHandler) List(c *gin.Context) {
	pkgs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PackageResponse, len(pkgs))
	for i, p := range pkgs {
		items[i] = NewPackageResponse(p)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *CatalogHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, NewPackageResponse(p))
}
