package property

import (
	"net/http"

	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "property not found")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "only the property host can change this listing")
	ErrInvalidPriceRange = apperror.New(http.StatusBadRequest, "price range must be budget, mid or luxury")
	ErrInvalidImage      = apperror.New(http.StatusBadRequest, "image must be a jpeg or png file")
	ErrImageTooLarge     = apperror.New(http.StatusRequestEntityTooLarge, "image exceeds the upload limit")
)

// Property is a host's listing.
type Property struct {
	ID                 int64
	Name               string
	Location           string
	BaseRate           int64
	ImageURL           string
	ThumbnailURL       string
	TotalBookings      int
	OccupancyRate      int // display only
	BulkBookingEnabled bool
	Description        string
	Amenities          []string
	RoomTypes          []string
	HostID             string
}

// PriceRange is a nightly rate band used by the property browser.
type PriceRange string

const (
	PriceAll    PriceRange = ""
	PriceBudget PriceRange = "budget"
	PriceMid    PriceRange = "mid"
	PriceLuxury PriceRange = "luxury"
)

// Band edges, inclusive upper bounds.
const (
	budgetMaxRate int64 = 3000
	midMaxRate    int64 = 6000
)

func ParsePriceRange(s string) (PriceRange, error) {
	switch PriceRange(s) {
	case PriceAll, "all":
		return PriceAll, nil
	case PriceBudget, PriceMid, PriceLuxury:
		return PriceRange(s), nil
	}
	return "", ErrInvalidPriceRange
}

func (r PriceRange) Contains(rate int64) bool {
	switch r {
	case PriceBudget:
		return rate <= budgetMaxRate
	case PriceMid:
		return rate > budgetMaxRate && rate <= midMaxRate
	case PriceLuxury:
		return rate > midMaxRate
	}
	return true
}

// Filter narrows property listings. Zero values match everything.
type Filter struct {
	HostID     string
	Location   string
	PriceRange PriceRange
	BulkOnly   bool
}

func (f Filter) Matches(p *Property) bool {
	if f.HostID != "" && p.HostID != f.HostID {
		return false
	}
	if f.Location != "" && p.Location != f.Location {
		return false
	}
	if f.BulkOnly && !p.BulkBookingEnabled {
		return false
	}
	return f.PriceRange.Contains(p.BaseRate)
}
