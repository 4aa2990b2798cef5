package http

import (
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
)

type ListPropertiesRequest struct {
	HostID     string `form:"host_id"`
	Location   string `form:"location"`
	PriceRange string `form:"price_range"`
	BulkOnly   bool   `form:"bulk_only"`
}

// UpdateBulkBookingRequest uses a pointer so an explicit false passes "required".
type UpdateBulkBookingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type PropertyResponse struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	BaseRate           int64    `json:"base_rate"`
	ImageURL           string   `json:"image_url"`
	ThumbnailURL       string   `json:"thumbnail_url,omitempty"`
	TotalBookings      int      `json:"total_bookings"`
	OccupancyRate      int      `json:"occupancy_rate"`
	BulkBookingEnabled bool     `json:"bulk_booking_enabled"`
	Description        string   `json:"description"`
	Amenities          []string `json:"amenities"`
	RoomTypes          []string `json:"room_types"`
	HostID             string   `json:"host_id"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func NewPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Location:           p.Location,
		BaseRate:           p.BaseRate,
		ImageURL:           p.ImageURL,
		ThumbnailURL:       p.ThumbnailURL,
		TotalBookings:      p.TotalBookings,
		OccupancyRate:      p.OccupancyRate,
		BulkBookingEnabled: p.BulkBookingEnabled,
		Description:        p.Description,
		Amenities:          nonNil(p.Amenities),
		RoomTypes:          nonNil(p.RoomTypes),
		HostID:             p.HostID,
	}
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}
