package booking

import (
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
)

// Seed returns the demo bookings of guest "1": two package purchases without
// a property and three stays at property 1.
func Seed() []*Booking {
	villa := int64(1)
	ptr := func(id int64) *int64 { return &id }
	return []*Booking{
		{
			ID: "BK1704067200000", UserID: "1", PackageID: 2, Status: StatusConfirmed,
			TentativeDates: []calendar.Date{"2024-12-15", "2024-12-16", "2024-12-17", "2025-01-10", "2025-01-11"},
			TotalAmount:    74999,
			CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "BK1706745600000", UserID: "1", PackageID: 1, Status: StatusConfirmed,
			TentativeDates: []calendar.Date{"2024-11-20", "2024-11-21", "2024-12-05", "2024-12-06"},
			TotalAmount:    24999,
			CreatedAt:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "BK001", UserID: "1", PackageID: 2, PropertyID: ptr(villa), Status: StatusConfirmed,
			TentativeDates: calendar.Between("2025-09-15", "2025-09-17"),
			TotalAmount:    89997,
			CreatedAt:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "BK002", UserID: "1", PackageID: 1, PropertyID: ptr(villa), Status: StatusConfirmed,
			TentativeDates: calendar.Between("2025-09-25", "2025-09-26"),
			TotalAmount:    29499,
			CreatedAt:      time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "BK003", UserID: "1", PackageID: 3, PropertyID: ptr(villa), Status: StatusPending,
			TentativeDates: calendar.Between("2025-10-05", "2025-10-08"),
			TotalAmount:    147499,
			CreatedAt:      time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		},
	}
}
