package http

import (
	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
)

// MonthQuery selects the month to render. Zero values mean the current month.
type MonthQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// Resolve returns the requested month, defaulting missing parts to fallback.
func (q MonthQuery) Resolve(fallback calendar.Month) (calendar.Month, error) {
	year, month := q.Year, q.Month
	if year == 0 {
		year = fallback.Year
	}
	if month == 0 {
		month = int(fallback.Month)
	}
	return calendar.NewMonth(year, month)
}

type DayResponse struct {
	Blank      bool   `json:"blank"`
	Day        int    `json:"day,omitempty"`
	Date       string `json:"date,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
	Booked     bool   `json:"booked,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`
	Today      bool   `json:"today,omitempty"`
	Selectable bool   `json:"selectable"`
}

type LegendResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PageResponse is one rendered calendar month.
type PageResponse struct {
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	Title       string           `json:"title"`
	Weekdays    []string         `json:"weekdays"`
	Days        []DayResponse    `json:"days"`
	Legend      []LegendResponse `json:"legend"`
	Mode        string           `json:"mode"`
	Selected    []string         `json:"selected"`
	MaxSelected int              `json:"max_selected,omitempty"`
	Remaining   int              `json:"remaining,omitempty"`
	CanConfirm  bool             `json:"can_confirm"`
}

func NewPageResponse(p calendar.Page) PageResponse {
	days := make([]DayResponse, len(p.Days))
	for i, d := range p.Days {
		days[i] = DayResponse{
			Blank:      d.Blank,
			Day:        d.Day,
			Date:       string(d.Date),
			Selected:   d.Selected,
			Booked:     d.Booked,
			Disabled:   d.Disabled,
			Today:      d.Today,
			Selectable: d.Selectable,
		}
	}

	legend := make([]LegendResponse, len(p.Legend))
	for i, l := range p.Legend {
		legend[i] = LegendResponse{Key: l.Key, Label: l.Label}
	}

	return PageResponse{
		Year:        p.Month.Year,
		Month:       int(p.Month.Month),
		Title:       p.Title,
		Weekdays:    p.Weekdays,
		Days:        days,
		Legend:      legend,
		Mode:        string(p.Mode),
		Selected:    calendar.Strings(p.Selected),
		MaxSelected: p.MaxSelected,
		Remaining:   p.Remaining,
		CanConfirm:  p.CanConfirm,
	}
}
