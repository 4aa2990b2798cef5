package calendar

import (
	"fmt"
	"time"
)

// Weekdays is the header row of every month page, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one slot of a month page. Blank cells pad the first week so that
// day 1 sits under its weekday.
type Cell struct {
	Blank bool
	Day   int
	Date  Date
}

// Month identifies a calendar page.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates a 1-based month number.
func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the page containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next moves one month forward, rolling the year over after December.
func (m Month) Next() Month {
	return m.shift(1)
}

// Prev moves one month back, rolling the year over before January.
func (m Month) Prev() Month {
	return m.shift(-1)
}

func (m Month) shift(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return MonthOf(t)
}

func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// First is day 1 of the month.
func (m Month) First() Date {
	return DateOf(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC))
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lays out a month: one blank per weekday index of day 1 (Sunday
// is 0), then every day in ascending order. There is no trailing padding.
func MonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	blanks := int(first.Weekday())
	days := DaysIn(year, month)

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{
			Day:  day,
			Date: DateOf(first.AddDate(0, 0, day-1)),
		})
	}
	return cells
}
