package calendar

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/apperror"
)

// Layout is the ISO form every Date is kept in.
const Layout = "2006-01-02"

var (
	ErrInvalidDate     = apperror.New(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	ErrInvalidMode     = apperror.New(http.StatusBadRequest, "mode must be one of single, multiple, range")
	ErrInvalidMonth    = apperror.New(http.StatusBadRequest, "month must be between 1 and 12")
	ErrDateUnavailable = apperror.New(http.StatusBadRequest, "date is not available")
	ErrSelectionLimit  = apperror.New(http.StatusBadRequest, "selection exceeds the allowed number of nights")
	ErrNothingSelected = apperror.New(http.StatusBadRequest, "select at least one date before confirming")
	ErrWidgetClosed    = apperror.New(http.StatusConflict, "calendar is already closed")
)

// Date is a calendar day identified by its ISO string. Equality and set
// membership are string based.
type Date string

// ParseDate validates s and returns it in canonical form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return Date(t.Format(Layout)), nil
}

// ParseDates validates every element of ss.
func ParseDates(ss []string) ([]Date, error) {
	out := make([]Date, 0, len(ss))
	for _, s := range ss {
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(Layout))
}

// Time returns d at midnight UTC. Invalid dates yield the zero time.
func (d Date) Time() time.Time {
	t, err := time.Parse(Layout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Date) String() string {
	return string(d)
}

// AddDays moves d by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// Between returns every day of the closed interval [from, to], one day at a
// time. It returns nil when to precedes from.
func Between(from, to Date) []Date {
	if to.Before(from) {
		return nil
	}
	var out []Date
	for d := from; !d.After(to); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// Strings converts dates back to their string form.
func Strings(dates []Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = string(d)
	}
	return out
}

// Set is an unordered collection of dates. A nil Set is empty.
type Set map[Date]struct{}

func NewSet(dates ...Date) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

func (s Set) Has(d Date) bool {
	_, ok := s[d]
	return ok
}
