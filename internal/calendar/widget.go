package calendar

import (
	"slices"
	"time"
)

// Legend entries shown under every month page.
var Legend = []LegendEntry{
	{Key: "selected", Label: "Selected"},
	{Key: "booked", Label: "Booked"},
	{Key: "today", Label: "Today"},
}

type LegendEntry struct {
	Key   string
	Label string
}

// Options configures a Widget.
type Options struct {
	Mode     Mode
	Selected []Date
	// Availability.Min defaults to today when empty.
	Availability Availability
	// MaxSelected caps the selection size; zero means no cap.
	MaxSelected int
	// Start is the first page shown; defaults to the month of today.
	Start *Month
	Now   func() time.Time
}

// DayView is an annotated cell of a rendered page.
type DayView struct {
	Cell
	Selected   bool
	Booked     bool
	Disabled   bool
	Today      bool
	Selectable bool
}

// Page is a rendered month.
type Page struct {
	Month       Month
	Title       string
	Weekdays    []string
	Days        []DayView
	Legend      []LegendEntry
	Mode        Mode
	Selected    []Date
	MaxSelected int
	Remaining   int
	CanConfirm  bool
}

type widgetState int

const (
	stateOpen widgetState = iota
	stateConfirmed
	stateCancelled
)

// Widget is a navigable month view over a selection. It is not safe for
// concurrent use; owners serialise access.
type Widget struct {
	mode      Mode
	month     Month
	selected  []Date
	avail     Availability
	max       int
	today     Date
	state     widgetState
	confirmed []Date
}

func NewWidget(opts Options) *Widget {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	today := DateOf(now())

	mode := opts.Mode
	if mode == "" {
		mode = ModeMultiple
	}

	avail := opts.Availability
	if avail.Min == "" {
		avail.Min = today
	}

	month := MonthOf(today.Time())
	if opts.Start != nil {
		month = *opts.Start
	}

	w := &Widget{
		mode:  mode,
		month: month,
		avail: avail,
		max:   opts.MaxSelected,
		today: today,
	}
	// Preselected dates go through the same filter as clicks.
	for _, d := range opts.Selected {
		if avail.Selectable(d) && !slices.Contains(w.selected, d) {
			w.selected = append(w.selected, d)
		}
	}
	if w.max > 0 && len(w.selected) > w.max {
		w.selected = w.selected[:w.max]
	}
	if mode == ModeRange {
		w.selected = asRange(w.selected)
	}
	return w
}

// asRange returns sel when it is empty, a single anchor or a contiguous
// interval, and the earliest date as a new anchor otherwise.
func asRange(sel []Date) []Date {
	if len(sel) <= 1 {
		return sel
	}
	sorted := slices.Clone(sel)
	slices.Sort(sorted)
	if slices.Equal(sorted, Between(sorted[0], sorted[len(sorted)-1])) {
		return sorted
	}
	return []Date{sorted[0]}
}

func (w *Widget) Mode() Mode {
	return w.mode
}

// SetMode switches the selection mode and keeps the current selection.
// Entering range mode collapses a gapped selection to its earliest date.
func (w *Widget) SetMode(m Mode) error {
	if w.state != stateOpen {
		return ErrWidgetClosed
	}
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	w.mode = m
	if m == ModeRange {
		w.selected = asRange(w.selected)
	}
	return nil
}

func (w *Widget) Month() Month {
	return w.month
}

func (w *Widget) Next() {
	w.month = w.month.Next()
}

func (w *Widget) Prev() {
	w.month = w.month.Prev()
}

func (w *Widget) GoTo(m Month) {
	w.month = m
}

// Selected returns a copy of the current selection.
func (w *Widget) Selected() []Date {
	return slices.Clone(w.selected)
}

// Remaining is the number of dates that can still be added, or zero when
// the widget has no cap.
func (w *Widget) Remaining() int {
	if w.max <= 0 {
		return 0
	}
	return max(w.max-len(w.selected), 0)
}

// Click applies a click on d. Clicks on unavailable dates are ignored and
// report changed=false with no error. A result larger than MaxSelected is
// rejected and the selection stays as it was.
func (w *Widget) Click(d Date) (changed bool, err error) {
	if w.state != stateOpen {
		return false, ErrWidgetClosed
	}
	if !w.avail.Selectable(d) {
		return false, nil
	}

	next := Next(w.mode, w.selected, d)

	// A range may not swallow a booked or disabled day; restart from the
	// clicked date instead.
	if w.mode == ModeRange {
		for _, day := range next {
			if !w.avail.Selectable(day) {
				next = []Date{d}
				break
			}
		}
	}

	if w.max > 0 && len(next) > w.max {
		return false, ErrSelectionLimit
	}

	w.selected = next
	return true, nil
}

// Page renders the current month.
func (w *Widget) Page() Page {
	selected := NewSet(w.selected...)
	cells := MonthGrid(w.month.Year, w.month.Month)

	days := make([]DayView, len(cells))
	for i, c := range cells {
		v := DayView{Cell: c}
		if !c.Blank {
			v.Selected = selected.Has(c.Date)
			v.Booked = w.avail.IsBooked(c.Date)
			v.Disabled = w.avail.OutOfBounds(c.Date) || w.avail.IsDisabled(c.Date)
			v.Today = c.Date == w.today
			v.Selectable = !v.Booked && !v.Disabled
		}
		days[i] = v
	}

	return Page{
		Month:       w.month,
		Title:       w.month.Title(),
		Weekdays:    Weekdays,
		Days:        days,
		Legend:      Legend,
		Mode:        w.mode,
		Selected:    w.Selected(),
		MaxSelected: w.max,
		Remaining:   w.Remaining(),
		CanConfirm:  w.state == stateOpen && len(w.selected) > 0,
	}
}

// Confirm closes the widget and returns the final selection. Confirming an
// already confirmed widget returns the same dates again.
func (w *Widget) Confirm() ([]Date, error) {
	switch w.state {
	case stateConfirmed:
		return slices.Clone(w.confirmed), nil
	case stateCancelled:
		return nil, ErrWidgetClosed
	}
	if len(w.selected) == 0 {
		return nil, ErrNothingSelected
	}
	w.state = stateConfirmed
	w.confirmed = slices.Clone(w.selected)
	return slices.Clone(w.confirmed), nil
}

// Cancel closes the widget and drops the in-progress selection.
func (w *Widget) Cancel() error {
	if w.state != stateOpen {
		return ErrWidgetClosed
	}
	w.state = stateCancelled
	w.selected = nil
	return nil
}

// Closed reports whether Confirm or Cancel has ended the widget.
func (w *Widget) Closed() bool {
	return w.state != stateOpen
}
