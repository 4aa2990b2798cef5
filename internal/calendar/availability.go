package calendar

// Status is the classification of a single day.
type Status int

const (
	Available Status = iota
	OutOfBounds
	Disabled
	Booked
)

func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case OutOfBounds:
		return "out_of_bounds"
	case Disabled:
		return "disabled"
	case Booked:
		return "booked"
	default:
		return "unknown"
	}
}

// Availability decides which days can be selected. Min and Max are inclusive
// bounds; an empty bound is open. Disabled and Booked are owned by the caller
// and never modified.
type Availability struct {
	Min      Date
	Max      Date
	Disabled Set
	Booked   Set
}

// OutOfBounds reports whether d falls before Min or after Max.
func (a Availability) OutOfBounds(d Date) bool {
	if a.Min != "" && d.Before(a.Min) {
		return true
	}
	if a.Max != "" && d.After(a.Max) {
		return true
	}
	return false
}

func (a Availability) IsDisabled(d Date) bool {
	return a.Disabled.Has(d)
}

func (a Availability) IsBooked(d Date) bool {
	return a.Booked.Has(d)
}

// Classify returns the first predicate that holds for d, or Available.
func (a Availability) Classify(d Date) Status {
	switch {
	case a.OutOfBounds(d):
		return OutOfBounds
	case a.IsDisabled(d):
		return Disabled
	case a.IsBooked(d):
		return Booked
	default:
		return Available
	}
}

// Selectable is true only when none of the predicates hold.
func (a Availability) Selectable(d Date) bool {
	return a.Classify(d) == Available
}
