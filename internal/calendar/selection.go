package calendar

import "slices"

// Mode controls how a click changes the selection.
type Mode string

const (
	ModeSingle   Mode = "single"
	ModeMultiple Mode = "multiple"
	ModeRange    Mode = "range"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeSingle, ModeMultiple, ModeRange:
		return m, nil
	default:
		return "", ErrInvalidMode
	}
}

// Next computes the selection that follows a click on clicked. It never
// mutates prev and does not look at availability or caps; callers filter
// clicks and reject oversized results.
func Next(mode Mode, prev []Date, clicked Date) []Date {
	switch mode {
	case ModeSingle:
		return []Date{clicked}

	case ModeMultiple:
		if slices.Contains(prev, clicked) {
			out := make([]Date, 0, len(prev)-1)
			for _, d := range prev {
				if d != clicked {
					out = append(out, d)
				}
			}
			return out
		}
		out := make([]Date, 0, len(prev)+1)
		out = append(out, prev...)
		return append(out, clicked)

	case ModeRange:
		// Exactly one anchor closes the range; any other size starts over.
		if len(prev) != 1 {
			return []Date{clicked}
		}
		anchor := prev[0]
		if clicked.Before(anchor) {
			return []Date{clicked}
		}
		return Between(anchor, clicked)

	default:
		return slices.Clone(prev)
	}
}
