package match

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive [Start, End] window over match dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

var ErrInvalidDateRange = fmt.Errorf("invalid date range")

// ParseDateRange parses two ISO dates and validates their order. The caller
// decides defaults; empty inputs are rejected here.
func ParseDateRange(start, end string) (DateRange, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start date %q", ErrInvalidDateRange, start)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end date %q", ErrInvalidDateRange, end)
	}
	return NewDateRange(from, to)
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: start %s after end %s",
			ErrInvalidDateRange, start.Format(dateLayout), end.Format(dateLayout))
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
