package match

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if r.Start.Month() != time.January || r.End.Month() != time.December {
		t.Fatalf("unexpected range: %v", r)
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{name: "start after end", start: "2024-12-31", end: "2024-01-01"},
		{name: "bad start format", start: "01/01/2024", end: "2024-12-31"},
		{name: "bad end format", start: "2024-01-01", end: "yesterday"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDateRange(tc.start, tc.end); !errors.Is(err, ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange, got %v", err)
			}
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r, err := ParseDateRange("2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if !r.Contains(r.Start) || !r.Contains(r.End) {
		t.Fatal("range must be inclusive of both bounds")
	}
	if r.Contains(r.Start.AddDate(0, 0, -1)) {
		t.Fatal("day before start must be outside the range")
	}
	if r.Contains(r.End.AddDate(0, 0, 1)) {
		t.Fatal("day after end must be outside the range")
	}
}

func TestNewDateRange_SingleDay(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	r, err := NewDateRange(day, day)
	if err != nil {
		t.Fatalf("single-day range must be valid: %v", err)
	}
	if !r.Contains(day) {
		t.Fatal("single-day range must contain its day")
	}
}
