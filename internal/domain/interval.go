package domain

import "time"

// Interval is a half-open time range [Start, End). A reservation ending at
// 10:00 does not conflict with one starting at 10:00.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start.UTC(), End: end.UTC()}
	if !iv.Valid() {
		return Interval{}, ErrInvalidInterval
	}
	return iv, nil
}

func (a Interval) Valid() bool {
	return !a.Start.IsZero() && !a.End.IsZero() && a.Start.Before(a.End)
}

// Overlaps reports whether two half-open intervals share at least one
// instant: aStart < bEnd && bStart < aEnd. This is the only overlap rule in
// the codebase; the repository's SQL filter expresses the same inequality.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
