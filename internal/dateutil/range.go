package dateutil

import "time"

// Range is an inclusive span of calendar days. A zero Start or End means the
// endpoint has not been chosen yet.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) HasStart() bool { return !r.Start.IsZero() }
func (r Range) HasEnd() bool   { return !r.End.IsZero() }

// Empty reports whether neither endpoint is set.
func (r Range) Empty() bool { return !r.HasStart() && !r.HasEnd() }

// Complete reports whether both endpoints are set.
func (r Range) Complete() bool { return r.HasStart() && r.HasEnd() }

// Selecting reports the intermediate state where a start was chosen and the
// end is still pending.
func (r Range) Selecting() bool { return r.HasStart() && !r.HasEnd() }

// Normalized truncates both endpoints to midnight without reordering them.
func (r Range) Normalized() Range {
	return Range{Start: Normalize(r.Start), End: Normalize(r.End)}
}

// Bounds returns the earlier and later endpoint of a complete range regardless
// of the order they were stored in.
func (r Range) Bounds() (lo, hi time.Time) {
	n := r.Normalized()
	if n.End.Before(n.Start) {
		return n.End, n.Start
	}
	return n.Start, n.End
}

// Contains reports whether d falls inside a complete range, endpoints included.
func (r Range) Contains(d time.Time) bool {
	if !r.Complete() {
		return false
	}
	lo, hi := r.Bounds()
	n := Normalize(d)
	return !n.Before(lo) && !n.After(hi)
}

// Equal compares two ranges by day. Absent endpoints only match absent ones.
func (r Range) Equal(o Range) bool {
	return sameOptionalDay(r.Start, o.Start) && sameOptionalDay(r.End, o.End)
}

// Days returns the number of days in a complete range, endpoints included.
func (r Range) Days() int {
	if !r.Complete() {
		return 0
	}
	lo, hi := r.Bounds()
	return int((utcDay(hi).Unix()-utcDay(lo).Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// utcDay moves a calendar day to UTC midnight so day differences ignore DST.
func utcDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func sameOptionalDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() && b.IsZero()
	}
	return IsSameDay(a, b)
}
