// Package dateutil holds the calendar-day arithmetic shared by the picker.
//
// Every value is a time.Time truncated to midnight in its own location. A zero
// time.Time means "no day" throughout the module.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// GridCells is the number of cells in a month grid (6 weeks x 7 days).
const GridCells = 42

// Weekdays are the grid column headers, Sunday first.
var Weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Normalize truncates t to midnight in t's location. The zero time stays zero.
func Normalize(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func AddDays(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day+n, 0, 0, 0, 0, d.Location())
}

// AddMonths moves d by n calendar months. When the target month is shorter the
// day is clamped to its last day, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, d.Location())
	if last := DaysInMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, d.Location())
}

func StartOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// DaysInMonth returns the number of days in d's month.
func DaysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
}

func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func IsSameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// BuildMonthGrid lays out the month containing anchor as 42 Sunday-first cells.
// Cells outside the month are zero times.
func BuildMonthGrid(anchor time.Time) []time.Time {
	first := StartOfMonth(anchor)
	lead := int(first.Weekday())
	days := DaysInMonth(first)

	cells := make([]time.Time, GridCells)
	for i := 0; i < days; i++ {
		cells[lead+i] = AddDays(first, i)
	}
	return cells
}

// YearOptions lists centerYear-radius through centerYear+radius inclusive.
func YearOptions(centerYear, radius int) []int {
	if radius < 0 {
		radius = 0
	}
	out := make([]int, 0, 2*radius+1)
	for y := centerYear - radius; y <= centerYear+radius; y++ {
		out = append(out, y)
	}
	return out
}

// MonthName returns the English name for a zero-based month index.
func MonthName(idx int) string {
	if idx < 0 || idx > 11 {
		return ""
	}
	return time.Month(idx + 1).String()
}

// MonthNames returns the twelve month names in order.
func MonthNames() []string {
	out := make([]string, 12)
	for i := range out {
		out[i] = MonthName(i)
	}
	return out
}

// MonthLabel renders "March 2024".
func MonthLabel(d time.Time) string {
	return d.Format("January 2006")
}

// ParseDay parses s with layout in loc and normalizes the result.
func ParseDay(layout, s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return Normalize(t), nil
}

// FormatDay formats d with layout, or returns "" for the zero day.
func FormatDay(layout string, d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layout)
}
