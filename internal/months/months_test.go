package months

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/selection"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func assertMonths(t *testing.T, p *Pair, top, bottom time.Time) {
	t.Helper()
	if !p.Top().Equal(top) || !p.Bottom().Equal(bottom) {
		t.Fatalf("pair = %s/%s, want %s/%s",
			p.Top().Format("2006-01"), p.Bottom().Format("2006-01"),
			top.Format("2006-01"), bottom.Format("2006-01"))
	}
}

func assertInvariant(t *testing.T, p *Pair, mode selection.Mode, step string) {
	t.Helper()
	if p.Top().Day() != 1 || p.Bottom().Day() != 1 {
		t.Fatalf("%s: anchors not first-of-month: %v %v", step, p.Top(), p.Bottom())
	}
	if mode == selection.Dependent {
		if !p.Bottom().Equal(dateutil.AddMonths(p.Top(), 1)) {
			t.Fatalf("%s: dependent pair not consecutive: %s/%s", step, p.Top().Format("2006-01"), p.Bottom().Format("2006-01"))
		}
		return
	}
	if dateutil.IsSameMonth(p.Top(), p.Bottom()) {
		t.Fatalf("%s: pair shows the same month twice: %s", step, p.Top().Format("2006-01"))
	}
}

func TestNewAnchorsTodayAndNext(t *testing.T) {
	p := New(selection.Independent, time.Date(2024, time.June, 15, 10, 0, 0, 0, time.Local))
	assertMonths(t, p, day(2024, time.June, 1), day(2024, time.July, 1))
}

func TestIndependentNudgesOnCollision(t *testing.T) {
	p := New(selection.Independent, day(2024, time.June, 15))
	p.Next(Top)
	assertMonths(t, p, day(2024, time.July, 1), day(2024, time.August, 1))

	p.Prev(Bottom)
	// bottom landed on July, colliding with top; top moves away.
	assertMonths(t, p, day(2024, time.June, 1), day(2024, time.July, 1))

	p.SetYear(Bottom, 2026)
	assertMonths(t, p, day(2024, time.June, 1), day(2026, time.July, 1))
	p.Prev(Top)
	assertMonths(t, p, day(2024, time.May, 1), day(2026, time.July, 1))
}

func TestIndependentAllowsTopAfterBottom(t *testing.T) {
	p := New(selection.Independent, day(2024, time.June, 15))
	p.SetYear(Top, 2025)
	assertMonths(t, p, day(2025, time.June, 1), day(2024, time.July, 1))
}

func TestDependentStaysConsecutive(t *testing.T) {
	p := New(selection.Dependent, day(2024, time.December, 15))
	assertMonths(t, p, day(2024, time.December, 1), day(2025, time.January, 1))

	p.Next(Bottom)
	assertMonths(t, p, day(2025, time.January, 1), day(2025, time.February, 1))

	if err := p.SetMonthIndex(Bottom, 0); err != nil {
		t.Fatalf("SetMonthIndex: %v", err)
	}
	assertMonths(t, p, day(2024, time.December, 1), day(2025, time.January, 1))

	p.SetYear(Top, 2020)
	assertMonths(t, p, day(2020, time.December, 1), day(2021, time.January, 1))
}

func TestSetMonthIndexRejectsOutOfRange(t *testing.T) {
	p := New(selection.Dependent, day(2024, time.June, 15))
	for _, idx := range []int{-1, 12} {
		if err := p.SetMonthIndex(Top, idx); !errors.Is(err, ErrMonthIndex) {
			t.Fatalf("SetMonthIndex(%d) err = %v, want ErrMonthIndex", idx, err)
		}
	}
	assertMonths(t, p, day(2024, time.June, 1), day(2024, time.July, 1))
}

func TestSyncToRangeIndependent(t *testing.T) {
	today := day(2024, time.June, 15)
	tests := []struct {
		name        string
		r           dateutil.Range
		top, bottom time.Time
	}{
		{"empty", dateutil.Range{}, day(2024, time.June, 1), day(2024, time.July, 1)},
		{"same month", dateutil.Range{Start: day(2024, time.March, 5), End: day(2024, time.March, 20)}, day(2024, time.March, 1), day(2024, time.April, 1)},
		{"distinct months", dateutil.Range{Start: day(2024, time.January, 5), End: day(2024, time.May, 20)}, day(2024, time.January, 1), day(2024, time.May, 1)},
		{"unsorted input", dateutil.Range{Start: day(2024, time.May, 20), End: day(2024, time.January, 5)}, day(2024, time.January, 1), day(2024, time.May, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(selection.Independent, day(2020, time.February, 1))
			p.SyncToRange(tc.r, today, time.Time{})
			assertMonths(t, p, tc.top, tc.bottom)
		})
	}
}

func TestSyncToRangeSelectingDoesNotJump(t *testing.T) {
	p := New(selection.Independent, day(2024, time.June, 15))
	p.SetYear(Bottom, 2030)
	p.SyncToRange(dateutil.Range{Start: day(2021, time.March, 5)}, day(2024, time.June, 15), time.Time{})
	assertMonths(t, p, day(2024, time.June, 1), day(2030, time.July, 1))

	d := New(selection.Dependent, day(2024, time.June, 15))
	d.SyncToRange(dateutil.Range{Start: day(2021, time.March, 5)}, day(2024, time.June, 15), time.Time{})
	assertMonths(t, d, day(2024, time.June, 1), day(2024, time.July, 1))
}

func TestSyncToRangeDependent(t *testing.T) {
	today := day(2024, time.June, 15)
	full := dateutil.Range{Start: day(2024, time.January, 5), End: day(2024, time.May, 20)}

	p := New(selection.Dependent, day(2020, time.February, 1))
	p.SyncToRange(full, today, time.Time{})
	assertMonths(t, p, day(2024, time.January, 1), day(2024, time.February, 1))

	p.SyncToRange(full, today, full.End)
	assertMonths(t, p, day(2024, time.May, 1), day(2024, time.June, 1))

	p.SyncToRange(dateutil.Range{End: day(2023, time.November, 3)}, today, time.Time{})
	assertMonths(t, p, day(2023, time.November, 1), day(2023, time.December, 1))

	p.SyncToRange(dateutil.Range{}, today, time.Time{})
	assertMonths(t, p, day(2024, time.June, 1), day(2024, time.July, 1))
}

func TestInvariantHoldsUnderRandomNavigation(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	today := day(2024, time.June, 15)
	for _, mode := range []selection.Mode{selection.Independent, selection.Dependent, selection.ThreeState} {
		p := New(mode, today)
		for i := 0; i < 500; i++ {
			side := Side(rnd.Intn(2))
			var step string
			switch rnd.Intn(6) {
			case 0:
				p.Prev(side)
				step = "prev"
			case 1:
				p.Next(side)
				step = "next"
			case 2:
				_ = p.SetMonthIndex(side, rnd.Intn(12))
				step = "setMonthIndex"
			case 3:
				p.SetYear(side, 2020+rnd.Intn(8))
				step = "setYear"
			case 4:
				s := dateutil.AddDays(today, rnd.Intn(400)-200)
				e := dateutil.AddDays(s, rnd.Intn(120))
				p.SyncToRange(dateutil.Range{Start: s, End: e}, today, time.Time{})
				step = "syncToRange"
			case 5:
				p.SyncToRange(dateutil.Range{}, today, time.Time{})
				step = "syncEmpty"
			}
			assertInvariant(t, p, mode, step)
		}
	}
}

func TestGridAndYears(t *testing.T) {
	p := New(selection.Independent, day(2024, time.March, 10))
	if got := p.Grid(Top)[5]; !got.Equal(day(2024, time.March, 1)) {
		t.Fatalf("top grid cell 5 = %v", got)
	}
	years := p.YearOptions(Bottom, 6)
	if len(years) != 13 || years[0] != 2018 || years[12] != 2030 {
		t.Fatalf("years = %v", years)
	}
}
