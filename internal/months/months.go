// Package months keeps the two displayed calendar months consistent with the
// selection mode and re-anchors them when the range changes.
package months

import (
	"errors"
	"fmt"
	"time"

	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/selection"
)

type Side int

const (
	Top Side = iota
	Bottom
)

func (s Side) String() string {
	if s == Bottom {
		return "bottom"
	}
	return "top"
}

var ErrMonthIndex = errors.New("month index out of range")

// Pair owns the top and bottom anchors. In Dependent mode bottom is always the
// month after top; in the other modes the two months only have to differ.
type Pair struct {
	mode   selection.Mode
	top    time.Time
	bottom time.Time
}

// New anchors the pair on today's month and the one after it.
func New(mode selection.Mode, today time.Time) *Pair {
	top := dateutil.StartOfMonth(today)
	return &Pair{mode: mode, top: top, bottom: dateutil.AddMonths(top, 1)}
}

func (p *Pair) Top() time.Time    { return p.top }
func (p *Pair) Bottom() time.Time { return p.bottom }

func (p *Pair) Anchor(side Side) time.Time {
	if side == Bottom {
		return p.bottom
	}
	return p.top
}

func (p *Pair) Grid(side Side) []time.Time {
	return dateutil.BuildMonthGrid(p.Anchor(side))
}

func (p *Pair) YearOptions(side Side, radius int) []int {
	return dateutil.YearOptions(p.Anchor(side).Year(), radius)
}

// EnsureConsistency restores the mode invariant after changed was moved.
func (p *Pair) EnsureConsistency(changed Side) {
	if p.mode == selection.Dependent {
		if changed == Top {
			p.bottom = dateutil.AddMonths(p.top, 1)
		} else {
			p.top = dateutil.AddMonths(p.bottom, -1)
		}
		return
	}

	if !dateutil.IsSameMonth(p.top, p.bottom) {
		return
	}
	if changed == Top {
		p.bottom = dateutil.AddMonths(p.top, 1)
	} else {
		p.top = dateutil.AddMonths(p.bottom, -1)
	}
}

// SyncToRange re-anchors both months after an open, clear or preset. A zero
// anchor means no explicit anchor. A range mid-selection is left where it is
// so the calendars do not jump under the user.
func (p *Pair) SyncToRange(r dateutil.Range, today, anchor time.Time) {
	r = r.Normalized()

	if r.Selecting() {
		p.EnsureConsistency(Bottom)
		return
	}

	if r.Empty() {
		p.set(Top, today)
		p.bottom = dateutil.AddMonths(p.top, 1)
		return
	}

	if p.mode == selection.Dependent {
		a := today
		switch {
		case !anchor.IsZero():
			a = anchor
		case r.HasStart():
			a = r.Start
		case r.HasEnd():
			a = r.End
		}
		p.set(Top, a)
		p.bottom = dateutil.AddMonths(p.top, 1)
		return
	}

	if !r.Complete() {
		return
	}
	lo, hi := r.Bounds()
	if dateutil.IsSameMonth(lo, hi) {
		p.set(Top, lo)
		p.bottom = dateutil.AddMonths(p.top, 1)
		return
	}
	p.set(Top, lo)
	p.set(Bottom, hi)
	p.EnsureConsistency(Bottom)
}

func (p *Pair) Prev(side Side) { p.shift(side, -1) }
func (p *Pair) Next(side Side) { p.shift(side, 1) }

// SetMonthIndex replaces the zero-based month of one side, keeping its year.
func (p *Pair) SetMonthIndex(side Side, idx int) error {
	if idx < 0 || idx > 11 {
		return fmt.Errorf("%w: %d", ErrMonthIndex, idx)
	}
	cur := p.Anchor(side)
	p.set(side, time.Date(cur.Year(), time.Month(idx+1), 1, 0, 0, 0, 0, cur.Location()))
	p.EnsureConsistency(side)
	return nil
}

// SetYear replaces the year of one side, keeping its month.
func (p *Pair) SetYear(side Side, year int) {
	cur := p.Anchor(side)
	p.set(side, time.Date(year, cur.Month(), 1, 0, 0, 0, 0, cur.Location()))
	p.EnsureConsistency(side)
}

func (p *Pair) shift(side Side, n int) {
	p.set(side, dateutil.AddMonths(p.Anchor(side), n))
	p.EnsureConsistency(side)
}

func (p *Pair) set(side Side, d time.Time) {
	m := dateutil.StartOfMonth(d)
	if side == Bottom {
		p.bottom = m
	} else {
		p.top = m
	}
}
