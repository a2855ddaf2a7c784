package picker

import (
	"time"

	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/months"
	"github.com/jask/rangepicker/internal/preset"
	"github.com/jask/rangepicker/internal/selection"
)

const (
	MsgMissingStart = "Please select a start date."
	MsgMissingEnd   = "Please select an end date."
	MsgMissingBoth  = "Please select a start and end date."
)

const (
	hintPickStart = "Click a date to set Start."
	hintPickEnd   = "Now click a date to set End."
	hintRestart   = "Range selected. Click any date to start a new selection."
	hintEditStart = "Range selected. Click a date to move Start."
	hintEditEnd   = "Range selected. Click a date to move End."
)

// Cell is one slot of a month grid. Empty cells carry a zero Day.
type Cell struct {
	Day     time.Time
	Empty   bool
	InRange bool
	IsStart bool
	IsEnd   bool
	IsToday bool
}

type Calendar struct {
	Side       months.Side
	Anchor     time.Time
	Label      string
	MonthIndex int
	Year       int
	Years      []int
	Cells      []Cell
}

type PresetOption struct {
	Key    preset.Key
	Label  string
	Active bool
}

// View is everything a shell needs to render the picker, derived on demand.
type View struct {
	Range        dateutil.Range
	ActiveField  selection.Field
	IsOpen       bool
	ActivePreset preset.Key
	Presets      []PresetOption
	CustomActive bool

	Top    Calendar
	Bottom Calendar

	MonthNames []string
	Weekdays   []string

	ShowStartInvalid bool
	ShowEndInvalid   bool
	StartMessage     string
	EndMessage       string
	GeneralMessage   string
	Hint             string
}

func (c *Controller) View() View {
	s := c.state
	today := c.today()

	v := View{
		Range:        s.Range,
		ActiveField:  s.ActiveField,
		IsOpen:       s.IsOpen,
		ActivePreset: s.ActivePreset,
		CustomActive: s.ActivePreset == preset.Custom,
		Top:          c.calendar(months.Top, today),
		Bottom:       c.calendar(months.Bottom, today),
		MonthNames:   dateutil.MonthNames(),
		Weekdays:     append([]string(nil), dateutil.Weekdays...),
		Hint:         c.hint(),
	}
	for _, p := range c.catalog {
		v.Presets = append(v.Presets, PresetOption{Key: p.Key, Label: p.Label, Active: p.Key == s.ActivePreset})
	}

	missingStart := !s.Range.HasStart()
	missingEnd := !s.Range.HasEnd()
	if s.ShowValidationError {
		v.ShowStartInvalid = missingStart
		v.ShowEndInvalid = missingEnd
		switch {
		case missingStart && missingEnd:
			// Only shown once the picker is closed; open fields keep their flags.
			if !s.IsOpen {
				v.GeneralMessage = MsgMissingBoth
			}
		case missingStart:
			v.StartMessage = MsgMissingStart
		case missingEnd:
			v.EndMessage = MsgMissingEnd
		}
	}
	return v
}

func (c *Controller) calendar(side months.Side, today time.Time) Calendar {
	anchor := c.months.Anchor(side)
	cal := Calendar{
		Side:       side,
		Anchor:     anchor,
		Label:      dateutil.MonthLabel(anchor),
		MonthIndex: int(anchor.Month()) - 1,
		Year:       anchor.Year(),
		Years:      c.months.YearOptions(side, c.opts.YearRadius),
	}
	r := c.state.Range
	for _, d := range c.months.Grid(side) {
		if d.IsZero() {
			cal.Cells = append(cal.Cells, Cell{Empty: true})
			continue
		}
		cal.Cells = append(cal.Cells, Cell{
			Day:     d,
			InRange: r.Contains(d),
			IsStart: r.HasStart() && dateutil.IsSameDay(d, r.Start),
			IsEnd:   r.HasEnd() && dateutil.IsSameDay(d, r.End),
			IsToday: dateutil.IsSameDay(d, today),
		})
	}
	return cal
}

func (c *Controller) hint() string {
	r := c.state.Range
	switch {
	case !r.HasStart():
		return hintPickStart
	case !r.HasEnd():
		return hintPickEnd
	}
	if !c.behavior.EditsCompleteRange(c.fieldExplicit) {
		return hintRestart
	}
	if c.state.ActiveField == selection.FieldStart {
		return hintEditStart
	}
	return hintEditEnd
}
