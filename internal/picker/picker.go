// Package picker orchestrates the range picker: it holds the picker state,
// delegates clicks to the selection behavior, keeps the month pair in sync and
// derives everything a rendering shell needs to draw.
//
// The canonical range belongs to the owner. The controller publishes every
// range it produces through OnValueChange listeners and keeps the last value it
// emitted or was given through SetValue. A Controller is not safe for
// concurrent use.
package picker

import (
	"time"

	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/months"
	"github.com/jask/rangepicker/internal/preset"
	"github.com/jask/rangepicker/internal/selection"
)

const defaultYearRadius = 6

// Options are fixed for the lifetime of a Controller.
type Options struct {
	Mode                    selection.Mode
	IncludeLastYearPreset   bool
	AutoCloseOnPresetSelect bool
	EditingAfterComplete    bool
	// YearRadius bounds the year selector around each calendar's year.
	YearRadius int
	// Now defaults to time.Now.
	Now func() time.Time
}

// State is the observable picker state.
type State struct {
	Range               dateutil.Range
	ActiveField         selection.Field
	IsOpen              bool
	ActivePreset        preset.Key
	ShowValidationError bool
}

type Controller struct {
	opts     Options
	behavior selection.Behavior
	catalog  preset.Catalog
	months   *months.Pair

	state         State
	fieldExplicit bool
	closePending  bool
	listeners     []func(dateutil.Range)
}

func New(opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.YearRadius <= 0 {
		opts.YearRadius = defaultYearRadius
	}
	c := &Controller{
		opts:     opts,
		behavior: selection.Behavior{Mode: opts.Mode, EditingAfterComplete: opts.EditingAfterComplete},
		catalog:  preset.NewCatalog(opts.IncludeLastYearPreset),
	}
	c.months = months.New(opts.Mode, c.today())
	c.state.ActivePreset = preset.Last90
	return c
}

func (c *Controller) State() State            { return c.state }
func (c *Controller) Value() dateutil.Range   { return c.state.Range }
func (c *Controller) Catalog() preset.Catalog { return c.catalog }
func (c *Controller) Months() *months.Pair    { return c.months }
func (c *Controller) Options() Options        { return c.opts }

// OnValueChange registers fn to receive every range the controller produces.
func (c *Controller) OnValueChange(fn func(dateutil.Range)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// SetValue replaces the range with the owner's canonical value. A complete
// range clears the validation error and refreshes the preset highlight.
func (c *Controller) SetValue(r dateutil.Range) {
	c.state.Range = r
	if r.Complete() {
		c.state.ShowValidationError = false
		if p := preset.Detect(r, c.today(), c.catalog); p != preset.None {
			c.state.ActivePreset = p
		}
	}
}

// Open shows the picker without changing the active field.
func (c *Controller) Open() {
	c.fieldExplicit = false
	c.open(c.state.ActiveField, false)
}

// OpenFor shows the picker with field as the endpoint the next click edits.
func (c *Controller) OpenFor(field selection.Field) {
	c.state.ActiveField = field
	c.fieldExplicit = true
	c.open(field, true)
}

func (c *Controller) open(field selection.Field, explicit bool) {
	c.state.IsOpen = true
	c.closePending = false
	today := c.today()
	r := c.state.Range

	anchor, ok := c.behavior.OpenAnchor(selection.OpenContext{Range: r, ClickedField: field, Today: today})
	if !ok && explicit && c.opts.Mode == selection.Dependent && r.Complete() {
		anchor = r.Start
		if field == selection.FieldEnd {
			anchor = r.End
		}
	}
	c.months.SyncToRange(r, today, anchor)

	if p := preset.Detect(r, today, c.catalog); p != preset.None {
		c.state.ActivePreset = p
	}
}

// Close hides the picker. Validation is deferred: the owner applies its value
// update and then calls FinalizeClose.
func (c *Controller) Close() {
	c.state.IsOpen = false
	c.closePending = true
}

// FinalizeClose runs the validation deferred by Close. It reports whether a
// pending close was finalized.
func (c *Controller) FinalizeClose() bool {
	if !c.closePending {
		return false
	}
	c.closePending = false
	c.state.ShowValidationError = !c.state.Range.Complete()
	return true
}

// ClosePending reports whether Close ran without a matching FinalizeClose.
func (c *Controller) ClosePending() bool { return c.closePending }

// OutsideInteraction closes an open picker. It reports whether it did.
func (c *Controller) OutsideInteraction() bool {
	if !c.state.IsOpen {
		return false
	}
	c.Close()
	return true
}

// Clear empties the range, flags the missing endpoints and keeps the picker
// open on today's months.
func (c *Controller) Clear() {
	res := c.behavior.Clear()
	c.emit(res.Range)

	c.state.ShowValidationError = true
	c.state.ActivePreset = preset.None
	c.state.ActiveField = res.Field
	c.fieldExplicit = false

	c.state.IsOpen = true
	c.closePending = false
	c.months.SyncToRange(res.Range, c.today(), time.Time{})
}

// SelectPreset applies a catalog preset. key may also be a case variant or a
// label of a catalog preset. Anything else returns an error wrapping
// preset.ErrUnknownPreset and leaves the state untouched.
func (c *Controller) SelectPreset(key preset.Key) error {
	if !c.catalog.Has(key) {
		p, err := c.catalog.Lookup(string(key))
		if err != nil {
			return err
		}
		key = p.Key
	}
	today := c.today()
	next, err := preset.ComputeRange(key, today)
	if err != nil {
		return err
	}
	c.emit(next)

	c.state.ShowValidationError = false
	c.state.ActivePreset = key
	c.state.ActiveField = selection.FieldEnd
	c.fieldExplicit = false

	c.months.SyncToRange(next, today, time.Time{})

	if c.opts.AutoCloseOnPresetSelect {
		c.state.IsOpen = false
	}
	return nil
}

// PickDate applies a day click.
func (c *Controller) PickDate(d time.Time) {
	res := c.behavior.PickDate(selection.PickContext{
		Range:         c.state.Range,
		Clicked:       d,
		ActiveField:   c.state.ActiveField,
		FieldExplicit: c.fieldExplicit,
	})
	c.emit(res.Range)
	c.state.ActiveField = res.Field

	if !res.Range.Complete() {
		c.fieldExplicit = false
		return
	}
	c.state.ShowValidationError = false
	c.state.ActivePreset = preset.Detect(res.Range, c.today(), c.catalog)
}

func (c *Controller) PrevMonth(side months.Side) { c.months.Prev(side) }
func (c *Controller) NextMonth(side months.Side) { c.months.Next(side) }

func (c *Controller) SetMonthIndex(side months.Side, idx int) error {
	return c.months.SetMonthIndex(side, idx)
}

func (c *Controller) SetYear(side months.Side, year int) { c.months.SetYear(side, year) }

func (c *Controller) emit(r dateutil.Range) {
	c.state.Range = r
	for _, fn := range c.listeners {
		fn(r)
	}
}

func (c *Controller) today() time.Time {
	return dateutil.Normalize(c.opts.Now())
}
