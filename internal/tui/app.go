// Package tui is the terminal shell around the range picker. It owns the
// canonical range, renders the picker view and summarizes the ledger entries
// that fall inside the selected range.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rangepicker/internal/database/repository"
	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/months"
	"github.com/jask/rangepicker/internal/picker"
	"github.com/jask/rangepicker/internal/selection"
)

// Summarizer is the slice of the ledger the shell needs.
type Summarizer interface {
	Summarize(ctx context.Context, start, end time.Time) (repository.RangeSummary, error)
}

type Options struct {
	DateFormat     string
	CurrencySymbol string
}

type App struct {
	ctx    context.Context
	ctl    *picker.Controller
	ledger Summarizer
	keys   *KeyRegistry
	opts   Options

	// value is the canonical range. The controller only proposes changes.
	value   dateutil.Range
	pending bool

	side    months.Side
	cursor  time.Time
	summary *repository.RangeSummary

	status    string
	statusErr bool
	width     int
}

// New wires the app as the owner of ctl's value. ledger may be nil.
func New(ctx context.Context, ctl *picker.Controller, ledger Summarizer, opts Options) *App {
	if opts.DateFormat == "" {
		opts.DateFormat = "01/02/2006"
	}
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "$"
	}
	a := &App{
		ctx:    ctx,
		ctl:    ctl,
		ledger: ledger,
		keys:   DefaultKeyRegistry(),
		opts:   opts,
		value:  ctl.Value(),
		side:   months.Top,
	}
	ctl.OnValueChange(func(r dateutil.Range) {
		a.value = r
		a.pending = true
	})
	a.cursor = a.defaultCursor()
	return a
}

func (a *App) Init() tea.Cmd {
	if a.value.Complete() {
		return a.summaryCmd(a.value)
	}
	return nil
}

// Value is the owner's canonical range.
func (a *App) Value() dateutil.Range { return a.value }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.BlurMsg:
		if a.ctl.OutsideInteraction() {
			return a, finalizeCloseCmd()
		}
	case finalizeCloseMsg:
		if a.ctl.FinalizeClose() && a.ctl.State().ShowValidationError {
			a.setStatus("range incomplete", true)
		}
	case summaryMsg:
		if m.Range.Equal(a.value) {
			s := m.Summary
			a.summary = &s
		}
	case statusMsg:
		a.setStatus(string(m), false)
	case errMsg:
		a.setStatus("error: "+m.Error(), true)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.scope()
	action := a.keys.Action(m, scope)
	prev := a.value

	var cmds []tea.Cmd
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionOpen:
		a.ctl.Open()
		a.resetCursor()
	case actionOpenStart:
		a.ctl.OpenFor(selection.FieldStart)
		a.resetCursor()
	case actionOpenEnd:
		a.ctl.OpenFor(selection.FieldEnd)
		a.resetCursor()
	case actionClose:
		a.ctl.Close()
		cmds = append(cmds, finalizeCloseCmd())
	case actionPick:
		a.ctl.PickDate(a.cursor)
	case actionLeft:
		a.moveCursor(-1)
	case actionRight:
		a.moveCursor(1)
	case actionUp:
		a.moveCursor(-7)
	case actionDown:
		a.moveCursor(7)
	case actionSwitchSide:
		a.side = otherSide(a.side)
		a.clampCursor()
	case actionPrevTop:
		a.ctl.PrevMonth(months.Top)
		a.clampCursor()
	case actionNextTop:
		a.ctl.NextMonth(months.Top)
		a.clampCursor()
	case actionPrevBottom:
		a.ctl.PrevMonth(months.Bottom)
		a.clampCursor()
	case actionNextBottom:
		a.ctl.NextMonth(months.Bottom)
		a.clampCursor()
	case actionClear:
		a.ctl.Clear()
		a.summary = nil
		a.resetCursor()
	case actionPresetFirst:
		idx := int(m.String()[0] - '1')
		keys := a.ctl.Catalog().Keys()
		if idx < 0 || idx >= len(keys) {
			return a, nil
		}
		if err := a.ctl.SelectPreset(keys[idx]); err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		a.resetCursor()
	default:
		return a, nil
	}

	if cmd := a.commit(prev); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// commit hands the proposed value back to the controller as the canonical one
// and refreshes the summary when a new complete range landed.
func (a *App) commit(prev dateutil.Range) tea.Cmd {
	if !a.pending {
		return nil
	}
	a.pending = false
	a.ctl.SetValue(a.value)
	if a.value.Equal(prev) {
		return nil
	}
	a.status = ""
	if !a.value.Complete() {
		a.summary = nil
		return nil
	}
	return a.summaryCmd(a.value)
}

func (a *App) summaryCmd(r dateutil.Range) tea.Cmd {
	if a.ledger == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := a.ledger.Summarize(a.ctx, r.Start, r.End)
		if err != nil {
			return errMsg{fmt.Errorf("summarize range: %w", err)}
		}
		return summaryMsg{Range: r, Summary: s}
	}
}

func finalizeCloseCmd() tea.Cmd {
	return func() tea.Msg { return finalizeCloseMsg{} }
}

func (a *App) scope() string {
	if a.ctl.State().IsOpen {
		return scopeOpen
	}
	return scopeClosed
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

// defaultCursor prefers the active endpoint, then today.
func (a *App) defaultCursor() time.Time {
	st := a.ctl.State()
	switch {
	case st.ActiveField == selection.FieldEnd && a.value.HasEnd():
		return dateutil.Normalize(a.value.End)
	case a.value.HasStart():
		return dateutil.Normalize(a.value.Start)
	}
	return dateutil.Normalize(a.ctl.Options().Now())
}

// resetCursor moves the cursor to its default day and the calendar showing it.
func (a *App) resetCursor() {
	a.cursor = a.defaultCursor()
	pair := a.ctl.Months()
	switch {
	case dateutil.IsSameMonth(a.cursor, pair.Top()):
		a.side = months.Top
	case dateutil.IsSameMonth(a.cursor, pair.Bottom()):
		a.side = months.Bottom
	default:
		a.clampCursor()
	}
}

// moveCursor shifts the cursor by n days, paging its calendar when it leaves
// the displayed month.
func (a *App) moveCursor(n int) {
	next := dateutil.AddDays(a.cursor, n)
	pair := a.ctl.Months()
	if other := otherSide(a.side); dateutil.IsSameMonth(next, pair.Anchor(other)) {
		a.side = other
		a.cursor = next
		return
	}
	anchor := pair.Anchor(a.side)
	switch {
	case next.Before(anchor):
		a.ctl.PrevMonth(a.side)
	case !dateutil.IsSameMonth(next, anchor):
		a.ctl.NextMonth(a.side)
	}
	a.cursor = next
	a.clampCursor()
}

// clampCursor keeps the cursor inside its calendar's month, keeping the day
// of month where possible.
func (a *App) clampCursor() {
	anchor := a.ctl.Months().Anchor(a.side)
	if dateutil.IsSameMonth(a.cursor, anchor) {
		return
	}
	d := a.cursor.Day()
	if last := dateutil.DaysInMonth(anchor); d > last {
		d = last
	}
	a.cursor = dateutil.AddDays(anchor, d-1)
}

func otherSide(s months.Side) months.Side {
	if s == months.Top {
		return months.Bottom
	}
	return months.Top
}
