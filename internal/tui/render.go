package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/picker"
	"github.com/jask/rangepicker/internal/selection"
)

const (
	graphHeight   = 6
	graphMaxWidth = 60
	emptyField    = "-"
)

func (a *App) View() string {
	v := a.ctl.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Date range"))
	b.WriteString("\n")
	b.WriteString(a.renderFields(v))
	b.WriteString("\n")
	b.WriteString(a.renderPresets(v))
	b.WriteString("\n")

	if v.IsOpen {
		b.WriteString("\n")
		b.WriteString(a.renderCalendar(v.Top, v.Weekdays))
		b.WriteString("\n\n")
		b.WriteString(a.renderCalendar(v.Bottom, v.Weekdays))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(v.Hint))
		b.WriteString("\n")
	}

	if s := a.renderSummary(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
		b.WriteString("\n")
	}

	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(a.renderHelp())
	return b.String()
}

func (a *App) renderFields(v picker.View) string {
	start := a.renderField("Start", v.Range.Start, v.IsOpen && v.ActiveField == selection.FieldStart, v.ShowStartInvalid)
	end := a.renderField("End", v.Range.End, v.IsOpen && v.ActiveField == selection.FieldEnd, v.ShowEndInvalid)
	row := lipgloss.JoinHorizontal(lipgloss.Top, start, " ", end)

	var msgs []string
	for _, m := range []string{v.GeneralMessage, v.StartMessage, v.EndMessage} {
		if m != "" {
			msgs = append(msgs, errorStyle.Render(m))
		}
	}
	if len(msgs) == 0 {
		return row
	}
	return row + "\n" + strings.Join(msgs, "\n")
}

func (a *App) renderField(label string, day time.Time, active, invalid bool) string {
	text := emptyField
	if !day.IsZero() {
		text = dateutil.FormatDay(a.opts.DateFormat, day)
	}
	style := fieldStyle
	switch {
	case invalid:
		style = fieldErrorStyle
	case active:
		style = fieldActiveStyle
	}
	return style.Render(label + ": " + text)
}

func (a *App) renderPresets(v picker.View) string {
	parts := make([]string, 0, len(v.Presets)+1)
	for i, p := range v.Presets {
		label := fmt.Sprintf("%d %s", i+1, p.Label)
		if p.Active {
			parts = append(parts, presetActiveStyle.Render(label))
			continue
		}
		parts = append(parts, presetStyle.Render(label))
	}
	if v.CustomActive {
		parts = append(parts, presetActiveStyle.Render("Custom"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderCalendar(cal picker.Calendar, weekdays []string) string {
	var b strings.Builder
	label := monthLabelStyle.Render(cal.Label)
	if cal.Side == a.side {
		label += mutedStyle.Render("  <")
	}
	b.WriteString(label)
	b.WriteString("\n")
	for _, w := range weekdays {
		b.WriteString(weekdayStyle.Render(w))
	}
	for i, c := range cal.Cells {
		if i%7 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(a.renderCell(c))
	}
	return b.String()
}

func (a *App) renderCell(c picker.Cell) string {
	if c.Empty {
		return dayStyle.Render("")
	}
	text := fmt.Sprintf("%d", c.Day.Day())
	style := dayStyle
	switch {
	case dateutil.IsSameDay(c.Day, a.cursor):
		style = dayCursorStyle
	case c.IsStart || c.IsEnd:
		style = dayEndStyle
	case c.InRange:
		style = dayInRangeStyle
	case c.IsToday:
		style = dayTodayStyle
	}
	return style.Render(text)
}

func (a *App) renderSummary() string {
	if a.summary == nil || !a.value.Complete() {
		return ""
	}
	s := a.summary
	line := fmt.Sprintf("%d entries over %d days, net %s", s.Count, len(s.DailyTotals), a.money(s.TotalCents))
	if len(s.DailyTotals) < 2 {
		return line
	}
	data := make([]float64, len(s.DailyTotals))
	for i, c := range s.DailyTotals {
		data[i] = float64(c) / 100
	}
	width := len(data)
	if width > graphMaxWidth {
		width = graphMaxWidth
	}
	if a.width > 0 && width > a.width-12 {
		width = max(a.width-12, 2)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("daily net"),
	)
	return line + "\n" + graph
}

func (a *App) money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, a.opts.CurrencySymbol, cents/100, cents%100)
}

func (a *App) renderHelp() string {
	var parts []string
	for _, kb := range a.keys.BindingsForScope(a.scope()) {
		key := kb.Keys[0]
		if kb.Action == actionPresetFirst {
			key = fmt.Sprintf("1-%d", len(a.ctl.Catalog()))
		}
		parts = append(parts, keyStyle.Render(key)+" "+helpDescStyle.Render(kb.Description))
	}
	return strings.Join(parts, "  ")
}
