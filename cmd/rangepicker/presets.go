package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/picker"
	"github.com/jask/rangepicker/internal/preset"
)

var (
	grayColor  = color.New(color.FgHiBlack)
	labelColor = color.New(color.Bold)
	rangeColor = color.New(color.FgCyan)
)

// runPresets prints the catalog resolved against today, or the single preset
// named by args[0].
func runPresets(w io.Writer, opts picker.Options, layout string, args []string) error {
	catalog := preset.NewCatalog(opts.IncludeLastYearPreset)
	today := dateutil.Normalize(opts.Now())

	list := []preset.Preset(catalog)
	if len(args) > 0 {
		p, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}
		list = []preset.Preset{p}
	}

	for _, p := range list {
		r, err := p.Range(today)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s %s\n",
			labelColor.Sprintf("%-14s", p.Label),
			rangeColor.Sprintf("%s - %s", dateutil.FormatDay(layout, r.Start), dateutil.FormatDay(layout, r.End)),
			grayColor.Sprintf("(%d days)", r.Days()),
		)
	}
	return nil
}

// runDetect parses two days in layout and prints the catalog preset they
// match, or Custom.
func runDetect(w io.Writer, opts picker.Options, layout string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: detect START END")
	}
	now := opts.Now()
	start, err := dateutil.ParseDay(layout, args[0], now.Location())
	if err != nil {
		return err
	}
	end, err := dateutil.ParseDay(layout, args[1], now.Location())
	if err != nil {
		return err
	}
	lo, hi := dateutil.Range{Start: start, End: end}.Bounds()
	r := dateutil.Range{Start: lo, End: hi}
	catalog := preset.NewCatalog(opts.IncludeLastYearPreset)
	key := preset.Detect(r, dateutil.Normalize(now), catalog)

	label := "Custom"
	if p, ok := catalog.Get(key); ok {
		label = p.Label
	}
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint(label), grayColor.Sprintf("(%d days)", r.Days()))
	return nil
}
