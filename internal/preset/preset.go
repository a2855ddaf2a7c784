// Package preset defines the quick-range catalog and reverse detection of
// which preset, if any, a range corresponds to.
package preset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/jask/rangepicker/internal/dateutil"
)

// Key identifies a preset. None and Custom are highlight states, not catalog
// entries.
type Key string

const (
	None     Key = ""
	Custom   Key = "custom"
	Last7    Key = "last7"
	Last30   Key = "last30"
	Last90   Key = "last90"
	ThisYear Key = "thisYear"
	LastYear Key = "lastYear"
)

var ErrUnknownPreset = errors.New("unknown preset")

type Preset struct {
	Key   Key
	Label string
}

// Range resolves the preset against today. A preset whose key ComputeRange
// does not know returns an error wrapping ErrUnknownPreset.
func (p Preset) Range(today time.Time) (dateutil.Range, error) {
	return ComputeRange(p.Key, today)
}

// Catalog is an ordered list of presets. Order decides detection tie-breaks.
type Catalog []Preset

var base = Catalog{
	{Key: Last7, Label: "Last 7 days"},
	{Key: Last30, Label: "Last 30 days"},
	{Key: Last90, Label: "Last 90 days"},
	{Key: ThisYear, Label: "This year"},
}

// NewCatalog returns the default catalog, optionally ending with "Last year".
func NewCatalog(includeLastYear bool) Catalog {
	out := append(Catalog(nil), base...)
	if includeLastYear {
		out = append(out, Preset{Key: LastYear, Label: "Last year"})
	}
	return out
}

// ComputeRange resolves key to a concrete inclusive range relative to today.
func ComputeRange(key Key, today time.Time) (dateutil.Range, error) {
	t := dateutil.Normalize(today)
	switch key {
	case Last7:
		return trailing(t, 7), nil
	case Last30:
		return trailing(t, 30), nil
	case Last90:
		return trailing(t, 90), nil
	case ThisYear:
		return dateutil.Range{Start: time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location()), End: t}, nil
	case LastYear:
		y := t.Year() - 1
		return dateutil.Range{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location()),
			End:   time.Date(y, time.December, 31, 0, 0, 0, 0, t.Location()),
		}, nil
	default:
		return dateutil.Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(key))
	}
}

func trailing(today time.Time, days int) dateutil.Range {
	return dateutil.Range{Start: dateutil.AddDays(today, -(days - 1)), End: today}
}

// Detect returns the first catalog key whose range equals r by day, Custom
// when nothing matches, and None when r is incomplete.
func Detect(r dateutil.Range, today time.Time, c Catalog) Key {
	if !r.Complete() {
		return None
	}
	for _, p := range c {
		if pr, err := p.Range(today); err == nil && pr.Equal(r) {
			return p.Key
		}
	}
	return Custom
}

// Has reports whether key is part of the catalog.
func (c Catalog) Has(key Key) bool {
	_, ok := c.Get(key)
	return ok
}

func (c Catalog) Get(key Key) (Preset, bool) {
	for _, p := range c {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

func (c Catalog) Keys() []Key {
	out := make([]Key, 0, len(c))
	for _, p := range c {
		out = append(out, p.Key)
	}
	return out
}

// Lookup resolves a typed key or label case-insensitively. On a miss the error
// names the closest catalog key.
func (c Catalog) Lookup(input string) (Preset, error) {
	q := squash(input)
	if q == "" {
		return Preset{}, fmt.Errorf("%w: empty name", ErrUnknownPreset)
	}
	for _, p := range c {
		if q == squash(string(p.Key)) || q == squash(p.Label) {
			return p, nil
		}
	}

	best, bestDist := Preset{}, -1
	for _, p := range c {
		for _, cand := range []string{squash(string(p.Key)), squash(p.Label)} {
			d := levenshtein.ComputeDistance(q, cand)
			if bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	if bestDist < 0 {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, input)
	}
	return Preset{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownPreset, input, string(best.Key))
}

func squash(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "")
}
