// Package selection implements the range-selection state machine: given the
// current range, the active field and a clicked day it decides the next range
// and the next active field.
package selection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jask/rangepicker/internal/dateutil"
)

// Mode is fixed per picker instance.
type Mode int

const (
	Independent Mode = iota
	Dependent
	ThreeState
)

var ErrInvalidMode = errors.New("invalid selection mode")

func (m Mode) String() string {
	switch m {
	case Independent:
		return "independent"
	case Dependent:
		return "dependent"
	case ThreeState:
		return "threestate"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode accepts the names produced by String, case-insensitively.
// "three-state" and "three_state" are accepted as well.
func ParseMode(s string) (Mode, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "independent", "":
		return Independent, nil
	case "dependent":
		return Dependent, nil
	case "threestate":
		return ThreeState, nil
	}
	return Independent, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Field is the endpoint the next click edits.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
)

func (f Field) String() string {
	if f == FieldEnd {
		return "end"
	}
	return "start"
}

// OpenContext describes a picker being opened, optionally for a field.
type OpenContext struct {
	Range        dateutil.Range
	ClickedField Field
	Today        time.Time
}

// PickContext describes a day click. FieldExplicit is set when the active
// field came from an "open for field" intent rather than from a prior click.
type PickContext struct {
	Range         dateutil.Range
	Clicked       time.Time
	ActiveField   Field
	FieldExplicit bool
}

type Result struct {
	Range dateutil.Range
	Field Field
}

// Behavior is the single strategy covering every mode. EditingAfterComplete
// only affects Independent mode: when false, a click on a complete range
// starts a new selection unless the field was opened explicitly.
type Behavior struct {
	Mode                 Mode
	EditingAfterComplete bool
}

// OpenAnchor is a hook for modes that want to choose the top calendar month
// on open. No current mode does; month anchoring lives in the months package.
func (b Behavior) OpenAnchor(OpenContext) (time.Time, bool) {
	return time.Time{}, false
}

func (b Behavior) Clear() Result {
	return Result{Field: FieldStart}
}

func (b Behavior) PickDate(ctx PickContext) Result {
	clicked := dateutil.Normalize(ctx.Clicked)
	r := ctx.Range.Normalized()

	if !r.HasStart() {
		return Result{Range: dateutil.Range{Start: clicked}, Field: FieldEnd}
	}

	if !r.HasEnd() {
		if clicked.Before(r.Start) {
			return Result{Range: dateutil.Range{Start: clicked}, Field: FieldEnd}
		}
		return Result{Range: dateutil.Range{Start: r.Start, End: clicked}, Field: FieldEnd}
	}

	if !b.EditsCompleteRange(ctx.FieldExplicit) {
		return Result{Range: dateutil.Range{Start: clicked}, Field: FieldEnd}
	}

	// Endpoints from outside may arrive unsorted; compare against the bounds
	// so the output is always ordered.
	lo, hi := r.Bounds()
	if ctx.ActiveField == FieldStart {
		if clicked.After(hi) {
			return Result{Range: dateutil.Range{Start: lo, End: clicked}, Field: FieldEnd}
		}
		return Result{Range: dateutil.Range{Start: clicked, End: hi}, Field: FieldStart}
	}
	if clicked.Before(lo) {
		return Result{Range: dateutil.Range{Start: clicked, End: hi}, Field: FieldStart}
	}
	return Result{Range: dateutil.Range{Start: lo, End: clicked}, Field: FieldEnd}
}

// EditsCompleteRange reports whether a click on a complete range edits the
// active endpoint instead of starting over.
func (b Behavior) EditsCompleteRange(fieldExplicit bool) bool {
	if b.Mode != Independent {
		return true
	}
	return b.EditingAfterComplete || fieldExplicit
}
