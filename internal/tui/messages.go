package tui

import (
	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/database/repository"
)

// finalizeCloseMsg arrives after the close that scheduled it, so any value
// update the owner applied in between is visible to validation.
type finalizeCloseMsg struct{}

type summaryMsg struct {
	Range   dateutil.Range
	Summary repository.RangeSummary
}

type statusMsg string

type errMsg struct{ error }
