package repository

import "time"

// DayLayout is how entry days are stored.
const DayLayout = "2006-01-02"

// Entry represents a dated ledger row.
type Entry struct {
	ID          string
	Date        time.Time
	AmountCents int64
	Description string
	CreatedAt   time.Time
}

// RangeSummary aggregates the entries of an inclusive day range.
type RangeSummary struct {
	Count       int
	TotalCents  int64
	DailyTotals []int64
}
