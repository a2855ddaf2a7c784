package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jask/rangepicker/internal/dateutil"
)

// EntryRepo handles ledger entries.
type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo { return &EntryRepo{db: db} }

func (r *EntryRepo) Insert(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO entries(id, day, amount, description, created_at)
	VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 day=excluded.day,
	 amount=excluded.amount,
	 description=excluded.description;
	`, e.ID, e.Date.Format(DayLayout), e.AmountCents, e.Description)
	return err
}

func (r *EntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

// ListInRange returns entries dated between start and end inclusive, oldest first.
func (r *EntryRepo) ListInRange(ctx context.Context, start, end time.Time) ([]Entry, error) {
	lo, hi := bounds(start, end)
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, day, amount, description, created_at
	FROM entries
	WHERE day >= ? AND day <= ?
	ORDER BY day ASC, created_at ASC, id ASC`, lo.Format(DayLayout), hi.Format(DayLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var day string
		if err := rows.Scan(&e.ID, &day, &e.AmountCents, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Date, err = time.ParseInLocation(DayLayout, day, start.Location())
		if err != nil {
			return nil, fmt.Errorf("entry %s: bad day %q: %w", e.ID, day, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Summarize counts and totals entries between start and end inclusive. The
// daily totals hold one zero-filled value per day of the range.
func (r *EntryRepo) Summarize(ctx context.Context, start, end time.Time) (RangeSummary, error) {
	if start.IsZero() || end.IsZero() {
		return RangeSummary{}, nil
	}
	lo, hi := bounds(start, end)
	rows, err := r.db.QueryContext(ctx, `
	SELECT day, COUNT(*), SUM(amount)
	FROM entries
	WHERE day >= ? AND day <= ?
	GROUP BY day`, lo.Format(DayLayout), hi.Format(DayLayout))
	if err != nil {
		return RangeSummary{}, err
	}
	defer rows.Close()

	byDay := make(map[string]int64)
	var s RangeSummary
	for rows.Next() {
		var day string
		var n int
		var total int64
		if err := rows.Scan(&day, &n, &total); err != nil {
			return RangeSummary{}, err
		}
		byDay[day] = total
		s.Count += n
		s.TotalCents += total
	}
	if err := rows.Err(); err != nil {
		return RangeSummary{}, err
	}

	for d := lo; !d.After(hi); d = dateutil.AddDays(d, 1) {
		s.DailyTotals = append(s.DailyTotals, byDay[d.Format(DayLayout)])
	}
	return s, nil
}

func bounds(start, end time.Time) (time.Time, time.Time) {
	return dateutil.Range{Start: start, End: end}.Bounds()
}
