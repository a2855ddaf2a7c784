package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/rangepicker/internal/database/repository"
	"github.com/jask/rangepicker/internal/testdata"
)

const (
	sampleDays = 400
	sampleSeed = 42
)

// SeedSample fills an empty ledger with generated entries ending at today.
// It is idempotent and safe to run on every startup.
func SeedSample(ctx context.Context, db *sql.DB, today time.Time) (int, error) {
	repo := repository.NewEntryRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	entries := testdata.Generate(today, sampleDays, sampleSeed)
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries(id, day, amount, description) VALUES(?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, e.ID, e.Date.Format(repository.DayLayout), e.AmountCents, e.Description); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
