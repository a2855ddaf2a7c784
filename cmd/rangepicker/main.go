package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rangepicker/internal/config"
	"github.com/jask/rangepicker/internal/database"
	"github.com/jask/rangepicker/internal/database/repository"
	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/picker"
	"github.com/jask/rangepicker/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "config" {
		if err := runConfig(os.Stdout, cfg, os.Args[2:]); err != nil {
			log.Fatalf("config: %v", err)
		}
		return
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}
	now := func() time.Time { return time.Now().In(loc) }

	opts, err := cfg.PickerOptions()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	opts.Now = now

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "presets":
			if err := runPresets(os.Stdout, opts, cfg.UI.DateFormat, os.Args[2:]); err != nil {
				log.Fatalf("presets: %v", err)
			}
			return
		case "detect":
			if err := runDetect(os.Stdout, opts, cfg.UI.DateFormat, os.Args[2:]); err != nil {
				log.Fatalf("detect: %v", err)
			}
			return
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.BusyTimeout); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path, cfg.Database.BusyTimeout)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if cfg.Database.SeedSample {
		n, err := database.SeedSample(ctx, db, dateutil.Normalize(now()))
		if err != nil {
			log.Fatalf("seed sample: %v", err)
		}
		if n > 0 {
			log.Printf("seeded %d sample entries", n)
		}
	}

	ctl := picker.New(opts)
	app := tui.New(ctx, ctl, repository.NewEntryRepo(db), tui.Options{
		DateFormat:     cfg.UI.DateFormat,
		CurrencySymbol: cfg.UI.CurrencySymbol,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}

	if r := app.Value(); r.Complete() {
		fmt.Printf("%s - %s\n", dateutil.FormatDay(cfg.UI.DateFormat, r.Start), dateutil.FormatDay(cfg.UI.DateFormat, r.End))
	}
}
