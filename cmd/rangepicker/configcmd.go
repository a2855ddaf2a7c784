package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jask/rangepicker/internal/config"
)

var errConfigExists = errors.New("config file already exists")

// runConfig handles "config path" and "config init [--force]". init writes the
// effective settings (defaults plus env overrides) to config.Path.
func runConfig(w io.Writer, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: config path | config init [--force]")
	}
	path := config.Path()
	switch args[0] {
	case "path":
		fmt.Fprintln(w, path)
		return nil
	case "init":
		force := len(args) > 1 && args[1] == "--force"
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, path)
		}
		if _, err := cfg.PickerOptions(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("wrote"), path)
		return nil
	}
	return fmt.Errorf("unknown config command %q", args[0])
}
