package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/rangepicker/internal/picker"
	"github.com/jask/rangepicker/internal/selection"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Picker   PickerConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings for the ledger the picked range filters.
type DatabaseConfig struct {
	Path        string
	SeedSample  bool          `mapstructure:"seed_sample"`
	BusyTimeout time.Duration `mapstructure:"busy_timeout"`
}

// PickerConfig is fixed for the lifetime of a picker.
type PickerConfig struct {
	Mode                 string
	IncludeLastYear      bool `mapstructure:"include_last_year"`
	AutoCloseOnPreset    bool `mapstructure:"auto_close_on_preset"`
	EditingAfterComplete bool `mapstructure:"editing_after_complete"`
	YearRadius           int  `mapstructure:"year_radius"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string `mapstructure:"date_format"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Timezone       string
}

// Load reads configuration from file and env. Env var overrides use prefix RANGEPICKER_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "rangepicker", "ledger.db"))
	v.SetDefault("database.seed_sample", true)
	v.SetDefault("database.busy_timeout", "5s")
	v.SetDefault("picker.mode", selection.Independent.String())
	v.SetDefault("picker.include_last_year", false)
	v.SetDefault("picker.auto_close_on_preset", false)
	v.SetDefault("picker.editing_after_complete", false)
	v.SetDefault("picker.year_radius", 6)
	v.SetDefault("ui.date_format", "01/02/2006")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.timezone", "Local")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RANGEPICKER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(Path()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RANGEPICKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that cannot be read is an error; a missing default file is not.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path is the config file Load reads and Save writes: RANGEPICKER_CONFIG when
// set, else ~/.config/rangepicker/config.toml.
func Path() string {
	if p := os.Getenv("RANGEPICKER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "rangepicker", "config.toml")
}

// Save writes the provided config to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.seed_sample", cfg.Database.SeedSample)
	v.Set("database.busy_timeout", cfg.Database.BusyTimeout.String())
	v.Set("picker.mode", cfg.Picker.Mode)
	v.Set("picker.include_last_year", cfg.Picker.IncludeLastYear)
	v.Set("picker.auto_close_on_preset", cfg.Picker.AutoCloseOnPreset)
	v.Set("picker.editing_after_complete", cfg.Picker.EditingAfterComplete)
	v.Set("picker.year_radius", cfg.Picker.YearRadius)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.timezone", cfg.UI.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// PickerOptions converts the picker section into controller options.
func (c Config) PickerOptions() (picker.Options, error) {
	mode, err := selection.ParseMode(c.Picker.Mode)
	if err != nil {
		return picker.Options{}, fmt.Errorf("picker.mode: %w", err)
	}
	return picker.Options{
		Mode:                    mode,
		IncludeLastYearPreset:   c.Picker.IncludeLastYear,
		AutoCloseOnPresetSelect: c.Picker.AutoCloseOnPreset,
		EditingAfterComplete:    c.Picker.EditingAfterComplete,
		YearRadius:              c.Picker.YearRadius,
	}, nil
}
