package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "hope.yaml"

// EnvPrefix is prepended to config keys for environment overrides,
// e.g. HOPE_DEFAULTS_UNITS=imperial.
const EnvPrefix = "HOPE"

type fileConfig struct {
	Defaults struct {
		Units    string `mapstructure:"units"`
		Calendar string `mapstructure:"calendar"`
	} `mapstructure:"defaults"`

	History struct {
		Enabled bool `mapstructure:"enabled"`
		Index   bool `mapstructure:"index"`
	} `mapstructure:"history"`

	Paths struct {
		HistoryDir   string `mapstructure:"history_dir"`
		RemindersDir string `mapstructure:"reminders_dir"`
		VitalsFile   string `mapstructure:"vitals_file"`
	} `mapstructure:"paths"`
}

// LoadConfig loads hope.yaml from the workspace root and applies defaults.
// Environment variables with the HOPE_ prefix override file values.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	path := filepath.Join(root, ConfigFileName)

	if _, err := os.Stat(path); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	units, err := domain.ParseUnitSystem(fc.Defaults.Units)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("field defaults.units: %w", errors.Join(err, domain.ErrInvalidConfig)),
		}
	}

	cfg.Defaults.Units = units
	if c := strings.TrimSpace(fc.Defaults.Calendar); c != "" {
		cfg.Defaults.Calendar = c
	}
	cfg.History.Enabled = fc.History.Enabled
	cfg.History.Index = fc.History.Index
	if d := strings.TrimSpace(fc.Paths.HistoryDir); d != "" {
		cfg.Paths.HistoryDir = d
	}
	if d := strings.TrimSpace(fc.Paths.RemindersDir); d != "" {
		cfg.Paths.RemindersDir = d
	}
	if f := strings.TrimSpace(fc.Paths.VitalsFile); f != "" {
		cfg.Paths.VitalsFile = f
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg domain.Config) {
	v.SetDefault("defaults.units", string(cfg.Defaults.Units))
	v.SetDefault("defaults.calendar", cfg.Defaults.Calendar)
	v.SetDefault("history.enabled", cfg.History.Enabled)
	v.SetDefault("history.index", cfg.History.Index)
	v.SetDefault("paths.history_dir", cfg.Paths.HistoryDir)
	v.SetDefault("paths.reminders_dir", cfg.Paths.RemindersDir)
	v.SetDefault("paths.vitals_file", cfg.Paths.VitalsFile)
}
