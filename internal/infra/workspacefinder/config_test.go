package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// Partial config (no paths/defaults)
	root := writeConfig(t, "history:\n  enabled: false\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.History.Enabled {
		t.Fatalf("expected history disabled")
	}
	if !cfg.History.Index {
		t.Fatalf("expected index default true")
	}
	if cfg.Defaults.Units != domain.Metric {
		t.Fatalf("expected default units=metric, got=%s", cfg.Defaults.Units)
	}
	if cfg.Defaults.Calendar != "default" {
		t.Fatalf("expected default calendar, got=%s", cfg.Defaults.Calendar)
	}
	if cfg.Paths.HistoryDir != "history" {
		t.Fatalf("expected history dir=history, got=%s", cfg.Paths.HistoryDir)
	}
	if cfg.Paths.RemindersDir != "reminders" {
		t.Fatalf("expected reminders dir=reminders, got=%s", cfg.Paths.RemindersDir)
	}
	if cfg.Paths.VitalsFile != "vitals.yaml" {
		t.Fatalf("expected vitals file=vitals.yaml, got=%s", cfg.Paths.VitalsFile)
	}
}

func TestLoadConfig_FileValues(t *testing.T) {
	root := writeConfig(t, "defaults:\n  units: Imperial\n  calendar: family\npaths:\n  history_dir: log/bmi\n  vitals_file: health/vitals.yml\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Defaults.Units != domain.Imperial {
		t.Fatalf("expected imperial, got %s", cfg.Defaults.Units)
	}
	if cfg.Defaults.Calendar != "family" {
		t.Fatalf("expected calendar family, got %s", cfg.Defaults.Calendar)
	}
	if cfg.Paths.HistoryDir != "log/bmi" {
		t.Fatalf("expected history dir override, got %s", cfg.Paths.HistoryDir)
	}
	if cfg.Paths.VitalsFile != "health/vitals.yml" {
		t.Fatalf("expected vitals file override, got %s", cfg.Paths.VitalsFile)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	root := writeConfig(t, "defaults:\n  units: metric\n")
	t.Setenv("HOPE_DEFAULTS_UNITS", "imperial")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Defaults.Units != domain.Imperial {
		t.Fatalf("expected env override to imperial, got %s", cfg.Defaults.Units)
	}
}

func TestLoadConfig_InvalidUnits(t *testing.T) {
	root := writeConfig(t, "defaults:\n  units: stone\n")

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if cfg.Defaults.Units != domain.Metric {
		t.Fatalf("expected defaults returned alongside error")
	}
}
