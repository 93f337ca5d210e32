package yamlvitals

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

func TestLoadVitals_Template(t *testing.T) {
	snap, err := NewLoader("testdata").LoadVitals()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var kinds []domain.VitalKind
	for _, v := range snap.Vitals {
		kinds = append(kinds, v.Kind)
	}
	want := []domain.VitalKind{domain.VitalHeartRate, domain.VitalBloodPressure, domain.VitalSteps, domain.VitalSleep}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}

	hr, _ := snap.Find(domain.VitalHeartRate)
	if hr.Current != 72 || hr.Unit != "bpm" || hr.Title != "Heart Rate" || len(hr.Readings) != 6 {
		t.Fatalf("unexpected heart rate %+v", hr)
	}

	bp, _ := snap.Find(domain.VitalBloodPressure)
	if bp.Display() != "120/80" || bp.Status != domain.VitalExcellent {
		t.Fatalf("unexpected blood pressure %+v", bp)
	}
	if bp.Readings[0] != (domain.VitalReading{Label: "Mon", Value: 118, Secondary: 78}) {
		t.Fatalf("unexpected first reading %+v", bp.Readings[0])
	}

	steps, _ := snap.Find(domain.VitalSteps)
	if pct, ok := steps.Progress(); !ok || pct != 85 {
		t.Fatalf("expected 85%% of goal, got %v %v", pct, ok)
	}
}

func TestLoadVitals_CurrentFallsBackToLatestReading(t *testing.T) {
	snap, err := NewLoader(".", WithFile(filepath.Join("testdata", "vitals_latest.yaml"))).LoadVitals()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bp, ok := snap.Find(domain.VitalBloodPressure)
	if !ok {
		t.Fatalf("expected blood pressure")
	}
	if bp.Display() != "131/86" || bp.Title != "BP" || bp.Unit != "mmHg" || bp.Status != domain.VitalGood {
		t.Fatalf("unexpected blood pressure %+v", bp)
	}

	sleep, _ := snap.Find(domain.VitalSleep)
	if sleep.Current != 5.5 || sleep.Status != domain.VitalWarning {
		t.Fatalf("unexpected sleep %+v", sleep)
	}
}

func TestLoadVitals_InvalidStatus(t *testing.T) {
	path := filepath.Join("testdata", "vitals_invalid.yaml")

	_, err := NewLoader(".", WithFile(path)).LoadVitals()
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "vitals[1].status") || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected field and path in error, got %v", err)
	}
}

func TestLoadVitals_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown kind":      "vitals:\n  - kind: glucose\n    current: 5\n",
		"duplicate kind":    "vitals:\n  - kind: steps\n    current: 5\n  - kind: steps\n    current: 6\n",
		"negative goal":     "vitals:\n  - kind: steps\n    current: 5\n    goal: -1\n",
		"negative reading":  "vitals:\n  - kind: sleep\n    readings:\n      - { label: Sun, value: -2 }\n",
		"no diastolic":      "vitals:\n  - kind: blood_pressure\n    current: 120\n",
		"reading diastolic": "vitals:\n  - kind: blood_pressure\n    readings:\n      - { label: Mon, value: 118 }\n",
		"no value":          "vitals:\n  - kind: heart_rate\n",
		"bad yaml":          "vitals: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			if err := os.WriteFile(filepath.Join(root, "vitals.yaml"), []byte(body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := NewLoader(root).LoadVitals(); !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadVitals_MissingFile(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadVitals()
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
