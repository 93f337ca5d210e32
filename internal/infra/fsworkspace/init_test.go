package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "hope.yaml"))
	assertFileExists(t, filepath.Join(tmp, "reminders", "default.yaml"))
	assertFileExists(t, filepath.Join(tmp, "vitals.yaml"))
	assertDirExists(t, filepath.Join(tmp, "history"))
	assertDirExists(t, filepath.Join(tmp, ".hope", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_TemplatesAreValidYAML(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, rel := range []string{"hope.yaml", "vitals.yaml", filepath.Join("reminders", "default.yaml")} {
		b, err := os.ReadFile(filepath.Join(tmp, rel))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(b, &doc); err != nil {
			t.Fatalf("%s is not valid yaml: %v", rel, err)
		}
		if len(doc) == 0 {
			t.Fatalf("%s decoded empty", rel)
		}
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	hopeYAML := filepath.Join(tmp, "hope.yaml")
	if err := os.WriteFile(hopeYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing hope.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(hopeYAML)
	if err != nil {
		t.Fatalf("read hope.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected hope.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(hopeYAML)
	if err != nil {
		t.Fatalf("read hope.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "defaults:") {
		t.Fatalf("expected hope.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected %s to be a file", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected dir %s, stat err=%v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", path)
	}
}
