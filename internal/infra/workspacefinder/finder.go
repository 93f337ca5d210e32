package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

// WorkspaceEnv pins the workspace root and skips the upward search.
const WorkspaceEnv = "HOPE_WORKSPACE"

// Finder locates a HOPE workspace root by searching for hope.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "hope.yaml"
	LookupEnv  func(string) (string, bool)
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName, LookupEnv: os.LookupEnv}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if f.LookupEnv != nil {
		if pinned, ok := f.LookupEnv(WorkspaceEnv); ok && strings.TrimSpace(pinned) != "" {
			return f.checkPinned(pinned)
		}
	}

	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if f.hasConfig(cur) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (f *Finder) checkPinned(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.pinned",
			Kind: domain.KindInvalidConfig,
			Path: dir,
			Err:  err,
		}
	}
	if !f.hasConfig(abs) {
		return "", &domain.OpError{
			Op:   "workspacefinder.pinned",
			Kind: domain.KindNotFound,
			Path: filepath.Join(abs, f.configFile()),
			Err:  domain.ErrNotFound,
		}
	}
	return abs, nil
}

func (f *Finder) hasConfig(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, f.configFile()))
	return err == nil
}

func (f *Finder) configFile() string {
	if f.ConfigFile == "" {
		return ConfigFileName
	}
	return f.ConfigFile
}
