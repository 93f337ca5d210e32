package yamlvitals

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

const defaultFile = "vitals.yaml"

type Loader struct {
	rootDir string
	file    string
}

type Option func(*Loader)

// WithFile sets the vitals file, relative to the root unless absolute.
func WithFile(file string) Option {
	return func(l *Loader) {
		if file != "" {
			l.file = file
		}
	}
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{rootDir: root, file: defaultFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.VitalsLoader = (*Loader)(nil)

func (l *Loader) path() string {
	if filepath.IsAbs(l.file) {
		return filepath.Clean(l.file)
	}
	return filepath.Join(l.rootDir, l.file)
}

func (l *Loader) LoadVitals() (domain.VitalsSnapshot, error) {
	path := l.path()

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return domain.VitalsSnapshot{}, &domain.OpError{
			Op:   "yamlvitals.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var yv yamlVitals
	if err := yaml.Unmarshal(b, &yv); err != nil {
		return domain.VitalsSnapshot{}, &domain.OpError{
			Op:   "yamlvitals.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapVitals(path, yv)
}
