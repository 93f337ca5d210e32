package yamlreminders

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	rootDir      string
	remindersDir string
}

type Option func(*Loader)

func WithRemindersDir(dir string) Option {
	return func(l *Loader) { l.remindersDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:      root,
		remindersDir: "reminders",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.ReminderLoader  = (*Loader)(nil)
	_ ports.ReminderCatalog = (*Loader)(nil)
)

// LoadCalendar accepts either a calendar name (e.g., "default") or a path to a YAML file.
func (l *Loader) LoadCalendar(nameOrPath string) (domain.ReminderCalendar, error) {
	var path, name string

	if hasYAMLExt(nameOrPath) || strings.ContainsRune(nameOrPath, filepath.Separator) {
		path = filepath.Clean(nameOrPath)
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	} else {
		name = nameOrPath
		path = filepath.Join(l.rootDir, l.remindersDir, name+".yaml")
		if _, err := os.Stat(path); err != nil {
			if alt := filepath.Join(l.rootDir, l.remindersDir, name+".yml"); fileExists(alt) {
				path = alt
			}
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.ReminderCalendar{}, &domain.OpError{
			Op:   "yamlreminders.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yc yamlCalendar
	if err := yaml.Unmarshal(b, &yc); err != nil {
		return domain.ReminderCalendar{}, &domain.OpError{
			Op:   "yamlreminders.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapCalendar(path, name, yc)
}

func (l *Loader) ListCalendars(root string) ([]domain.CalendarRef, error) {
	dir := filepath.Join(root, l.remindersDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlreminders.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.CalendarRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}
		refs = append(refs, domain.CalendarRef{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: filepath.Join(dir, e.Name()),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
