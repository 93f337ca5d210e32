package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

const gitignoreHeader = "# HOPE"

var gitignoreEntries = []string{
	"history/",
	".hope/",
}

// Initializer scaffolds a workspace from the embedded templates.
type Initializer struct {
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

func NewInitializer() *Initializer {
	return &Initializer{dirMode: 0o755, fileMode: 0o644}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init creates hope.yaml, history/, reminders/ and .hope/logs under spec.Root.
// Existing template files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	if strings.TrimSpace(spec.Root) == "" {
		root = "."
	}

	dirs := []string{
		root,
		filepath.Join(root, "history"),
		filepath.Join(root, "reminders"),
		filepath.Join(root, ".hope", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, i.dirMode); err != nil {
			return &domain.OpError{
				Op:   "fsworkspace.mkdir",
				Kind: domain.KindExecution,
				Path: d,
				Err:  err,
			}
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.gitignore",
			Kind: domain.KindExecution,
			Path: filepath.Join(root, ".gitignore"),
			Err:  err,
		}
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), i.dirMode); err != nil {
			return err
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, b, i.fileMode); err != nil {
			return &domain.OpError{
				Op:   "fsworkspace.write",
				Kind: domain.KindExecution,
				Path: dst,
				Err:  err,
			}
		}
		return nil
	})
}

// ensureGitignore appends the HOPE entries that are not yet listed.
func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{gitignoreHeader}, gitignoreEntries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
