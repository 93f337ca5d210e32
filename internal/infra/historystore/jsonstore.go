package historystore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rajeshaligeti/hope-health/internal/domain"
	"github.com/Rajeshaligeti/hope-health/internal/ports"
)

const defaultHistoryDir = "history"
const indexFile = "index.jsonl"

type JSONStore struct {
	rootDir        string
	historyDirName string
	writeIndex     bool
	now            func() time.Time
	newID          func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: history/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDFunc overrides record ID generation (useful for tests).
func WithIDFunc(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.HistoryDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultHistoryDir
	}

	s := &JSONStore{
		rootDir:        root,
		historyDirName: dir,
		writeIndex:     cfg.History.Index,
		now:            time.Now,
		newID:          func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.HistoryStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.historyDirName)
}

// Save writes rec to <dir>/<ts>_<category>.json and returns the file stem.
// The record's ID and EvaluatedAt are filled in when empty.
func (s *JSONStore) Save(rec domain.EvaluationRecord) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "historystore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := rec
	if toSave.EvaluatedAt.IsZero() {
		toSave.EvaluatedAt = s.now()
	}
	toSave.EvaluatedAt = toSave.EvaluatedAt.UTC()
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}

	slug := slugify(string(toSave.Result.Category))
	if slug == "" {
		slug = "bmi"
	}

	base := fmt.Sprintf("%s_%s", toSave.EvaluatedAt.Format("20060102T150405Z"), slug)
	id, path := s.uniquePath(dir, base)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "historystore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "historystore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "historystore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), toSave)
	}

	return id, nil
}

func (s *JSONStore) uniquePath(dir, base string) (string, string) {
	id := base
	for n := 2; ; n++ {
		p := filepath.Join(dir, id+".json")
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			return id, p
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

type indexLine struct {
	ID          string          `json:"id"`
	File        string          `json:"file"`
	RecordID    string          `json:"record_id"`
	BMI         float64         `json:"bmi"`
	Category    domain.Category `json:"category"`
	EvaluatedAt time.Time       `json:"evaluated_at"`
}

func (s *JSONStore) appendIndex(dir, id, filename string, rec domain.EvaluationRecord) error {
	line, err := json.Marshal(indexLine{
		ID:          id,
		File:        filename,
		RecordID:    rec.ID,
		BMI:         rec.Result.BMI,
		Category:    rec.Result.Category,
		EvaluatedAt: rec.EvaluatedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// List returns saved records newest first. A missing history dir is empty.
func (s *JSONStore) List() ([]domain.HistoryRef, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.HistoryRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "historystore.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names[e.Name()] = true
		}
	}

	refs, ok := s.listFromIndex(names)
	if !ok {
		refs = s.scan(dir, names)
	}

	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].EvaluatedAt.Equal(refs[j].EvaluatedAt) {
			return refs[i].ID > refs[j].ID
		}
		return refs[i].EvaluatedAt.After(refs[j].EvaluatedAt)
	})
	return refs, nil
}

// listFromIndex serves List from index.jsonl when the index covers exactly
// the record files on disk. Anything else falls back to a full scan.
func (s *JSONStore) listFromIndex(names map[string]bool) ([]domain.HistoryRef, bool) {
	if !s.writeIndex || len(names) == 0 {
		return nil, false
	}
	idx, err := s.readIndex()
	if err != nil || len(idx) != len(names) {
		return nil, false
	}
	seen := make(map[string]bool, len(idx))
	for _, ref := range idx {
		file := filepath.Base(ref.Path)
		if !names[file] || seen[file] {
			return nil, false
		}
		seen[file] = true
	}
	return idx, true
}

func (s *JSONStore) scan(dir string, names map[string]bool) []domain.HistoryRef {
	refs := make([]domain.HistoryRef, 0, len(names))
	for name := range names {
		id := strings.TrimSuffix(name, ".json")
		rec, err := s.Load(id)
		if err != nil {
			// Skip files we cannot decode rather than failing the listing.
			continue
		}
		refs = append(refs, domain.HistoryRef{
			ID:          id,
			Path:        filepath.Join(dir, name),
			EvaluatedAt: rec.EvaluatedAt,
			BMI:         rec.Result.BMI,
			Category:    rec.Result.Category,
		})
	}
	return refs
}

func (s *JSONStore) Load(id string) (domain.EvaluationRecord, error) {
	b, err := s.LoadRaw(id)
	if err != nil {
		return domain.EvaluationRecord{}, err
	}

	var rec domain.EvaluationRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.EvaluationRecord{}, &domain.OpError{
			Op:   "historystore.decode",
			Kind: domain.KindInvalidConfig,
			Path: s.pathFor(id),
			Err:  err,
		}
	}
	return rec, nil
}

func (s *JSONStore) LoadRaw(id string) ([]byte, error) {
	clean := strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if clean == "" || strings.ContainsAny(clean, `/\`) || clean == "." || clean == ".." {
		return nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("invalid record id %q: %w", id, domain.ErrNotFound),
		}
	}

	path := s.pathFor(clean)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "historystore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

func (s *JSONStore) pathFor(id string) string {
	return filepath.Join(s.dir(), strings.TrimSuffix(id, ".json")+".json")
}

// readIndex returns the index lines in write order. Malformed lines are skipped.
func (s *JSONStore) readIndex() ([]domain.HistoryRef, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.HistoryRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "historystore.index",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var out []domain.HistoryRef
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var l indexLine
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			continue
		}
		out = append(out, domain.HistoryRef{
			ID:          l.ID,
			Path:        filepath.Join(s.dir(), l.File),
			EvaluatedAt: l.EvaluatedAt,
			BMI:         l.BMI,
			Category:    l.Category,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "historystore.index",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return out, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
