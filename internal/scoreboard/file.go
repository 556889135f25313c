package scoreboard

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// FileStore keeps the table in a flat text file, one "NAME,SCORE" record
// per line. The file is read in full and rewritten in full.
type FileStore struct {
	path  string
	limit int
}

// NewFileStore creates a store backed by path. A leading ~ expands to the
// home directory.
func NewFileStore(path string, limit int) (*FileStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scoreboard: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if limit <= 0 {
		limit = MaxEntries
	}
	return &FileStore{path: path, limit: limit}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the table. A missing file is an empty table and malformed
// lines are skipped.
func (f *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scoreboard: cannot read %s: %w", f.path, err)
	}

	entries := Parse(data)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > f.limit {
		entries = entries[:f.limit]
	}
	return entries, nil
}

// Save merges e into the table and rewrites the file with the top entries.
func (f *FileStore) Save(e Entry) error {
	entries, err := f.Load()
	if err != nil {
		return err
	}
	merged, _ := Merge(entries, e, f.limit)

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scoreboard: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, Format(merged), 0o644); err != nil { //#nosec G306 -- scores are not secret
		return fmt.Errorf("scoreboard: cannot write %s: %w", f.path, err)
	}
	return nil
}

// Parse decodes "NAME,SCORE" lines in file order. Lines without exactly
// one comma or with a non-integer or negative score are skipped, whatever
// their length.
func Parse(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte("\n")) {
		parts := strings.Split(string(bytes.TrimSuffix(line, []byte("\r"))), ",")
		if len(parts) != 2 {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || score < 0 {
			continue
		}
		entries = append(entries, Entry{Name: parts[0], Score: score})
	}
	return entries
}

// Format encodes entries as "NAME,SCORE" lines.
func Format(entries []Entry) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "%s,%d\n", e.Name, e.Score)
	}
	return buf.Bytes()
}
