package scoreboard

import "sync"

// Board applies the table rules on top of a Store.
// Entries are reloaded on every query so a shared store stays current.
type Board struct {
	store Store
	limit int
}

// NewBoard creates a board of the given size. A non-positive limit uses MaxEntries.
func NewBoard(store Store, limit int) *Board {
	if limit <= 0 {
		limit = MaxEntries
	}
	return &Board{store: store, limit: limit}
}

// Limit returns the table size.
func (b *Board) Limit() int {
	return b.limit
}

// Entries returns the current table, at most Limit entries.
func (b *Board) Entries() ([]Entry, error) {
	entries, err := b.store.Load()
	if err != nil {
		return nil, err
	}
	if len(entries) > b.limit {
		entries = entries[:b.limit]
	}
	return entries, nil
}

// highScorer is implemented by stores that can report the top score
// without loading the table.
type highScorer interface {
	HighScore() (int, error)
}

// Best returns the top score on the board, or 0 for an empty table.
func (b *Board) Best() (int, error) {
	if hs, ok := b.store.(highScorer); ok {
		return hs.HighScore()
	}
	entries, err := b.Entries()
	if err != nil || len(entries) == 0 {
		return 0, err
	}
	return entries[0].Score, nil
}

// Qualifies reports whether score would enter the table.
func (b *Board) Qualifies(score int) (bool, error) {
	entries, err := b.Entries()
	if err != nil {
		return false, err
	}
	return Qualifies(entries, score, b.limit), nil
}

// Preview returns the table as it would look with a pending entry merged
// in, plus the pending entry's index (-1 if it does not make the cut).
// The name may be incomplete.
func (b *Board) Preview(name string, score int) ([]Entry, int, error) {
	entries, err := b.Entries()
	if err != nil {
		return nil, -1, err
	}
	merged, idx := Merge(entries, Entry{Name: name, Score: score}, b.limit)
	return merged, idx, nil
}

// Submit validates and persists a finished entry.
func (b *Board) Submit(name string, score int) error {
	e := Entry{Name: name, Score: score}
	if err := ValidateEntry(e); err != nil {
		return err
	}
	return b.store.Save(e)
}

// MemoryStore keeps entries in memory. It backs remote sessions that
// should not touch the local file and is handy in tests. It is safe for
// concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
}

// NewMemoryStore creates an empty in-memory store of the given size.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = MaxEntries
	}
	return &MemoryStore{limit: limit}
}

// Load returns a copy of the stored entries.
func (m *MemoryStore) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Save merges e into the stored entries.
func (m *MemoryStore) Save(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries, _ = Merge(m.entries, e, m.limit)
	return nil
}
