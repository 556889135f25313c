// Package scoreboard implements the persisted top-N high score table.
//
// The table is sorted by score descending. Among equal scores the most
// recently inserted entry comes first, so a new score that ties the
// lowest kept entry still qualifies.
package scoreboard

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// MaxEntries is the default table size.
const MaxEntries = 10

// maxNameLen bounds stored names.
const maxNameLen = 16

// ErrInvalidEntry is returned when a name or score cannot be stored.
var ErrInvalidEntry = errors.New("scoreboard: invalid entry")

// Entry is a single high score record.
type Entry struct {
	Name  string
	Score int
}

// Store persists scoreboard entries.
// Load returns entries sorted by score descending, newest first among ties.
type Store interface {
	Load() ([]Entry, error)
	Save(e Entry) error
}

// ValidateEntry checks that an entry can be written to any store.
func ValidateEntry(e Entry) error {
	n := utf8.RuneCountInString(e.Name)
	if n == 0 || n > maxNameLen {
		return fmt.Errorf("%w: name must be 1-%d letters", ErrInvalidEntry, maxNameLen)
	}
	for _, r := range e.Name {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: name %q contains %q", ErrInvalidEntry, e.Name, r)
		}
	}
	if e.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidEntry, e.Score)
	}
	return nil
}

// Merge inserts e ahead of entries, stable-sorts by score descending and
// truncates to limit. It returns the merged table and the index of e, or
// -1 when e fell off the end.
func Merge(entries []Entry, e Entry, limit int) ([]Entry, int) {
	type ranked struct {
		Entry
		isNew bool
	}

	all := make([]ranked, 0, len(entries)+1)
	all = append(all, ranked{Entry: e, isNew: true})
	for _, old := range entries {
		all = append(all, ranked{Entry: old})
	}

	slices.SortStableFunc(all, func(a, b ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	merged := make([]Entry, len(all))
	index := -1
	for i, r := range all {
		merged[i] = r.Entry
		if r.isNew {
			index = i
		}
	}
	return merged, index
}

// Qualifies reports whether score would enter a table of the given size.
// A table with free slots accepts any score. A full table accepts a score
// equal to its lowest entry.
func Qualifies(entries []Entry, score, limit int) bool {
	if limit <= 0 {
		return false
	}
	if len(entries) < limit {
		return true
	}
	return score >= entries[limit-1].Score
}

// RankLabel formats a 1-based rank as shown on the scoreboard ("1ST", "12TH").
func RankLabel(rank int) string {
	suffix := "TH"
	if m := rank % 100; m < 10 || m > 20 {
		switch rank % 10 {
		case 1:
			suffix = "ST"
		case 2:
			suffix = "ND"
		case 3:
			suffix = "RD"
		}
	}
	return strconv.Itoa(rank) + suffix
}
