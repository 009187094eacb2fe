// Package dataset provides the reference pictograph dataset: a SQLite
// store for maintenance and an immutable in-memory snapshot the matching
// core reads from.
package dataset

import (
	"sort"

	"github.com/tkalab/tka/internal/model"
)

// Provider supplies reference entries for letter matching. Implementations
// must be read-only for the lifetime of the process; the matching core
// calls these without locking.
type Provider interface {
	// Letters returns the known letters in a stable order.
	Letters() []string

	// Entries returns the reference configurations for a letter. Each
	// entry has Letter set. Unknown letters yield nil.
	Entries(letter string) []*model.Pictograph
}

// Snapshot is an immutable in-memory Provider.
type Snapshot struct {
	letters []string
	entries map[string][]*model.Pictograph
}

// NewSnapshot groups entries by letter. Entries without a letter are
// dropped: an unlabeled reference row can never produce a classification.
func NewSnapshot(entries []*model.Pictograph) *Snapshot {
	byLetter := make(map[string][]*model.Pictograph)
	for _, e := range entries {
		if e == nil || e.Letter == "" {
			continue
		}
		byLetter[e.Letter] = append(byLetter[e.Letter], e)
	}

	letters := make([]string, 0, len(byLetter))
	for l := range byLetter {
		letters = append(letters, l)
	}
	sort.Strings(letters)

	return &Snapshot{letters: letters, entries: byLetter}
}

// Letters returns the known letters sorted.
func (s *Snapshot) Letters() []string {
	return s.letters
}

// Entries returns the reference configurations for a letter.
func (s *Snapshot) Entries(letter string) []*model.Pictograph {
	return s.entries[letter]
}
