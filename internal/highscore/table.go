// Package highscore implements the bounded, ranked high-score table.
package highscore

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxEntries is the number of entries the table keeps.
	MaxEntries = 10
	// MaxNameLen is the longest player name stored, in runes.
	MaxNameLen = 15
)

// Entry is one ranked score.
type Entry struct {
	Name       string
	Score      int
	Difficulty string // Tier label, e.g. "Facil"
}

// Table holds at most MaxEntries entries ordered by descending score.
// Entries with equal scores keep their insertion order.
type Table struct {
	entries []Entry
}

// New builds a table from arbitrary entries, enforcing the ordering and size invariants.
func New(entries []Entry) Table {
	var t Table
	for _, e := range entries {
		t.entries = append(t.entries, Entry{Name: SanitizeName(e.Name), Score: e.Score, Difficulty: e.Difficulty})
	}
	t.normalize()
	return t
}

// Add inserts an entry, re-sorts and truncates. Entries that do not rank
// are dropped.
func (t *Table) Add(name string, score int, difficulty string) {
	t.entries = append(t.entries, Entry{Name: SanitizeName(name), Score: score, Difficulty: difficulty})
	t.normalize()
}

func (t *Table) normalize() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	if len(t.entries) > MaxEntries {
		t.entries = t.entries[:MaxEntries]
	}
}

// Entries returns a copy of the ranked entries.
func (t Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Qualifies reports whether a score would be kept by Add.
func (t Table) Qualifies(score int) bool {
	if len(t.entries) < MaxEntries {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Best returns the top score, or 0 for an empty table.
func (t Table) Best() int {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[0].Score
}

// SanitizeName makes a name safe for the line-based config file:
// line breaks become spaces and the result is trimmed to MaxNameLen runes.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, name)
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}
	return name
}
