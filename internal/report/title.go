package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleFromFilename derives a project title from a source file name: the
// base name without extension, cut at the first underscore, lower-cased
// with the first letter upper-cased. "data_export.csv" becomes "Data".
// Whitespace around the stem is trimmed, and a stem left empty (as in
// "_hidden.csv") becomes "Project" so every project block has a heading.
func TitleFromFilename(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if i := strings.Index(stem, "_"); i >= 0 {
		stem = stem[:i]
	}
	stem = strings.ToLower(strings.TrimSpace(stem))
	if stem == "" {
		return "Project"
	}
	r, size := utf8.DecodeRuneInString(stem)
	return string(unicode.ToUpper(r)) + stem[size:]
}

// Titler hands out unique titles. A repeated title gets " (2)", " (3)" and
// so on in first-seen order, skipping suffixes that are already taken.
type Titler struct {
	taken map[string]bool
	next  map[string]int
}

// NewTitler returns an empty Titler.
func NewTitler() *Titler {
	return &Titler{taken: map[string]bool{}, next: map[string]int{}}
}

// Unique returns title, or title with the lowest free suffix.
func (t *Titler) Unique(title string) string {
	if !t.taken[title] {
		t.taken[title] = true
		return title
	}
	n := max(t.next[title], 2)
	for {
		candidate := fmt.Sprintf("%s (%d)", title, n)
		n++
		if !t.taken[candidate] {
			t.next[title] = n
			t.taken[candidate] = true
			return candidate
		}
	}
}
