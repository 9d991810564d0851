// Package corpus builds the deduplicated sets of normalized match keys that
// the IMDb resolvers join against.
package corpus

import (
	"strings"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/songs"
)

// Normalize canonicalizes a raw title or name for matching: surrounding
// whitespace is trimmed and the result lowercased. Idempotent, and the only
// normalization performed anywhere in the pipeline.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TitleKey identifies a film by normalized title and release year. Keys are
// comparable values, so equality is exact on both components; a key with
// YearKnown=false only ever equals another unknown-year key.
type TitleKey struct {
	Title     string
	Year      int
	YearKnown bool
}

// NewTitleKey builds a key from a normalized title and an optional year.
func NewTitleKey(title string, year *int) TitleKey {
	key := TitleKey{Title: Normalize(title)}
	if year != nil {
		key.Year = *year
		key.YearKnown = true
	}
	return key
}

// TitleSet is the corpus of unique (title, year) keys.
type TitleSet map[TitleKey]struct{}

// Add folds one song record into the set. Records without a film title (or
// with a title that is empty after trimming) are silently skipped.
func (s TitleSet) Add(rec songs.Record) {
	if Normalize(rec.FilmTitle()) == "" {
		return
	}
	s[NewTitleKey(rec.FilmTitle(), rec.Year)] = struct{}{}
}

// Contains reports set membership.
func (s TitleSet) Contains(key TitleKey) bool {
	_, ok := s[key]
	return ok
}

// NameSet is the corpus of unique normalized person names.
type NameSet map[string]struct{}

// Add folds every person credited on one song record into the set, skipping
// names that normalize to the empty string.
func (s NameSet) Add(rec songs.Record) {
	for _, person := range rec.People {
		if name := Normalize(person); name != "" {
			s[name] = struct{}{}
		}
	}
}

// Contains reports set membership.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// CollectTitles builds the title corpus from a full song dataset.
func CollectTitles(records []songs.Record) TitleSet {
	set := make(TitleSet)
	for _, rec := range records {
		set.Add(rec)
	}
	return set
}

// CollectNames builds the name corpus from a full song dataset.
func CollectNames(records []songs.Record) NameSet {
	set := make(NameSet)
	for _, rec := range records {
		set.Add(rec)
	}
	return set
}
