package imdb

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/corpus"
)

// Column names in the name.basics dataset.
const (
	colNconst      = "nconst"
	colPrimaryName = "primaryName"
)

// NamesSpec resolves the name.basics dataset against a corpus of normalized
// person names. Every row is eligible; rows whose name normalizes to the
// empty string are dropped.
func NamesSpec() Spec[string] {
	return Spec[string]{
		Required: []string{colNconst, colPrimaryName},
		IDColumn: colNconst,
		Key: func(row Row) (string, bool) {
			name := corpus.Normalize(row[colPrimaryName])
			return name, name != ""
		},
	}
}

// ResolveNames streams the name.basics TSV at path and maps every corpus
// name found in it to its nconst.
func ResolveNames(path string, people corpus.NameSet) (*Mapping[string], Stats, error) {
	slog.Info("Resolving people names", "dataset", path, "corpus_size", len(people))

	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open names dataset: %w", err)
	}
	defer file.Close()

	mapping, stats, err := Resolve(file, path, people, NamesSpec())
	if err != nil {
		return nil, stats, err
	}

	logStats("people names", stats, mapping.Len())
	return mapping, stats, nil
}
