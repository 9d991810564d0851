package imdb

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/corpus"
)

// Column names in the title.basics dataset.
const (
	colTconst       = "tconst"
	colTitleType    = "titleType"
	colPrimaryTitle = "primaryTitle"
	colStartYear    = "startYear"
)

// movieTitleType is the only titleType eligible for film matching; the
// dataset also carries tvSeries, short, videoGame and others.
const movieTitleType = "movie"

// TitlesSpec resolves the title.basics dataset against a film corpus keyed
// on (title, year).
func TitlesSpec() Spec[corpus.TitleKey] {
	return Spec[corpus.TitleKey]{
		Required: []string{colTconst, colTitleType, colPrimaryTitle, colStartYear},
		IDColumn: colTconst,
		Eligible: func(row Row) bool {
			return row[colTitleType] == movieTitleType
		},
		Key: func(row Row) (corpus.TitleKey, bool) {
			key := corpus.TitleKey{Title: corpus.Normalize(row[colPrimaryTitle])}

			// \N means the release year is unknown; such rows only match
			// corpus entries that also have no year.
			if yearStr := row[colStartYear]; yearStr != NullToken {
				year, err := strconv.Atoi(yearStr)
				if err != nil {
					return corpus.TitleKey{}, false
				}
				key.Year = year
				key.YearKnown = true
			}

			return key, true
		},
	}
}

// ResolveTitles streams the title.basics TSV at path and maps every corpus
// key found in it to its tconst.
func ResolveTitles(path string, films corpus.TitleSet) (*Mapping[corpus.TitleKey], Stats, error) {
	slog.Info("Resolving film titles", "dataset", path, "corpus_size", len(films))

	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open titles dataset: %w", err)
	}
	defer file.Close()

	mapping, stats, err := Resolve(file, path, films, TitlesSpec())
	if err != nil {
		return nil, stats, err
	}

	logStats("film titles", stats, mapping.Len())
	return mapping, stats, nil
}

func logStats(what string, stats Stats, resolved int) {
	slog.Info("Finished resolving "+what,
		"lines", stats.Lines,
		"matched_rows", stats.Matched,
		"resolved", resolved,
		"skipped_rows", stats.Skipped)

	if stats.Unmatched > 0 {
		slog.Warn("Some corpus entries had no identifier", "what", what, "unmatched", stats.Unmatched)
	}
}
