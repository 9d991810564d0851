// Package imdb streams the public IMDb TSV datasets and resolves corpus
// keys to their tconst/nconst identifiers. Datasets can run to tens of
// millions of rows, so each one is consumed in a single forward pass; only
// the header, the corpus and the resolved mapping are held in memory.
package imdb

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// NullToken is the IMDb datasets' SQL-style NULL sentinel. It appears in
// both year and identifier fields and must never be stored as a value.
const NullToken = `\N`

// progressInterval controls how often the row loop emits a debug log.
const progressInterval = 100000

// Row is one data line of a reference dataset keyed by column name.
type Row map[string]string

// Spec describes how one kind of reference dataset resolves against a
// corpus: which columns must exist, which column carries the identifier,
// which rows are eligible, and how a row becomes a match key.
type Spec[K comparable] struct {
	// Required lists the header columns that must be present.
	Required []string

	// IDColumn names the column holding the external identifier.
	IDColumn string

	// Eligible filters rows before key construction. nil keeps every row.
	Eligible func(Row) bool

	// Key builds the row's match key. Returning false drops the row
	// (e.g. an unparseable year), which is tallied but never fatal.
	Key func(Row) (K, bool)
}

// SchemaError reports required columns missing from a dataset header.
type SchemaError struct {
	Dataset string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns in %s: %s", e.Dataset, strings.Join(e.Missing, ", "))
}

// Stats summarizes one pass over a reference dataset.
type Stats struct {
	Lines      int // data lines read
	Skipped    int // malformed rows dropped (field count, bad year, null identifier)
	Matched    int // rows that wrote an identifier into the mapping
	CorpusSize int
	Unmatched  int // corpus keys with no surviving mapping entry
}

// Resolve streams a header-delimited TSV dataset and returns the identifier
// mapping for every corpus key found in it. Rows are processed strictly in
// stream order; when several rows produce the same key, the last one wins.
// name identifies the dataset in errors and logs.
func Resolve[K comparable](r io.Reader, name string, corpus map[K]struct{}, spec Spec[K]) (*Mapping[K], Stats, error) {
	stats := Stats{CorpusSize: len(corpus)}

	scanner := bufio.NewScanner(r)

	// Plenty for IMDb rows, which stay well under this
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, stats, fmt.Errorf("failed to read header of %s: %w", name, err)
		}
		return nil, stats, fmt.Errorf("%s is empty", name)
	}

	headers := strings.Split(strings.TrimSpace(scanner.Text()), "\t")

	if missing := missingColumns(headers, spec.Required); len(missing) > 0 {
		return nil, stats, &SchemaError{Dataset: name, Missing: missing}
	}

	mapping := NewMapping[K]()
	row := make(Row, len(headers))

	for scanner.Scan() {
		stats.Lines++

		if stats.Lines%progressInterval == 0 {
			slog.Debug("Resolving reference dataset", "dataset", name, "lines", stats.Lines, "matched", stats.Matched)
		}

		fields := strings.Split(strings.TrimRight(scanner.Text(), "\r\n"), "\t")
		if len(fields) != len(headers) {
			stats.Skipped++
			continue
		}

		for i, h := range headers {
			row[h] = fields[i]
		}

		if spec.Eligible != nil && !spec.Eligible(row) {
			continue
		}

		key, ok := spec.Key(row)
		if !ok {
			stats.Skipped++
			continue
		}

		// The common case on a large dataset: key is not in the corpus.
		if _, ok := corpus[key]; !ok {
			continue
		}

		// Null identifiers are rejected before the write, so a null row
		// never erases an identifier a previous row already resolved.
		id := row[spec.IDColumn]
		if id == "" || id == NullToken {
			stats.Skipped++
			continue
		}

		mapping.Set(key, id)
		stats.Matched++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read %s: %w", name, err)
	}

	stats.Unmatched = stats.CorpusSize - mapping.Len()

	return mapping, stats, nil
}

func missingColumns(headers, required []string) []string {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}

	var missing []string
	for _, col := range required {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
