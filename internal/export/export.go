// Package export writes resolved identifier mappings as CSV files, with the
// normalized match key rendered in title case for presentation.
package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/corpus"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/imdb"
)

// WriteFilmMappings writes one title,tconst row per resolved film, in the
// mapping's insertion order. The matching year is dropped from the output.
func WriteFilmMappings(path string, mapping *imdb.Mapping[corpus.TitleKey]) error {
	caser := cases.Title(language.Und)

	rows := make([][]string, 0, mapping.Len())
	for _, key := range mapping.Keys() {
		id, _ := mapping.Get(key)
		rows = append(rows, []string{caser.String(key.Title), id})
	}

	return writeCSV(path, []string{"primaryTitle", "tconst"}, rows)
}

// WritePeopleMappings writes one name,nconst row per resolved person, in the
// mapping's insertion order.
func WritePeopleMappings(path string, mapping *imdb.Mapping[string]) error {
	caser := cases.Title(language.Und)

	rows := make([][]string, 0, mapping.Len())
	for _, name := range mapping.Keys() {
		id, _ := mapping.Get(name)
		rows = append(rows, []string{caser.String(name), id})
	}

	return writeCSV(path, []string{"primaryName", "nconst"}, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	slog.Info("Saved identifier mappings", "path", path, "rows", len(rows))
	return nil
}
