package songs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Save persists records to path, choosing the format by extension
// (.json or .parquet).
func Save(records []Record, path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return saveJSON(records, path)
	case ".parquet":
		return saveParquet(records, path)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .json, .parquet)", ext)
	}
}

func saveJSON(records []Record, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}

	slog.Info("Saved song dataset", "path", path, "records", len(records))
	return nil
}

func saveParquet(records []Record, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Record](file)

	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	slog.Info("Saved song dataset", "path", path, "records", len(records))
	return nil
}
