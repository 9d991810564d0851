// Package report writes machine-readable summaries of resolution runs.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/imdb"
)

// Config records the inputs of a resolution run.
type Config struct {
	Songs     string `yaml:"songs"`
	Dataset   string `yaml:"dataset"`
	Output    string `yaml:"output"`
	Timestamp string `yaml:"timestamp"`
}

// Summary records the outcome of one pass over a reference dataset.
type Summary struct {
	Lines       int    `yaml:"lines"`
	SkippedRows int    `yaml:"skippedrows"`
	MatchedRows int    `yaml:"matchedrows"`
	CorpusSize  int    `yaml:"corpussize"`
	Resolved    int    `yaml:"resolved"`
	Unmatched   int    `yaml:"unmatched"`
	Duration    string `yaml:"duration"`
}

// Run is the complete report document.
type Run struct {
	Config  Config  `yaml:"config"`
	Summary Summary `yaml:"summary"`
}

// NewRun assembles a report from resolver stats.
func NewRun(songsPath, datasetPath, outputPath string, stats imdb.Stats, resolved int, elapsed time.Duration) Run {
	return Run{
		Config: Config{
			Songs:     songsPath,
			Dataset:   datasetPath,
			Output:    outputPath,
			Timestamp: time.Now().Format("2006-01-02_15-04-05"),
		},
		Summary: Summary{
			Lines:       stats.Lines,
			SkippedRows: stats.Skipped,
			MatchedRows: stats.Matched,
			CorpusSize:  stats.CorpusSize,
			Resolved:    resolved,
			Unmatched:   stats.Unmatched,
			Duration:    elapsed.Round(time.Millisecond).String(),
		},
	}
}

// Save writes the report as YAML.
func Save(path string, run Run) error {
	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
