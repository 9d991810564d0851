package mapcmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/corpus"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/export"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/imdb"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/report"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/songs"
)

// NewPeopleCmd creates the resolve people command
func NewPeopleCmd() *cobra.Command {
	var songsPath string
	var datasetPath string
	var output string
	var reportPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "people",
		Short: "Map credited people from the song dataset to IMDb nconst identifiers",
		Long: `Build the corpus of unique credited names (actors, singers, composers,
lyricists) from the song dataset, stream the IMDb name.basics TSV, and write
a CSV mapping each matched name to its nconst.

Matching is exact after normalization (trim + lowercase). When several rows
match the same name, the last row in file order wins.`,
		Example: `  # Resolve against a local copy of name.basics.tsv
  songmapper resolve people --songs all_songs.json --dataset name.basics.tsv

  # Write a YAML run summary alongside the CSV
  songmapper resolve people --report people_run.yaml --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			return executePeople(songsPath, datasetPath, output, reportPath)
		},
	}

	cmd.Flags().StringVar(&songsPath, "songs", "all_songs.json", "Path to the song dataset (.json, .jsonl or .parquet)")
	cmd.Flags().StringVar(&datasetPath, "dataset", "name.basics.tsv", "Path to the IMDb name.basics TSV")
	cmd.Flags().StringVar(&output, "output", "people_nconsts.csv", "Output CSV path")
	cmd.Flags().StringVar(&reportPath, "report", "", "Optional YAML run summary path")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executePeople(songsPath, datasetPath, output, reportPath string) error {
	start := time.Now()

	records, err := songs.NewLoader(songsPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load song dataset: %w", err)
	}
	slog.Info("Loaded song dataset", "path", songsPath, "records", len(records))

	people := corpus.CollectNames(records)
	slog.Info("Collected name corpus", "unique_names", len(people))

	mapping, stats, err := imdb.ResolveNames(datasetPath, people)
	if err != nil {
		return err
	}

	if err := export.WritePeopleMappings(output, mapping); err != nil {
		return err
	}

	printResolutionSummary("Name", stats, mapping.Len(), time.Since(start))

	if reportPath != "" {
		run := report.NewRun(songsPath, datasetPath, output, stats, mapping.Len(), time.Since(start))
		if err := report.Save(reportPath, run); err != nil {
			return err
		}
		fmt.Printf("Run summary saved to: %s\n", reportPath)
	}

	fmt.Printf("\nMappings saved to: %s\n", output)
	return nil
}

// printResolutionSummary prints a human-readable summary of a resolution run
func printResolutionSummary(what string, stats imdb.Stats, resolved int, elapsed time.Duration) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("%s Resolution Summary\n", what)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Dataset Lines:      %d\n", stats.Lines)
	fmt.Printf("Skipped Rows:       %d\n", stats.Skipped)
	fmt.Printf("Matched Rows:       %d\n", stats.Matched)
	fmt.Printf("Corpus Size:        %d\n", stats.CorpusSize)
	fmt.Printf("Resolved Keys:      %d\n", resolved)
	fmt.Printf("Unmatched Keys:     %d\n", stats.Unmatched)
	fmt.Printf("Elapsed:            %s\n", elapsed.Round(time.Millisecond))
	fmt.Println(strings.Repeat("=", 50))
}
