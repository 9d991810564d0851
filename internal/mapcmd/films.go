package mapcmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/corpus"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/export"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/imdb"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/report"
	"github.com/vsingh21/song-metadata-imdb-mapper/internal/songs"
)

// NewFilmsCmd creates the resolve films command
func NewFilmsCmd() *cobra.Command {
	var songsPath string
	var datasetPath string
	var output string
	var reportPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "films",
		Short: "Map film titles from the song dataset to IMDb tconst identifiers",
		Long: `Build the corpus of unique (film title, year) keys from the song dataset,
stream the IMDb title.basics TSV, and write a CSV mapping each matched film
to its tconst.

Matching is exact after normalization (trim + lowercase). Films without a
year only match dataset rows whose startYear is \N. When several rows match
the same film, the last row in file order wins.`,
		Example: `  # Resolve against a local copy of title.basics.tsv
  songmapper resolve films --songs all_songs.json --dataset title.basics.tsv

  # Write a YAML run summary alongside the CSV
  songmapper resolve films --report film_run.yaml --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			return executeFilms(songsPath, datasetPath, output, reportPath)
		},
	}

	cmd.Flags().StringVar(&songsPath, "songs", "all_songs.json", "Path to the song dataset (.json, .jsonl or .parquet)")
	cmd.Flags().StringVar(&datasetPath, "dataset", "title.basics.tsv", "Path to the IMDb title.basics TSV")
	cmd.Flags().StringVar(&output, "output", "film_tconsts.csv", "Output CSV path")
	cmd.Flags().StringVar(&reportPath, "report", "", "Optional YAML run summary path")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executeFilms(songsPath, datasetPath, output, reportPath string) error {
	start := time.Now()

	records, err := songs.NewLoader(songsPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load song dataset: %w", err)
	}
	slog.Info("Loaded song dataset", "path", songsPath, "records", len(records))

	films := corpus.CollectTitles(records)
	slog.Info("Collected film corpus", "unique_films", len(films))

	mapping, stats, err := imdb.ResolveTitles(datasetPath, films)
	if err != nil {
		return err
	}

	if err := export.WriteFilmMappings(output, mapping); err != nil {
		return err
	}

	printResolutionSummary("Film", stats, mapping.Len(), time.Since(start))

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
