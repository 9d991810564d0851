package mapcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/songs"
)

// NewFetchCmd creates the fetch command for building the song dataset
func NewFetchCmd() *cobra.Command {
	var first int
	var last int
	var output string
	var baseURL string
	var cacheDir string
	var concurrency int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch song metadata files and build the song dataset",
		Long: `Fetch song metadata files from the Giitaayan repository by sequential
file identifier, extract film titles, years and credited people, and persist
the collected records as a dataset file.

Fetch failures are logged and skipped, so an incomplete source never aborts
the run. The output format follows the file extension (.json or .parquet).`,
		Example: `  # Build the full dataset
  songmapper fetch --output all_songs.json

  # Fetch a small range with a local cache of the raw files
  songmapper fetch --first 1 --last 50 --cache-dir ./songcache --verbose

  # Persist as parquet instead of JSON
  songmapper fetch --output all_songs.parquet --concurrency 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			if env := os.Getenv("SONGS_BASE_URL"); env != "" && !cmd.Flags().Changed("base-url") {
				baseURL = env
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeFetch(ctx, first, last, output, baseURL, cacheDir, concurrency)
		},
	}

	cmd.Flags().IntVar(&first, "first", songs.DefaultFirstID, "First song file identifier")
	cmd.Flags().IntVar(&last, "last", songs.DefaultLastID, "Last song file identifier")
	cmd.Flags().StringVar(&output, "output", "all_songs.json", "Output dataset path (.json or .parquet)")
	cmd.Flags().StringVar(&baseURL, "base-url", songs.DefaultBaseURL, "Base URL of the song repository (env SONGS_BASE_URL)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory for caching raw song files (empty disables caching)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "Number of concurrent fetches")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executeFetch(ctx context.Context, first, last int, output, baseURL, cacheDir string, concurrency int) error {
	fetcher := songs.NewFetcher(songs.FetchConfig{
		BaseURL:     baseURL,
		CacheDir:    cacheDir,
		Concurrency: concurrency,
	})

	records, err := fetcher.FetchAll(ctx, first, last)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if err := songs.Save(records, output); err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}

	fmt.Printf("\nDataset saved to: %s (%d records)\n", output, len(records))
	return nil
}
