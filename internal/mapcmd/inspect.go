package mapcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/songs"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var songsPath string
	var limit int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect song dataset records",
		Long: `Inspect records from a song dataset file.

This command is useful for spot-checking what the parser extracted before
resolving the dataset against the IMDb TSVs.`,
		Example: `  # Inspect the first 5 records
  songmapper inspect --songs all_songs.json --limit 5

  # Inspect all records (no limit)
  songmapper inspect --songs all_songs.json --limit 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeInspect(ctx, songsPath, limit)
		},
	}

	cmd.Flags().StringVar(&songsPath, "songs", "all_songs.json", "Path to the song dataset (.json, .jsonl or .parquet)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to inspect (0 for all)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executeInspect(ctx context.Context, songsPath string, limit int) error {
	loader := songs.NewLoader(songsPath)

	var records []songs.Record
	var err error

	if limit > 0 {
		records, err = loader.LoadSample(limit)
	} else {
		records, err = loader.Load()
	}

	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Printf("Loaded %d records from %s\n", len(records), songsPath)
	fmt.Println(strings.Repeat("=", 60))

	for _, record := range records {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Printf("ID:     %d\n", record.ID)

		if record.Film != nil {
			fmt.Printf("Film:   %s\n", *record.Film)
		} else {
			fmt.Println("Film:   (none)")
		}

		if record.Year != nil {
			fmt.Printf("Year:   %d\n", *record.Year)
		} else {
			fmt.Println("Year:   (unknown)")
		}

		fmt.Printf("People: %s\n", strings.Join(record.People, ", "))
		fmt.Println(strings.Repeat("-", 60))
	}

	return nil
}
