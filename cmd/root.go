package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/mapcmd"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "songmapper",
		Short: "Map Giitaayan song metadata to IMDb identifiers",
		Long: `Songmapper builds a small offline dataset from the Giitaayan song archive.

It fetches per-song metadata files, extracts film titles, years and credited
people, and resolves them against the public IMDb TSV datasets to produce
CSV mappings to tconst and nconst identifiers.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(mapcmd.NewFetchCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(mapcmd.NewInspectCmd())

	return cmd
}
