package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vsingh21/song-metadata-imdb-mapper/internal/mapcmd"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve song dataset entries against the IMDb TSV datasets",
		Long: `Resolution tools for mapping extracted song metadata to IMDb identifiers.

Each subcommand streams one of the public IMDb TSV datasets in a single
forward pass, matching exact normalized keys from the song dataset and
writing the resolved identifiers as CSV.`,
	}

	// Add resolve subcommands
	cmd.AddCommand(mapcmd.NewFilmsCmd())
	cmd.AddCommand(mapcmd.NewPeopleCmd())

	return cmd
}
