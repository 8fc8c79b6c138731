// Command wfc synthesizes textures from a small example image.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "wfc",
		Short: "Texture synthesis by constraint collapse",
		Long: `wfc grows an output texture from a small example image by
extracting overlapping patterns, learning which may sit next to which,
and collapsing a possibility field cell by cell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
)

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		if errors.Is(err, errContradiction) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
