package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filament",
		Short: "Fine-grained reactive runtime for Go",
		Long: `Filament is a fine-grained reactive runtime for Go.

It provides a push-pull signal graph with automatic dependency
tracking, ownership-based disposal and batching, plus keyed and
positional list reconcilers that patch output-tree regions with
minimal moves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "filament.toml", "config file path")

	rootCmd.AddCommand(
		benchCmd(),
		serveCmd(),
		treeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// versionCmd prints build information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("filament %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
