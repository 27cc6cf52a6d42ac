// Package cli wires the diskscope command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/diskscope/internal/config"
)

var (
	configPath string
	debug      bool
	output     string
)

// Execute runs the diskscope CLI with the given context and version.
func Execute(ctx context.Context, version string) error {
	rootCmd.Version = version

	return rootCmd.ExecuteContext(ctx)
}

var rootCmd = &cobra.Command{
	Use:   "diskscope [path]",
	Short: "Directory statistics and cache cleanup",
	Long: heredoc.Doc(`
		diskscope scans a directory tree and reports its aggregate size, a
		breakdown by file extension, and the largest files, using constant
		memory no matter how large the tree is. Symbolic links and mount
		boundaries are never crossed.

		Without a subcommand it scans the given path (default: the current
		directory). Subcommands summarize well-known cache locations, move
		their contents to the trash, and report mounted drives.
	`),
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default ~/.config/diskscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format: table or json")

	rootCmd.Flags().IntVarP(&topK, "top", "t", 0, "Number of top files to track (overrides config)")
	rootCmd.Flags().IntVarP(&progressEvery, "every", "n", 0, "Progress cadence in files (overrides config)")
	rootCmd.Flags().BoolVar(&estimate, "estimate", false, "Pre-count files for a determinate progress fraction")

	cachesCmd.AddCommand(cachesCleanCmd)
	rootCmd.AddCommand(cachesCmd, drivesCmd, initCmd)
}

// loadConfig reads the configuration from --config or its default location.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, err
		}

		path = p
	}

	return config.Load(path)
}

// validateOutput rejects unknown --output values before any work happens.
func validateOutput() error {
	switch output {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be table or json", output)
	}
}
