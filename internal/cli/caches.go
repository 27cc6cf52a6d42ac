package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/diskscope/internal/cachedirs"
	"github.com/idelchi/diskscope/internal/trash"
)

var dryRun bool

func init() {
	cachesCleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be cleaned without touching anything")
}

var cachesCmd = &cobra.Command{
	Use:   "caches",
	Short: "Summarize well-known cache directories",
	Long: `Scans the cache locations that exist on this machine and reports their
size, file count, and largest entries. Extra roots can be added via the
config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := validateOutput(); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		roots := cachedirs.Roots(cfg.CacheRoots...)
		if len(roots) == 0 {
			fmt.Println("No cache locations found.")

			return nil
		}

		summaries, err := cachedirs.Summarize(cmd.Context(), roots, cfg.TopK, cfg.Workers)
		if err != nil {
			return err
		}

		if output == "json" {
			return PrintJSON(summaries, os.Stdout)
		}

		return PrintSummaries(summaries, os.Stdout)
	},
}

var cachesCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Move cache contents to the trash",
	Long: `Moves every file under the known cache locations into the user's trash,
so the operation stays reversible. Files in use, protected, or otherwise
unmovable are skipped and counted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := validateOutput(); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		bin, err := trash.Open()
		if err != nil {
			return err
		}

		cleaner := trash.NewCleaner(bin, cfg.ProtectedPaths, dryRun)

		var total trash.Result

		for _, root := range cachedirs.Roots(cfg.CacheRoots...) {
			res, err := cleaner.CleanRoot(cmd.Context(), root)

			total.Cleaned += res.Cleaned
			total.Skipped += res.Skipped
			total.Bytes += res.Bytes

			if errors.Is(err, context.Canceled) {
				break
			}

			if err != nil {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", root, err)
			}
		}

		if output == "json" {
			return PrintJSON(total, os.Stdout)
		}

		return PrintCleanResult(total, dryRun, os.Stdout)
	},
}
