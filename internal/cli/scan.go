package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/diskscope/internal/scan"
)

var (
	topK          int
	progressEvery int
	estimate      bool
)

func runScan(cmd *cobra.Command, args []string) error {
	if err := validateOutput(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	req := scan.Request{
		Root:          path,
		TopK:          cfg.TopK,
		ProgressEvery: cfg.ProgressEvery,
		Debug:         debug,
	}

	if topK > 0 {
		req.TopK = topK
	}

	if progressEvery > 0 {
		req.ProgressEvery = progressEvery
	}

	enableProgress := output != "json" && !debug && isatty.IsTerminal(os.Stderr.Fd())

	var sink scan.ProgressFunc

	if enableProgress {
		if estimate {
			if n, err := scan.EstimateFileCount(path); err == nil {
				req.Estimate = n
			}
		}

		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		sink = progressLine
	}

	snap, err := scan.Run(cmd.Context(), req, sink)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if output == "json" {
		return PrintJSON(snap, os.Stdout)
	}

	return PrintSnapshot(snap, os.Stdout)
}

// progressLine rewrites one stderr status line per event.
func progressLine(ev scan.ProgressEvent) {
	if ev.Estimate > 0 {
		pct := float64(ev.Files) / float64(ev.Estimate) * 100
		if pct > 100 {
			pct = 100
		}

		fmt.Fprintf(os.Stderr, "\r\033[2KScanning… %d/%d files (%.0f%%)\r", ev.Files, ev.Estimate, pct)

		return
	}

	fmt.Fprintf(os.Stderr, "\r\033[2KScanning… %d files, %s elapsed\r",
		ev.Files, ev.Elapsed.Round(time.Second))
}
