// Command diskscope reports directory statistics, summarizes cache
// locations, and moves their contents to the trash.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/diskscope/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, version); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
