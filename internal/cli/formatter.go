package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/diskscope/internal/cachedirs"
	"github.com/idelchi/diskscope/internal/drives"
	"github.com/idelchi/diskscope/internal/scan"
	"github.com/idelchi/diskscope/internal/trash"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// TopSummaryFiles caps the per-root file listing in cache summaries.
	TopSummaryFiles = 5
)

// PrintJSON writes v as indented JSON.
func PrintJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintSnapshot writes a scan snapshot as a human-readable table.
func PrintSnapshot(snap *scan.Snapshot, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nTop extensions:\t\t")

	for i, ext := range snap.Extensions {
		pct := 0.0
		if snap.Bytes > 0 {
			pct = 100.0 * float64(ext.Bytes) / float64(snap.Bytes)
		}

		fmt.Fprintf(w, "  %d) %s:\t%d files, %s (%.1f%%)\n",
			i+1, ext.Ext, ext.Count, humanize.IBytes(uint64(ext.Bytes)), pct)
	}

	fmt.Fprintln(w, "\nTop files:\t\t")

	for i, f := range snap.TopFiles {
		pct := 0.0
		if snap.Bytes > 0 {
			pct = 100.0 * float64(f.Bytes) / float64(snap.Bytes)
		}

		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n",
			i+1, f.Path, humanize.IBytes(uint64(f.Bytes)), pct)
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", snap.Files)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(snap.Bytes)), snap.Bytes)

	if snap.Outcome == scan.Cancelled {
		fmt.Fprintln(w, "Outcome:\tcancelled (partial results)")
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", snap.Elapsed)

	return w.Flush()
}

// PrintSummaries writes one block per cache root.
func PrintSummaries(summaries []cachedirs.Summary, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	var totalBytes int64

	for _, s := range summaries {
		totalBytes += s.Snapshot.Bytes

		fmt.Fprintf(w, "\n%s\t\t\n", s.Root)
		fmt.Fprintf(w, "  Size:\t%s\n", humanize.IBytes(uint64(s.Snapshot.Bytes)))
		fmt.Fprintf(w, "  Files:\t%d\n", s.Snapshot.Files)

		top := s.Snapshot.TopFiles
		if len(top) > TopSummaryFiles {
			top = top[:TopSummaryFiles]
		}

		for _, f := range top {
			fmt.Fprintf(w, "    %s\t'%s'\n", humanize.IBytes(uint64(f.Bytes)), f.Path)
		}
	}

	fmt.Fprintf(w, "\nTotal cache size:\t%s\n", humanize.IBytes(uint64(totalBytes)))

	return w.Flush()
}

// PrintDrives writes one row per mounted drive.
func PrintDrives(list []drives.Drive, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Device\tMount\tTotal\tUsed\tFree\t")

	for _, d := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%.1f%%)\t%s\t\n",
			d.Device,
			d.Mount,
			humanize.IBytes(d.Total),
			humanize.IBytes(d.Used()),
			d.UsedPercent(),
			humanize.IBytes(d.Free))
	}

	return w.Flush()
}

// PrintCleanResult writes the outcome of a clean pass.
func PrintCleanResult(res trash.Result, dryRun bool, writer io.Writer) error {
	verb := "Cleaned"
	if dryRun {
		verb = "Would clean"
	}

	_, err := fmt.Fprintf(writer, "%s %d files (%s), skipped %d\n",
		verb, res.Cleaned, humanize.IBytes(uint64(res.Bytes)), res.Skipped)

	return err
}
