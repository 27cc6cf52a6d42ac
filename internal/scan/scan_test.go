package scan

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

// exampleTree builds a small fixture with two .txt files, one .log file and
// one extensionless file.
func exampleTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 10)
	writeFile(t, filepath.Join(root, "b.txt"), 20)
	writeFile(t, filepath.Join(root, "c.log"), 5)
	writeFile(t, filepath.Join(root, "d"), 1)

	return root
}

func TestRunEndToEnd(t *testing.T) {
	root := exampleTree(t)

	var events []ProgressEvent

	snap, err := Run(context.Background(), Request{Root: root, TopK: 2, ProgressEvery: 3},
		func(ev ProgressEvent) { events = append(events, ev) })
	if err != nil {
		t.Fatal(err)
	}

	if snap.Outcome != Complete {
		t.Errorf("Outcome = %q, want %q", snap.Outcome, Complete)
	}

	if snap.Files != 4 || snap.Bytes != 36 {
		t.Errorf("Files/Bytes = %d/%d, want 4/36", snap.Files, snap.Bytes)
	}

	wantExts := []ExtAggregate{
		{Ext: ".txt", Count: 2, Bytes: 30},
		{Ext: ".log", Count: 1, Bytes: 5},
		{Ext: NoExtension, Count: 1, Bytes: 1},
	}
	if !reflect.DeepEqual(snap.Extensions, wantExts) {
		t.Errorf("Extensions = %+v, want %+v", snap.Extensions, wantExts)
	}

	if len(snap.TopFiles) != 2 ||
		filepath.Base(snap.TopFiles[0].Path) != "b.txt" ||
		filepath.Base(snap.TopFiles[1].Path) != "a.txt" {
		t.Errorf("TopFiles = %+v, want [b.txt, a.txt]", snap.TopFiles)
	}

	// Cadence event at 3, terminal event at 4.
	counts := eventCounts(events)
	if !reflect.DeepEqual(counts, []int64{3, 4}) {
		t.Errorf("event counts = %v, want [3 4]", counts)
	}
}

func TestRunEmptyTree(t *testing.T) {
	var events []ProgressEvent

	snap, err := Run(context.Background(), Request{Root: t.TempDir()},
		func(ev ProgressEvent) { events = append(events, ev) })
	if err != nil {
		t.Fatal(err)
	}

	if snap.Files != 0 || snap.Bytes != 0 {
		t.Errorf("Files/Bytes = %d/%d, want 0/0", snap.Files, snap.Bytes)
	}

	if len(snap.Extensions) != 0 || len(snap.TopFiles) != 0 {
		t.Errorf("Extensions/TopFiles not empty: %+v / %+v", snap.Extensions, snap.TopFiles)
	}

	// Even an empty tree reports its final (zero) count once.
	if len(events) != 1 || events[0].Files != 0 {
		t.Errorf("events = %+v, want one terminal event with Files=0", events)
	}
}

func TestRunNoDuplicateTerminalEvent(t *testing.T) {
	root := exampleTree(t)

	var events []ProgressEvent

	_, err := Run(context.Background(), Request{Root: root, ProgressEvery: 2},
		func(ev ProgressEvent) { events = append(events, ev) })
	if err != nil {
		t.Fatal(err)
	}

	counts := eventCounts(events)
	if !reflect.DeepEqual(counts, []int64{2, 4}) {
		t.Errorf("event counts = %v, want [2 4]", counts)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	root := exampleTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := Run(ctx, Request{Root: root}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if snap.Outcome != Cancelled {
		t.Errorf("Outcome = %q, want %q", snap.Outcome, Cancelled)
	}

	if snap.Files != 0 || snap.Bytes != 0 {
		t.Errorf("Files/Bytes = %d/%d, want empty partial snapshot", snap.Files, snap.Bytes)
	}
}

func TestRunCancelMidScan(t *testing.T) {
	root := exampleTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events []ProgressEvent

	snap, err := Run(ctx, Request{Root: root, ProgressEvery: 1}, func(ev ProgressEvent) {
		events = append(events, ev)

		if ev.Files == 2 {
			cancel()
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	if snap.Outcome != Cancelled {
		t.Errorf("Outcome = %q, want %q", snap.Outcome, Cancelled)
	}

	if snap.Files != 2 {
		t.Errorf("Files = %d, want 2 (no files processed after cancellation)", snap.Files)
	}

	// No terminal event on cancellation.
	counts := eventCounts(events)
	if !reflect.DeepEqual(counts, []int64{1, 2}) {
		t.Errorf("event counts = %v, want [1 2]", counts)
	}
}

func TestRunForwardsEstimate(t *testing.T) {
	root := exampleTree(t)

	var events []ProgressEvent

	_, err := Run(context.Background(), Request{Root: root, Estimate: 4},
		func(ev ProgressEvent) { events = append(events, ev) })
	if err != nil {
		t.Fatal(err)
	}

	for _, ev := range events {
		if ev.Estimate != 4 {
			t.Errorf("event Estimate = %d, want 4", ev.Estimate)
		}
	}
}

func TestRunInvalidRoot(t *testing.T) {
	if _, err := Run(context.Background(), Request{Root: filepath.Join(t.TempDir(), "missing")}, nil); err == nil {
		t.Error("want error for missing root")
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, 1)

	if _, err := Run(context.Background(), Request{Root: file}, nil); err == nil {
		t.Error("want error for non-directory root")
	}
}

func TestChanSinkDropsWhenFull(t *testing.T) {
	ch := make(chan ProgressEvent, 1)
	sink := ChanSink(ch)

	sink(ProgressEvent{Files: 1})
	sink(ProgressEvent{Files: 2})

	if len(ch) != 1 {
		t.Fatalf("len(ch) = %d, want 1", len(ch))
	}

	if ev := <-ch; ev.Files != 1 {
		t.Errorf("buffered event Files = %d, want 1", ev.Files)
	}
}

func eventCounts(events []ProgressEvent) []int64 {
	counts := make([]int64, 0, len(events))
	for _, ev := range events {
		counts = append(counts, ev.Files)
	}

	return counts
}
