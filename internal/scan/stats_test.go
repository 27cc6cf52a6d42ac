package scan

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
)

func TestExtKey(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"lower", "/tree/a.txt", ".txt"},
		{"upper folds", "/tree/REPORT.PDF", ".pdf"},
		{"no extension", "/tree/Makefile", NoExtension},
		{"last suffix wins", "/tree/archive.tar.gz", ".gz"},
		{"dotfile", "/tree/.gitignore", ".gitignore"},
		{"trailing dot", "/tree/odd.", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtKey(tt.path); got != tt.want {
				t.Errorf("ExtKey(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestAccumulatorExampleTree(t *testing.T) {
	acc := NewAccumulator(2)
	acc.Observe("/tree/a.txt", 10)
	acc.Observe("/tree/b.txt", 20)
	acc.Observe("/tree/c.log", 5)
	acc.Observe("/tree/d", 1)

	snap := acc.Snapshot()

	if snap.Files != 4 {
		t.Errorf("Files = %d, want 4", snap.Files)
	}

	if snap.Bytes != 36 {
		t.Errorf("Bytes = %d, want 36", snap.Bytes)
	}

	wantExts := []ExtAggregate{
		{Ext: ".txt", Count: 2, Bytes: 30},
		{Ext: ".log", Count: 1, Bytes: 5},
		{Ext: NoExtension, Count: 1, Bytes: 1},
	}
	if !reflect.DeepEqual(snap.Extensions, wantExts) {
		t.Errorf("Extensions = %+v, want %+v", snap.Extensions, wantExts)
	}

	if len(snap.TopFiles) != 2 {
		t.Fatalf("len(TopFiles) = %d, want 2", len(snap.TopFiles))
	}

	if snap.TopFiles[0].Path != "/tree/b.txt" || snap.TopFiles[0].Bytes != 20 {
		t.Errorf("TopFiles[0] = %+v, want b.txt with 20 bytes", snap.TopFiles[0])
	}

	if snap.TopFiles[1].Path != "/tree/a.txt" || snap.TopFiles[1].Bytes != 10 {
		t.Errorf("TopFiles[1] = %+v, want a.txt with 10 bytes", snap.TopFiles[1])
	}
}

func TestTopKMatchesTrueLargest(t *testing.T) {
	sizes := []int64{5, 1, 9, 9, 3, 12, 0, 7, 9, 2, 11, 6}

	for _, topK := range []int{1, 3, 5, 50} {
		t.Run(fmt.Sprintf("k=%d", topK), func(t *testing.T) {
			acc := NewAccumulator(topK)
			for i, size := range sizes {
				acc.Observe(fmt.Sprintf("/f/%d", i), size)
			}

			snap := acc.Snapshot()

			want := append([]int64(nil), sizes...)
			sort.Slice(want, func(i, j int) bool { return want[i] > want[j] })

			n := topK
			if n > len(sizes) {
				n = len(sizes)
			}

			if len(snap.TopFiles) != n {
				t.Fatalf("len(TopFiles) = %d, want %d", len(snap.TopFiles), n)
			}

			for i, f := range snap.TopFiles {
				if f.Bytes != want[i] {
					t.Errorf("TopFiles[%d].Bytes = %d, want %d", i, f.Bytes, want[i])
				}
			}
		})
	}
}

func TestTopKTiesKeepEarliestFiles(t *testing.T) {
	acc := NewAccumulator(2)
	acc.Observe("/f/first", 5)
	acc.Observe("/f/second", 5)
	acc.Observe("/f/third", 5)

	snap := acc.Snapshot()

	if len(snap.TopFiles) != 2 {
		t.Fatalf("len(TopFiles) = %d, want 2", len(snap.TopFiles))
	}

	// Equal sizes never displace retained files, and ties list in
	// observation order.
	if snap.TopFiles[0].Path != "/f/first" || snap.TopFiles[1].Path != "/f/second" {
		t.Errorf("TopFiles = [%s, %s], want [first, second]",
			snap.TopFiles[0].Path, snap.TopFiles[1].Path)
	}
}

func TestSnapshotIsIdempotent(t *testing.T) {
	acc := NewAccumulator(3)
	acc.Observe("/f/a.go", 100)
	acc.Observe("/f/b.go", 50)
	acc.Observe("/f/c.md", 75)

	first := acc.Snapshot()
	second := acc.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Snapshot() differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAccumulatorMinimumTopK(t *testing.T) {
	acc := NewAccumulator(0)
	acc.Observe("/f/a", 1)
	acc.Observe("/f/b", 2)

	if got := len(acc.Snapshot().TopFiles); got != 1 {
		t.Errorf("len(TopFiles) = %d, want 1", got)
	}
}
