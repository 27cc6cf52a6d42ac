package scan

import (
	"container/heap"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// NoExtension is the aggregate key for files whose name carries no suffix.
const NoExtension = "<no-ext>"

// ExtStat holds the running totals for one extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int64 `json:"count"`
	// Bytes is the cumulative size in bytes.
	Bytes int64 `json:"bytes"`
}

// ExtAggregate pairs an extension key with its totals for sorted output.
type ExtAggregate struct {
	Ext   string `json:"ext"`
	Count int64  `json:"count"`
	Bytes int64  `json:"bytes"`
}

// FileStat is one of the largest files seen during a scan.
type FileStat struct {
	// Path is the absolute file path.
	Path string `json:"path"`
	// Bytes is the file size in bytes.
	Bytes int64 `json:"bytes"`

	// seq is the observation order, used to break size ties
	// deterministically.
	seq int64
}

// Snapshot is the result of a scan: aggregate totals, the per-extension
// breakdown sorted by cumulative size, and the largest files in descending
// size order. A snapshot is immutable once returned.
type Snapshot struct {
	// Files is the number of files observed.
	Files int64 `json:"files"`
	// Bytes is the cumulative size of all observed files.
	Bytes int64 `json:"bytes"`
	// Extensions is sorted by Bytes descending, then key ascending.
	Extensions []ExtAggregate `json:"extensions"`
	// TopFiles is sorted by Bytes descending, ties in observation order.
	TopFiles []FileStat `json:"top_files"`
	// Outcome reports whether the scan ran to completion or was cancelled.
	Outcome Outcome `json:"outcome"`
	// Elapsed is the wall time the scan took.
	Elapsed time.Duration `json:"elapsed"`
}

// ExtKey classifies a file name by its suffix alone: the lower-cased text
// from the final '.' on, or NoExtension when the name has no suffix. File
// content is never inspected.
func ExtKey(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return NoExtension
	}

	return ext
}

// topHeap is a min-heap on file size so the smallest retained file is always
// at the root, ready to be displaced by anything larger.
type topHeap []FileStat

func (h topHeap) Len() int { return len(h) }

func (h topHeap) Less(i, j int) bool {
	if h[i].Bytes != h[j].Bytes {
		return h[i].Bytes < h[j].Bytes
	}

	return h[i].seq < h[j].seq
}

func (h topHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *topHeap) Push(x any) { *h = append(*h, x.(FileStat)) }

func (h *topHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Accumulator reduces a stream of (path, size) observations into running
// totals, a per-extension map, and a bounded top-K of the largest files.
//
// It is owned by a single scanning goroutine and is not safe for concurrent
// use.
type Accumulator struct {
	topK  int
	files int64
	bytes int64
	exts  map[string]ExtStat
	top   topHeap
	seq   int64
}

// NewAccumulator returns an accumulator retaining the topK largest files.
func NewAccumulator(topK int) *Accumulator {
	if topK < 1 {
		topK = 1
	}

	return &Accumulator{
		topK: topK,
		exts: make(map[string]ExtStat),
		top:  make(topHeap, 0, topK),
	}
}

// Observe records one file. It never fails.
//
// The top-K update is O(log K): below capacity every file is inserted;
// at capacity the current minimum is replaced only when the new size is
// strictly greater, so ties leave the set unchanged.
func (a *Accumulator) Observe(path string, size int64) {
	a.files++
	a.bytes += size
	a.seq++

	stat := a.exts[ExtKey(path)]
	stat.Count++
	stat.Bytes += size
	a.exts[ExtKey(path)] = stat

	if len(a.top) < a.topK {
		heap.Push(&a.top, FileStat{Path: path, Bytes: size, seq: a.seq})

		return
	}

	if size > a.top[0].Bytes {
		a.top[0] = FileStat{Path: path, Bytes: size, seq: a.seq}
		heap.Fix(&a.top, 0)
	}
}

// Files returns the number of files observed so far.
func (a *Accumulator) Files() int64 { return a.files }

// Snapshot projects the current state into a Snapshot. It is read-only and
// repeatable: calling it twice without intervening observations yields equal
// values.
func (a *Accumulator) Snapshot() *Snapshot {
	exts := make([]ExtAggregate, 0, len(a.exts))
	for ext, stat := range a.exts {
		exts = append(exts, ExtAggregate{Ext: ext, Count: stat.Count, Bytes: stat.Bytes})
	}

	sort.Slice(exts, func(i, j int) bool {
		if exts[i].Bytes != exts[j].Bytes {
			return exts[i].Bytes > exts[j].Bytes
		}

		return exts[i].Ext < exts[j].Ext
	})

	top := make([]FileStat, len(a.top))
	copy(top, a.top)

	sort.Slice(top, func(i, j int) bool {
		if top[i].Bytes != top[j].Bytes {
			return top[i].Bytes > top[j].Bytes
		}

		return top[i].seq < top[j].seq
	})

	return &Snapshot{
		Files:      a.files,
		Bytes:      a.bytes,
		Extensions: exts,
		TopFiles:   top,
	}
}
