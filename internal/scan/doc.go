// Package scan provides streaming directory statistics collection.
//
// It walks a directory tree without leaving the originating volume,
// aggregates file counts and sizes by extension, and tracks the largest
// files seen in a bounded top-K structure, so memory stays constant no
// matter how large the tree is.
package scan
