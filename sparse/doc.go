// Package sparse implements a byte-addressable buffer of a fixed logical
// size in which only some ranges hold loaded data; every other offset
// reads as zero.
//
// Data arrives incrementally and out of order through LoadRange, which
// merges overlapping or touching ranges into one. RemoveRange carves
// holes back out, splitting ranges when the removal interval falls inside
// one. Read and ReadAt reconstruct any window byte-exactly, stitching
// loaded ranges with zero fill. The cursor is moved only by Seek; Read
// never advances it.
//
// A Buffer is owned by one goroutine at a time. It performs no locking.
package sparse
