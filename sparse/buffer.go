package sparse

import "fmt"

// Buffer is a sparse byte buffer: a fixed logical size, a cursor, and an
// ordered list of loaded extents. Offsets outside every extent read as
// zero. The extents are strictly ordered by start offset and separated by
// at least one byte; touching extents are merged on load.
type Buffer struct {
	size int64
	pos  int64
	exts []extent

	alloc   Allocator
	version uint64
}

// New creates a Buffer of the given logical size using the runtime
// allocator. The size must be positive.
func New(size int64) (*Buffer, error) {
	return NewWithAllocator(size, nil)
}

// NewWithAllocator creates a Buffer that obtains and releases all extent
// payloads through alloc. A nil alloc falls back to RuntimeAllocator.
func NewWithAllocator(size int64, alloc Allocator) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new buffer: size %d must be positive: %w", size, ErrInvalidArgument)
	}
	if alloc == nil {
		alloc = RuntimeAllocator{}
	}
	return &Buffer{size: size, alloc: alloc}, nil
}

// Size returns the logical size of the buffer, independent of how much
// data is actually loaded.
func (b *Buffer) Size() int64 { return b.size }

// Pos returns the current cursor position.
func (b *Buffer) Pos() int64 { return b.pos }

// BytesLeft returns the number of bytes between the cursor and the
// logical end of the buffer.
func (b *Buffer) BytesLeft() int64 { return b.size - b.pos }

// Version returns a counter that increments on every effective mutation
// (load, remove, clear, seek, resize). Hosts use it to detect change
// without diffing contents.
func (b *Buffer) Version() uint64 { return b.version }

// Ranges returns a snapshot of the loaded extents in ascending offset
// order, without payloads. Returns nil when nothing is loaded.
func (b *Buffer) Ranges() []Extent {
	if len(b.exts) == 0 {
		return nil
	}
	out := make([]Extent, len(b.exts))
	for i, e := range b.exts {
		out[i] = Extent{Off: e.off, Len: int64(len(e.data))}
	}
	return out
}

// Clear releases every loaded extent through the allocator. Size and
// cursor are untouched. Clearing an already-empty buffer is a no-op.
func (b *Buffer) Clear() {
	if len(b.exts) == 0 {
		return
	}
	for i := range b.exts {
		b.alloc.Free(b.exts[i].data)
		b.exts[i] = extent{}
	}
	b.exts = b.exts[:0]
	b.version++
}

// Close releases all loaded extents. The Buffer itself is reclaimed by
// the garbage collector once unreferenced. Close is idempotent.
func (b *Buffer) Close() error {
	b.Clear()
	return nil
}

// dropExtents removes n extents starting at index i, releasing their
// payloads and compacting the list.
func (b *Buffer) dropExtents(i, n int) {
	for j := i; j < i+n; j++ {
		b.alloc.Free(b.exts[j].data)
	}
	copy(b.exts[i:], b.exts[i+n:])
	tail := len(b.exts) - n
	for j := tail; j < len(b.exts); j++ {
		b.exts[j] = extent{} // drop the payload reference
	}
	b.exts = b.exts[:tail]
}

// insertExtent places e at index i, shifting later extents right.
func (b *Buffer) insertExtent(i int, e extent) {
	b.exts = append(b.exts, extent{})
	copy(b.exts[i+1:], b.exts[i:])
	b.exts[i] = e
}
