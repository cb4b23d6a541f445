package sparse

// Allocator is the memory capability a Buffer uses for extent payloads.
// Every payload a Buffer owns was obtained from its Allocator and is
// handed back through Free when the extent is absorbed, removed, or the
// buffer is cleared. Allocation failure is a recoverable error at every
// call site, never a fatal condition.
//
// Implementations must return a slice of exactly the requested length.
// Realloc may reuse buf's storage; the caller treats the returned slice
// as the payload's new sole owner either way.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Realloc(buf []byte, size int) ([]byte, error)
	Free(buf []byte)
}

// RuntimeAllocator delegates to the Go runtime. Free is a no-op; the
// garbage collector reclaims released payloads.
type RuntimeAllocator struct{}

func (RuntimeAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (RuntimeAllocator) Realloc(buf []byte, size int) ([]byte, error) {
	if size <= cap(buf) {
		return buf[:size], nil
	}
	next := make([]byte, size)
	copy(next, buf)
	return next, nil
}

func (RuntimeAllocator) Free([]byte) {}
