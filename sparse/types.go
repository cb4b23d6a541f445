package sparse

// Extent describes one loaded range: Off is its start offset in the
// buffer, Len its length in bytes.
type Extent struct {
	Off int64
	Len int64
}

// End returns the offset just past the extent.
func (x Extent) End() int64 { return x.Off + x.Len }

// extent is a loaded range together with its exclusively owned payload.
// The payload always has exactly the extent's length.
type extent struct {
	off  int64
	data []byte
}

// end returns the offset just past the extent, off+len(data).
func (e extent) end() int64 { return e.off + int64(len(e.data)) }

// intersects reports whether a and b overlap or touch. Only a gap of at
// least one byte between the two keeps them apart.
func intersects(a, b extent) bool {
	return !(a.end() < b.off || b.end() < a.off)
}

// contains reports whether a fully covers b.
func contains(a, b extent) bool {
	return a.off <= b.off && a.end() >= b.end()
}
