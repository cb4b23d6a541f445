package sparse

import "fmt"

// LoadRange copies p into the buffer's own storage at offset off and
// integrates it with the extents already loaded, merging any it overlaps
// or touches. One load can coalesce arbitrarily many existing extents.
//
// The payload must be non-empty, [off, off+len(p)) must lie inside the
// buffer, and cursor+len(p) must not pass the logical end (the length
// check runs against the cursor, not the load offset).
func (b *Buffer) LoadRange(off int64, p []byte) error {
	if len(p) == 0 {
		return fmt.Errorf("load range: empty payload: %w", ErrInvalidArgument)
	}
	if b.pos+int64(len(p)) > b.size {
		return fmt.Errorf("load range: %d bytes from cursor %d pass the buffer end: %w", len(p), b.pos, ErrInvalidArgument)
	}
	if off < 0 || off+int64(len(p)) > b.size {
		return fmt.Errorf("load range: [%d, %d) outside buffer of size %d: %w", off, off+int64(len(p)), b.size, ErrInvalidArgument)
	}

	data, err := b.alloc.Alloc(len(p))
	if err != nil {
		return fmt.Errorf("load range: payload: %w", ErrAllocation)
	}
	copy(data, p)
	in := extent{off: off, data: data}

	// First extent the new one overlaps or touches, if any.
	idx := -1
	for i, e := range b.exts {
		if intersects(in, e) {
			idx = i
			break
		}
	}

	if idx < 0 {
		// Disjoint from everything: insert at the sorted position.
		at := len(b.exts)
		for i, e := range b.exts {
			if in.off < e.off {
				at = i
				break
			}
		}
		b.insertExtent(at, in)
		b.version++
		return nil
	}

	merged, err := b.merge(in, b.exts[idx])
	if err != nil {
		b.alloc.Free(in.data)
		return fmt.Errorf("load range: %w", err)
	}
	b.alloc.Free(b.exts[idx].data)
	b.alloc.Free(in.data)
	b.exts[idx] = merged
	b.version++

	// The merged extent may now reach later extents; fold them in until a
	// gap remains.
	for idx+1 < len(b.exts) && intersects(b.exts[idx], b.exts[idx+1]) {
		next, err := b.merge(b.exts[idx], b.exts[idx+1])
		if err != nil {
			return fmt.Errorf("load range: %w", err)
		}
		b.alloc.Free(b.exts[idx].data)
		b.exts[idx] = next
		b.dropExtents(idx+1, 1)
	}
	return nil
}

// merge fuses two intersecting extents into a freshly allocated one.
//
// Precedence: when one extent fully contains the other, the containing
// extent's bytes win in full. Otherwise the extent with the higher start
// offset contributes all of its bytes, and the lower one only its prefix
// below the higher one's start. Which of the two was loaded first plays
// no part.
func (b *Buffer) merge(x, y extent) (extent, error) {
	// Containment: x is checked first so that an extent replacing an
	// identically-bounded one wins the tie.
	if contains(x, y) || contains(y, x) {
		src := y
		if contains(x, y) {
			src = x
		}
		data, err := b.alloc.Alloc(len(src.data))
		if err != nil {
			return extent{}, ErrAllocation
		}
		copy(data, src.data)
		return extent{off: src.off, data: data}, nil
	}

	lo, hi := x, y
	if hi.off < lo.off {
		lo, hi = hi, lo
	}
	data, err := b.alloc.Alloc(int(hi.end() - lo.off))
	if err != nil {
		return extent{}, ErrAllocation
	}
	keep := int(hi.off - lo.off)
	copy(data, lo.data[:keep])
	copy(data[keep:], hi.data)
	return extent{off: lo.off, data: data}, nil
}
