package sparse

import "fmt"

// RemoveRange erases any loaded data in the inclusive interval
// [start, end]. The interval need not align with extent boundaries:
// extents fully inside it are released, an extent strictly containing it
// is split in two, and extents overlapping one boundary are truncated.
//
// The sweep is not transactional. If an allocation fails partway through,
// extents already visited keep their truncated form while later ones are
// left untouched; ErrAllocation reports the failure either way.
func (b *Buffer) RemoveRange(start, end int64) error {
	if start < 0 || end >= b.size || end < start {
		return fmt.Errorf("remove range: invalid interval [%d, %d] for size %d: %w", start, end, b.size, ErrInvalidArgument)
	}

	changed := false
	defer func() {
		if changed {
			b.version++
		}
	}()

	for i := 0; i < len(b.exts); {
		e := b.exts[i]
		first, last := e.off, e.end()-1

		// Sorted order: nothing at or past this point can overlap.
		if first > end {
			break
		}
		// Entirely before the removal interval.
		if last < start {
			i++
			continue
		}
		// Entirely covered: release it.
		if first >= start && last <= end {
			b.dropExtents(i, 1)
			changed = true
			continue
		}
		// The interval falls strictly inside this extent: split off the
		// right remainder, then shrink the left one in place.
		if first < start && last > end {
			rlen := int(last - end)
			rdata, err := b.alloc.Alloc(rlen)
			if err != nil {
				return fmt.Errorf("remove range: split remainder: %w", ErrAllocation)
			}
			copy(rdata, e.data[end+1-first:])

			ldata, err := b.alloc.Realloc(e.data, int(start-first))
			if err != nil {
				b.alloc.Free(rdata)
				return fmt.Errorf("remove range: shrink left: %w", ErrAllocation)
			}
			b.exts[i].data = ldata
			b.insertExtent(i+1, extent{off: end + 1, data: rdata})
			changed = true
			i += 2
			continue
		}
		// Overlaps only the left boundary: keep the prefix below start.
		if first < start {
			ldata, err := b.alloc.Realloc(e.data, int(start-first))
			if err != nil {
				return fmt.Errorf("remove range: truncate: %w", ErrAllocation)
			}
			b.exts[i].data = ldata
			changed = true
			i++
			continue
		}
		// Overlaps only the right boundary: keep the suffix past end and
		// advance the extent's start.
		n := int(last - end)
		data, err := b.alloc.Alloc(n)
		if err != nil {
			return fmt.Errorf("remove range: truncate: %w", ErrAllocation)
		}
		copy(data, e.data[len(e.data)-n:])
		b.alloc.Free(e.data)
		b.exts[i] = extent{off: end + 1, data: data}
		changed = true
		i++
	}
	return nil
}
