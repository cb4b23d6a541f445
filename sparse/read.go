package sparse

import "fmt"

// Read fills p, byte-exactly, with the buffer's logical content starting
// at the cursor: loaded bytes verbatim, everything else zero. The request
// fails with ErrOutOfBounds when fewer than len(p) bytes remain before
// the logical end, and p is then unspecified.
//
// Read never moves the cursor; reposition with Seek. The asymmetry is
// deliberate and part of the contract.
func (b *Buffer) Read(p []byte) error {
	return b.ReadAt(p, b.pos)
}

// ReadAt is Read from an explicit offset instead of the cursor.
func (b *Buffer) ReadAt(p []byte, off int64) error {
	if len(p) == 0 {
		return fmt.Errorf("read: empty destination: %w", ErrInvalidArgument)
	}
	if off < 0 {
		return fmt.Errorf("read: negative offset %d: %w", off, ErrInvalidArgument)
	}
	if off+int64(len(p)) > b.size {
		return fmt.Errorf("read: %d bytes at offset %d pass size %d: %w", len(p), off, b.size, ErrOutOfBounds)
	}

	n := 0
	for _, e := range b.exts {
		if e.end() <= off {
			continue
		}
		// Zero-fill the gap up to the extent, or to the end of the request.
		if e.off > off {
			z := len(p) - n
			if gap := int(e.off - off); gap < z {
				z = gap
			}
			clear(p[n : n+z])
			n += z
			off += int64(z)
			if n == len(p) {
				break
			}
		}
		c := len(e.data) - int(off-e.off)
		if rem := len(p) - n; rem < c {
			c = rem
		}
		copy(p[n:n+c], e.data[off-e.off:])
		n += c
		off += int64(c)
		if n == len(p) {
			break
		}
	}

	// Whatever lies past the last extent is zero by construction.
	clear(p[n:])
	return nil
}
