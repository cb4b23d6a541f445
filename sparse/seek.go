package sparse

import "fmt"

// Whence selects the reference point for Seek.
type Whence int

const (
	// SeekStart interprets the offset as absolute from the start.
	SeekStart Whence = iota
	// SeekCurrent interprets the offset as relative to the cursor.
	SeekCurrent
	// SeekEnd interprets the offset as counting back from the end: the
	// cursor moves to size-offset, so Seek(0, SeekEnd) lands on the
	// end-of-buffer position.
	SeekEnd
)

func (w Whence) String() string {
	switch w {
	case SeekStart:
		return "start"
	case SeekCurrent:
		return "current"
	case SeekEnd:
		return "end"
	}
	return fmt.Sprintf("whence(%d)", int(w))
}

// Seek moves the cursor to the position computed from offset and whence
// and returns the new absolute position. Positions from 0 through Size
// inclusive are valid; Size denotes end-of-buffer. On failure the cursor
// is left unchanged.
func (b *Buffer) Seek(offset int64, whence Whence) (int64, error) {
	var next int64
	switch whence {
	case SeekStart:
		next = offset
	case SeekCurrent:
		next = b.pos + offset
	case SeekEnd:
		next = b.size - offset
	default:
		return 0, fmt.Errorf("seek: invalid whence %d: %w", int(whence), ErrInvalidArgument)
	}
	if next < 0 || next > b.size {
		return 0, fmt.Errorf("seek: position %d outside [0, %d]: %w", next, b.size, ErrInvalidArgument)
	}
	if next != b.pos {
		b.pos = next
		b.version++
	}
	return next, nil
}
