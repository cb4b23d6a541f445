package sparse

import "fmt"

// Resize sets the buffer's logical size. Shrinking removes any loaded
// data in the discarded tail and clamps the cursor down to the new size
// when necessary. Growing only extends the addressable space; the new
// tail reads as zero. Resizing to the current size is a no-op.
func (b *Buffer) Resize(newSize int64) error {
	if newSize <= 0 {
		return fmt.Errorf("resize: size %d must be positive: %w", newSize, ErrInvalidArgument)
	}
	if newSize == b.size {
		return nil
	}
	if newSize < b.size {
		if err := b.RemoveRange(newSize, b.size-1); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
		if b.pos > newSize {
			b.pos = newSize
		}
	}
	b.size = newSize
	b.version++
	return nil
}
