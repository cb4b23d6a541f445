package inspector

import "github.com/iw2rmb/sparsebuf/sparse"

// Config configures the inspector Model.
type Config struct {
	// Buffer is the sparse buffer to inspect. Required.
	Buffer *sparse.Buffer

	// BytesPerRow is the number of bytes rendered per hex row.
	// Defaults to 16.
	BytesPerRow int

	// ShowOffsets renders the offset gutter.
	ShowOffsets bool

	Style Style
}
