package inspector

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/sparsebuf/internal/hexfmt"
	"github.com/iw2rmb/sparsebuf/sparse"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	size := m.buf.Size()
	content := make([]byte, size)
	if err := m.buf.ReadAt(content, 0); err != nil {
		// Reading the full buffer from offset 0 cannot fail for size >= 1.
		return ""
	}
	loaded := loadedMask(m.buf.Ranges(), size)

	bpr := m.cfg.BytesPerRow
	digits := hexfmt.Digits(size)
	cursor := m.buf.Pos()
	rows := int((size + int64(bpr) - 1) / int64(bpr))

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		start := int64(row) * int64(bpr)
		end := start + int64(bpr)
		if end > size {
			end = size
		}
		sb.WriteString(m.renderRow(content[start:end], loaded[start:end], start, digits, cursor))
	}
	return sb.String()
}

func (m *Model) renderRow(row []byte, loaded []bool, start int64, digits int, cursor int64) string {
	st := m.cfg.Style
	var sb strings.Builder

	if m.cfg.ShowOffsets {
		sb.WriteString(st.Offset.Render(hexfmt.Offset(start, digits)))
		sb.WriteString("  ")
	}

	ascii := make([]string, len(row))
	for i, b := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}
		cell := st.ZeroFill
		if loaded[i] {
			cell = st.Loaded
		}
		if m.focused && start+int64(i) == cursor {
			cell = st.Cursor
		}
		sb.WriteString(cell.Render(hexfmt.Byte(b)))
		ascii[i] = cell.Render(string(hexfmt.Printable(b)))
	}

	// Pad short final rows so the ASCII column lines up.
	for i := len(row); i < m.cfg.BytesPerRow; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("  ")
	}

	sb.WriteString("  ")
	sb.WriteString(strings.Join(ascii, ""))
	return sb.String()
}

// renderRangeMap draws the loaded extents across one line, scaled to the
// viewport width.
func (m *Model) renderRangeMap() string {
	if m.buf == nil {
		return ""
	}
	width := m.viewport.Width
	if width <= 0 {
		width = 40
	}
	size := m.buf.Size()
	loaded := loadedMask(m.buf.Ranges(), size)

	cells := make([]byte, width)
	for i := range cells {
		lo := int64(i) * size / int64(width)
		hi := (int64(i) + 1) * size / int64(width)
		if hi <= lo {
			hi = lo + 1
		}
		if hi > size {
			hi = size
		}
		cells[i] = '-'
		for off := lo; off < hi; off++ {
			if loaded[off] {
				cells[i] = '#'
				break
			}
		}
	}
	return m.cfg.Style.RangeMap.Render(string(cells))
}

func (m *Model) renderStatus() string {
	if m.buf == nil {
		return ""
	}
	s := fmt.Sprintf("pos %d/%d  %d left  %d ranges  v%d",
		m.buf.Pos(), m.buf.Size(), m.buf.BytesLeft(), len(m.buf.Ranges()), m.buf.Version())
	return m.cfg.Style.Status.Render(s)
}

// loadedMask expands the extent list into a per-byte membership mask.
func loadedMask(ranges []sparse.Extent, size int64) []bool {
	mask := make([]bool, size)
	for _, r := range ranges {
		for off := r.Off; off < r.End(); off++ {
			mask[off] = true
		}
	}
	return mask
}
