package inspector

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sparsebuf/sparse"
)

// chromeLines is the space below the viewport used by the range map and
// the status line.
const chromeLines = 2

// Model is a Bubble Tea component that renders a sparse.Buffer as a hex
// view and follows its cursor.
type Model struct {
	cfg Config
	buf *sparse.Buffer

	focused bool

	viewport viewport.Model

	lastVersion uint64
}

func New(cfg Config) Model {
	if cfg.BytesPerRow <= 0 {
		cfg.BytesPerRow = 16
	}
	m := Model{
		cfg:      cfg,
		buf:      cfg.Buffer,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	if m.buf != nil {
		m.lastVersion = m.buf.Version()
	}
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *sparse.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	height -= chromeLines
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Resync in case the host mutated the buffer, but allow manual
		// scrolling away from the cursor.
		m.syncFromBuffer()
		return m, cmd
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderRangeMap() + "\n" + m.renderStatus()
}

// syncFromBuffer rebuilds the content when the buffer's version moved.
func (m *Model) syncFromBuffer() (changed bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport so the cursor's row stays visible.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := int(m.buf.Pos() / int64(m.cfg.BytesPerRow))
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
