package main

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sparsebuf/inspector"
	"github.com/iw2rmb/sparsebuf/internal/scenario"
	"github.com/iw2rmb/sparsebuf/sparse"
)

const bytesPerRow = 16

type model struct {
	inspector inspector.Model
	keys      inspector.KeyMap
}

func newModel(b *sparse.Buffer) model {
	cfg := inspector.Config{
		Buffer:      b,
		BytesPerRow: bytesPerRow,
		ShowOffsets: true,
		Style:       inspector.DefaultStyle(),
	}
	return model{
		inspector: inspector.New(cfg),
		keys:      inspector.DefaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.inspector = m.inspector.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inspector, cmd = m.inspector.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.inspector.View() }

// handleKey maps keys to buffer operations. Failed operations leave the
// buffer untouched, so errors are simply dropped here.
func (m model) handleKey(msg tea.KeyMsg) {
	b := m.inspector.Buffer()
	if b == nil {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		_, _ = b.Seek(-1, sparse.SeekCurrent)
	case key.Matches(msg, m.keys.Right):
		_, _ = b.Seek(1, sparse.SeekCurrent)
	case key.Matches(msg, m.keys.Up):
		_, _ = b.Seek(-bytesPerRow, sparse.SeekCurrent)
	case key.Matches(msg, m.keys.Down):
		_, _ = b.Seek(bytesPerRow, sparse.SeekCurrent)
	case key.Matches(msg, m.keys.Home):
		_, _ = b.Seek(0, sparse.SeekStart)
	case key.Matches(msg, m.keys.End):
		_, _ = b.Seek(0, sparse.SeekEnd)
	}

	switch msg.String() {
	case "l":
		_ = b.LoadRange(b.Pos(), sampleBlock(b))
	case "x":
		end := b.Pos() + bytesPerRow - 1
		if end > b.Size()-1 {
			end = b.Size() - 1
		}
		_ = b.RemoveRange(b.Pos(), end)
	case "c":
		b.Clear()
	case "+":
		_ = b.Resize(b.Size() + 256)
	case "-":
		_ = b.Resize(b.Size() - 256)
	}
}

// sampleBlock returns up to one row of ascending bytes, clipped so a
// load at the cursor stays inside the buffer.
func sampleBlock(b *sparse.Buffer) []byte {
	n := int64(bytesPerRow)
	if left := b.Size() - b.Pos(); left < n {
		n = left
	}
	if n <= 0 {
		return nil
	}
	block := make([]byte, n)
	for i := range block {
		block[i] = byte(i + 1)
	}
	return block
}

// demoBuffer is the state shown when no scenario file is given.
func demoBuffer() (*sparse.Buffer, error) {
	sc := &scenario.Scenario{
		Size: 4096,
		Ops: []scenario.Op{
			{Kind: "load", Offset: 0, Data: "deadbeefcafef00d"},
			{Kind: "load", Offset: 256, Fill: 0xAA, Length: 128},
			{Kind: "load", Offset: 1024, Data: "48656c6c6f2c20737061727365"},
			{Kind: "load", Offset: 3968, Fill: 0x55, Length: 128},
			{Kind: "remove", Start: 300, End: 339},
		},
	}
	return sc.Build()
}

func main() {
	var (
		b   *sparse.Buffer
		err error
	)
	if len(os.Args) > 1 {
		var sc *scenario.Scenario
		sc, err = scenario.Load(os.Args[1])
		if err == nil {
			b, err = sc.Build()
		}
	} else {
		b, err = demoBuffer()
	}
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer b.Close()

	p := tea.NewProgram(newModel(b), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
