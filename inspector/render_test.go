package inspector

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/sparsebuf/sparse"
)

func newTestBuffer(t *testing.T, size int64) *sparse.Buffer {
	t.Helper()
	b, err := sparse.New(size)
	if err != nil {
		t.Fatalf("sparse.New(%d): %v", size, err)
	}
	return b
}

// Plain styles keep the rendered output free of escape sequences.
func plainConfig(b *sparse.Buffer, bytesPerRow int) Config {
	return Config{
		Buffer:      b,
		BytesPerRow: bytesPerRow,
		ShowOffsets: true,
		Style:       Style{},
	}
}

func TestModel_RenderContent_HexAndASCIIColumns(t *testing.T) {
	b := newTestBuffer(t, 8)
	if err := b.LoadRange(2, []byte("AB")); err != nil {
		t.Fatalf("load: %v", err)
	}

	m := New(plainConfig(b, 4))
	got := m.renderContent()
	want := strings.Join([]string{
		"0000  00 00 41 42  ..AB",
		"0004  00 00 00 00  ....",
	}, "\n")
	if got != want {
		t.Fatalf("content:\n%q\nwant:\n%q", got, want)
	}
}

func TestModel_RenderContent_PadsShortFinalRow(t *testing.T) {
	b := newTestBuffer(t, 6)
	if err := b.LoadRange(4, []byte{0xFF, 0xFF}); err != nil {
		t.Fatalf("load: %v", err)
	}

	m := New(plainConfig(b, 4))
	got := m.renderContent()
	want := strings.Join([]string{
		"0000  00 00 00 00  ....",
		"0004  ff ff        ..",
	}, "\n")
	if got != want {
		t.Fatalf("content:\n%q\nwant:\n%q", got, want)
	}
}

func TestModel_RenderContent_NoOffsets(t *testing.T) {
	b := newTestBuffer(t, 4)
	cfg := plainConfig(b, 4)
	cfg.ShowOffsets = false

	m := New(cfg)
	if got, want := m.renderContent(), "00 00 00 00  ...."; got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}
}

func TestModel_RenderRangeMap_MarksLoadedSpans(t *testing.T) {
	b := newTestBuffer(t, 8)
	if err := b.LoadRange(2, []byte{1, 2}); err != nil {
		t.Fatalf("load: %v", err)
	}

	m := New(plainConfig(b, 4))
	m = m.SetSize(8, 10)
	if got, want := m.renderRangeMap(), "--##----"; got != want {
		t.Fatalf("range map=%q, want %q", got, want)
	}
}

func TestModel_RenderStatus(t *testing.T) {
	b := newTestBuffer(t, 64)
	if err := b.LoadRange(0, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := b.Seek(10, sparse.SeekStart); err != nil {
		t.Fatalf("seek: %v", err)
	}

	m := New(plainConfig(b, 16))
	got := m.renderStatus()
	want := "pos 10/64  54 left  1 ranges  v2"
	if got != want {
		t.Fatalf("status=%q, want %q", got, want)
	}
}

func TestModel_RenderContent_DefaultStyleUnderAsciiProfile(t *testing.T) {
	lipgloss.DefaultRenderer().SetColorProfile(termenv.Ascii)

	b := newTestBuffer(t, 4)
	cfg := Config{Buffer: b, BytesPerRow: 4, ShowOffsets: true, Style: DefaultStyle()}
	m := New(cfg)
	m = m.Blur() // keep the reverse-video cursor out of the output

	got := m.renderContent()
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no escape sequences under the Ascii profile, got %q", got)
	}
	if want := "0000  00 00 00 00  ...."; got != want {
		t.Fatalf("content=%q, want %q", got, want)
	}
}
