package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		fg   string
		x    int
		want string
	}{
		{"middle", "abcdefgh", "XY", 3, "abcXYfgh"},
		{"start", "abcdefgh", "XY", 0, "XYcdefgh"},
		{"past end", "ab", "XY", 4, "ab  XY"},
		{"overhang", "abcd", "XYZ", 2, "abXYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(splice(tt.bg, tt.fg, tt.x)); got != tt.want {
				t.Errorf("splice = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderOverlay(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 9) + strings.Repeat(".", 20)
	got := strings.Split(ansi.Strip(renderOverlay(base, "AB\nCD", 20, 10)), "\n")

	if len(got) != 10 {
		t.Fatalf("got %d rows, want 10", len(got))
	}
	// (10-2)/3 = 2 rows down, (20-2)/2 = 9 columns in.
	if got[2] != ".........AB........." || got[3] != ".........CD........." {
		t.Errorf("overlay rows = %q, %q", got[2], got[3])
	}
	if got[0] != strings.Repeat(".", 20) {
		t.Errorf("background row changed: %q", got[0])
	}
}

func TestComputeLayout(t *testing.T) {
	l := computeLayout(100, 30, 0.55)
	if l.leftWidth != 55 || l.rightWidth != 45 || l.contentHeight != 28 {
		t.Errorf("layout = %+v", l)
	}

	l = computeLayout(30, 2, 0.55)
	if l.leftWidth != minPanelWidth || l.rightWidth != minPanelWidth || l.contentHeight != 1 {
		t.Errorf("narrow layout = %+v", l)
	}
}

func TestRenderPanelsSize(t *testing.T) {
	l := computeLayout(80, 20, 0.5)
	long := strings.Repeat("x", 200) + "\n" + strings.Repeat("line\n", 40)
	out := renderPanels(long, "right", l, 0)

	if w := lipgloss.Width(out); w != 80 {
		t.Errorf("width = %d, want 80", w)
	}
	if h := lipgloss.Height(out); h != l.contentHeight {
		t.Errorf("height = %d, want %d", h, l.contentHeight)
	}
}
