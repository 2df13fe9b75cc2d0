package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestPaletteRender(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 4")
	s.DrawTextColor(2, 1, "2048", core.ColorBrightMagenta)
	s.SetColor(11, 2, '*', core.Color(200)) // not in the palette

	out := DefaultPalette().Render(s)

	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	for _, want := range []string{"Score: 4", "2048", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestPaletteCoversTileColors(t *testing.T) {
	p := DefaultPalette()
	for _, c := range []core.Color{
		core.ColorDefault, core.ColorYellow, core.ColorOrange,
		core.ColorBrightMagenta, core.ColorGray,
	} {
		if _, ok := p[c]; !ok {
			t.Errorf("palette has no style for %v", c)
		}
	}
}
