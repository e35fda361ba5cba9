package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/storage"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"White Knight g1: f3 h3", 12, []string{"White Knight", "g1: f3 h3"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"a bcdefgh", 4, []string{"a", "bcde", "fgh"}},
	}
	for _, tt := range tests {
		if got := wrap(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestWrapFEN(t *testing.T) {
	for _, line := range wrap(board.StartFEN, 34) {
		if len(line) > 34 {
			t.Errorf("line too long: %q", line)
		}
	}
	if got := strings.Join(wrap(board.StartFEN, 80), ""); got != board.StartFEN {
		t.Errorf("wide wrap changed the FEN: %q", got)
	}
}

func TestThemeFor(t *testing.T) {
	for _, th := range storage.Themes {
		theme := themeFor(th)
		if theme.LightSquare == theme.DarkSquare {
			t.Errorf("%s: light and dark squares match", th)
		}
		if theme.SelectedSquare.A != 180 || theme.DestinationColor.A != 200 {
			t.Errorf("%s: overlay alpha %d %d", th, theme.SelectedSquare.A, theme.DestinationColor.A)
		}
	}
}
