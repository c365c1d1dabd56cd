package layout

import (
	"strings"
	"testing"
)

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "★ 0 punten"},
		{1, "★ 1 punt"},
		{550, "★ 550 punten"},
	}
	for _, tt := range tests {
		if got := FormatPoints(tt.total); got != tt.want {
			t.Errorf("FormatPoints(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Werelden", 150, true, 80)
	if !strings.Contains(h, "150 punten") || !strings.Contains(h, "Werelden") {
		t.Fatalf("header missing title or points:\n%s", h)
	}
	if strings.Contains(RenderHeader("Werelden", 150, false, 80), "punten") {
		t.Error("points shown while hidden")
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size must fit")
	}
}
