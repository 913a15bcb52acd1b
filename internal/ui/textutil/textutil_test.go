package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"bulbasaur", 20, "bulbasaur"},
		{"bulbasaur", 9, "bulbasaur"},
		{"bulbasaur", 5, "bulb…"},
		{"bulbasaur", 1, "…"},
		{"bulbasaur", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if VisualWidth(Truncate(tt.in, tt.width)) > tt.width {
			t.Errorf("Truncate(%q, %d) exceeds width", tt.in, tt.width)
		}
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("mew", 6); got != "mew   " {
		t.Errorf("PadRightVisual = %q, want %q", got, "mew   ")
	}
	if got := PadRightVisual("charizard", 5); got != "char…" {
		t.Errorf("PadRightVisual = %q, want %q", got, "char…")
	}
	if got := VisualWidth(PadRightVisual("Pokémon", 10)); got != 10 {
		t.Errorf("padded width = %d, want 10", got)
	}
}
