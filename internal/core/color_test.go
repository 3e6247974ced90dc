package core

import "testing"

func TestColorDim(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"bright cyan", ColorBrightCyan, ColorCyan},
		{"bright red", ColorBrightRed, ColorRed},
		{"bright white", ColorBrightWhite, ColorWhite},
		{"no bright variant", ColorOrange, ColorOrange},
		{"already normal", ColorGreen, ColorGreen},
		{"default", ColorDefault, ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Dim(); got != tt.want {
				t.Errorf("Dim(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
