package tui

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantCard      int
		wantTooSmall  bool
	}{
		{"default terminal", 80, 24, maxCardWidth, false},
		{"wide terminal clamps", 200, 50, maxCardWidth, false},
		{"narrow terminal shrinks", 50, 20, 46, false},
		{"minimum size", minWidth, minHeight, minWidth - 4, false},
		{"too narrow", minWidth - 1, 24, 0, true},
		{"too short", 80, minHeight - 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height)
			if l.TooSmall != tt.wantTooSmall {
				t.Errorf("TooSmall = %v, want %v", l.TooSmall, tt.wantTooSmall)
			}
			if l.CardWidth != tt.wantCard {
				t.Errorf("CardWidth = %d, want %d", l.CardWidth, tt.wantCard)
			}
			if l.Width != tt.width || l.Height != tt.height {
				t.Errorf("terminal = %dx%d, want %dx%d", l.Width, l.Height, tt.width, tt.height)
			}
		})
	}
}
