package theme

import (
	"image/color"
	"testing"
)

func TestTierColor(t *testing.T) {
	tests := []struct {
		tier string
		want color.Color
	}{
		{"high", Success},
		{"medium", Accent},
		{"low", Warning},
		{"", Warning},
	}
	for _, tt := range tests {
		if got := TierColor(tt.tier); got != tt.want {
			t.Errorf("TierColor(%q) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}
