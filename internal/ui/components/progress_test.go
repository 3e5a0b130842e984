package components

import (
	"strings"
	"testing"

	"github.com/abhisek/dermatype/internal/ui/theme"
)

func TestProgressBar_Defaults(t *testing.T) {
	bar := NewProgressBar("Confidence", 0.5, true, 40)
	if bar.Fill != theme.Secondary {
		t.Errorf("default Fill = %v, want theme.Secondary", bar.Fill)
	}
}

func TestProgressBar_TierFill(t *testing.T) {
	bar := NewProgressBar("Confidence", 0.9, true, 40)
	bar.Fill = theme.TierColor("high")
	if bar.Fill != theme.Success {
		t.Errorf("Fill = %v, want theme.Success", bar.Fill)
	}
	if out := bar.View(); out == "" {
		t.Error("View() returned empty output")
	}
}

func TestProgressBar_ViewClamps(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"below zero", -0.5},
		{"above one", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar("", tt.percent, true, 20)
			out := bar.View()
			if out == "" {
				t.Fatal("View() returned empty output")
			}
			if !strings.Contains(out, "%") {
				t.Errorf("View() missing percent suffix: %q", out)
			}
		})
	}
}
