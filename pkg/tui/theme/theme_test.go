package theme

import (
	"image/color"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

func rgba(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}

func TestProgressColorClampsRange(t *testing.T) {
	if rgba(ProgressColor(-0.5)) != rgba(ProgressColor(0)) {
		t.Fatalf("t below range should clamp to the gradient start")
	}
	if rgba(ProgressColor(1.5)) != rgba(ProgressColor(1)) {
		t.Fatalf("t above range should clamp to the gradient end")
	}
	if rgba(ProgressColor(0)) == rgba(ProgressColor(1)) {
		t.Fatalf("gradient endpoints should differ")
	}
}

func TestProgressColorStylesForeground(t *testing.T) {
	// The blend result feeds straight into style foregrounds.
	s := lipgloss.NewStyle().Foreground(ProgressColor(0.5))
	if s.Render("x") == "" {
		t.Fatalf("styled render produced no output")
	}
}
