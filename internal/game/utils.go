package game

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/trait-mixer/internal/mixer"
	"github.com/lucasb-eyer/go-colorful"
)

// rgba converts a blend color to an ebiten-ready color with the given opacity.
func rgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smooth moves cur toward target by the configured smoothing factor.
func smooth(cur, target, factor float64) float64 {
	return factor*cur + (1-factor)*target
}

// formatPercent formats a weight as a whole percentage.
func formatPercent(w float64) string {
	return fmt.Sprintf("%d%%", mixer.Percent(w))
}
