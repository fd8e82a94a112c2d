package game

import (
	"math"

	"github.com/iburimskiy/trait-mixer/internal/config"
	"github.com/iburimskiy/trait-mixer/internal/mixer"
)

const (
	labelOffset    = 25 // label distance outside the rim
	labelHitRadius = 16
	frameX         = 20
	panelGap       = 40
)

// layout is the pixel geometry of one frame, derived from the config.
type layout struct {
	frameX, frameY float64
	frameSize      float64
	disc           mixer.Disc
	knobSize       float64

	panelX, panelY float64
	pieCenter      mixer.Point
	pieRadius      float64
	legendY        float64
}

func newLayout(cfg config.Config) layout {
	r := cfg.DiscRadius
	size := 2*r + 2*config.LabelMargin
	fy := math.Max(0, (float64(cfg.WindowHeight)-size)/2)
	origin := mixer.Point{X: frameX + size/2, Y: fy + size/2}

	px := frameX + size + panelGap
	py := fy + 20
	return layout{
		frameX:    frameX,
		frameY:    fy,
		frameSize: size,
		disc:      mixer.Disc{Origin: origin, Radius: r},
		knobSize:  cfg.KnobSize,
		panelX:    px,
		panelY:    py,
		pieCenter: mixer.Point{X: px + config.PanelWidth/2, Y: py + 30 + config.PieRadius},
		pieRadius: config.PieRadius,
		legendY:   py + 30 + 2*config.PieRadius + 24,
	}
}

// inFrame reports whether (x, y) is inside the mixer frame, labels included.
func (l layout) inFrame(x, y float64) bool {
	return x >= l.frameX && x <= l.frameX+l.frameSize &&
		y >= l.frameY && y <= l.frameY+l.frameSize
}

// toPixels maps a normalized position onto the disc.
func (l layout) toPixels(p mixer.Position) mixer.Point {
	return mixer.Point{
		X: l.disc.Origin.X + p.X*l.disc.Radius,
		Y: l.disc.Origin.Y + p.Y*l.disc.Radius,
	}
}

// labelPosition places a trait label just outside the rim along its angle.
func (l layout) labelPosition(t mixer.Trait) mixer.Point {
	return l.toPixels(mixer.DirectionVector(t.Angle).Scale((l.disc.Radius + labelOffset) / l.disc.Radius))
}

// traitAt returns the index of the trait label under (x, y), or -1.
func (l layout) traitAt(traits []mixer.Trait, x, y float64) int {
	best, bestDist := -1, float64(labelHitRadius)
	for i, t := range traits {
		p := l.labelPosition(t)
		if d := math.Hypot(x-p.X, y-p.Y); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// slice is one pie sector in screen radians, clockwise from the top.
type slice struct {
	Trait      mixer.Trait
	Weight     float64
	Start, End float64
}

// pieSlices lays the weights out as sectors. Every trait keeps at least
// config.MinSlice of the circle so it stays visible; the real weights are
// carried through untouched for the legend.
func pieSlices(w mixer.WeightVector) []slice {
	if len(w) == 0 {
		return nil
	}
	shown := make([]float64, len(w))
	var total float64
	for i, e := range w {
		shown[i] = math.Max(e.Weight, config.MinSlice)
		total += shown[i]
	}

	out := make([]slice, len(w))
	angle := -math.Pi / 2
	for i, e := range w {
		span := 2 * math.Pi * shown[i] / total
		out[i] = slice{Trait: e.Trait, Weight: e.Weight, Start: angle, End: angle + span}
		angle += span
	}
	return out
}

// labelScale grows a trait dot with its weight.
func labelScale(weight float64) float64 {
	return 0.8 + weight*0.4
}

// labelActive reports whether a trait shows its outer ring.
func labelActive(weight float64) bool {
	return weight > 0.1
}
