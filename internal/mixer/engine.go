package mixer

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// White is the blend color at the center of the disc.
var White = colorful.Color{R: 1, G: 1, B: 1}

// Engine computes blends from a position and a trait list. It holds no state
// besides its parameters and is safe for concurrent use.
type Engine struct {
	params Params
}

// NewEngine returns an engine using p. Callers are expected to have validated p.
func NewEngine(p Params) Engine {
	return Engine{params: p}
}

// Params returns the engine's tuning.
func (e Engine) Params() Params { return e.params }

// Weights distributes the blend across traits by angular proximity to pos.
// Inside the center zone every trait gets exactly 1/N.
func (e Engine) Weights(pos Position, traits []Trait) WeightVector {
	n := len(traits)
	out := make(WeightVector, n)
	if n == 0 {
		return out
	}
	if n == 1 || pos.Distance() < e.params.CenterThreshold {
		return equalWeights(out, traits)
	}

	theta := pos.AngleDegrees()
	var total float64
	for i, t := range traits {
		a := e.affinity(AngularDistance(theta, t.Angle))
		out[i] = Weighted{Trait: t, Weight: a}
		total += a
	}
	if total <= 0 || !isFinite(total) {
		return equalWeights(out, traits)
	}
	for i := range out {
		out[i].Weight /= total
	}
	return out
}

// affinity is the sharpened raised cosine of an angular distance in degrees.
func (e Engine) affinity(delta float64) float64 {
	raised := (1 + math.Cos(radians(delta))) / 2
	if raised <= 0 {
		return 0
	}
	return math.Pow(raised, e.params.Sharpness)
}

func equalWeights(out WeightVector, traits []Trait) WeightVector {
	w := 1 / float64(len(traits))
	for i, t := range traits {
		out[i] = Weighted{Trait: t, Weight: w}
	}
	return out
}

// Color interpolates from white at the center toward the weighted trait mix
// at the rim. How far it goes depends only on the distance from the center.
func (e Engine) Color(pos Position, weights WeightVector) colorful.Color {
	if len(weights) == 0 {
		return White
	}
	influence := math.Min(1, pos.Distance())

	var mixed colorful.Color
	for _, w := range weights {
		mixed.R += w.Weight * w.Trait.Color.R
		mixed.G += w.Weight * w.Trait.Color.G
		mixed.B += w.Weight * w.Trait.Color.B
	}
	// 1-(1-m)*k, written so both ends are exact.
	rest := 1 - influence
	return colorful.Color{
		R: mixed.R*influence + rest,
		G: mixed.G*influence + rest,
		B: mixed.B*influence + rest,
	}.Clamped()
}

// Blend computes the weights and the color for pos in one pass.
func (e Engine) Blend(pos Position, traits []Trait) (WeightVector, colorful.Color) {
	w := e.Weights(pos, traits)
	return w, e.Color(pos, w)
}
