package mixer

import (
	"fmt"
	"strings"
)

// Weighted pairs a trait with its share of the blend.
type Weighted struct {
	Trait  Trait
	Weight float64
}

// WeightVector holds one entry per trait, in trait order.
type WeightVector []Weighted

// Values returns the bare weights in trait order.
func (v WeightVector) Values() []float64 {
	out := make([]float64, len(v))
	for i, w := range v {
		out[i] = w.Weight
	}
	return out
}

// Sum returns the total weight.
func (v WeightVector) Sum() float64 {
	var s float64
	for _, w := range v {
		s += w.Weight
	}
	return s
}

// Lookup returns the weight reported for name.
func (v WeightVector) Lookup(name string) (float64, bool) {
	for _, w := range v {
		if w.Trait.Name == name {
			return w.Weight, true
		}
	}
	return 0, false
}

// Dominant returns the entry with the largest weight. Ties resolve to the
// earliest trait. ok is false for an empty vector.
func (v WeightVector) Dominant() (Weighted, bool) {
	if len(v) == 0 {
		return Weighted{}, false
	}
	best := v[0]
	for _, w := range v[1:] {
		if w.Weight > best.Weight {
			best = w
		}
	}
	return best, true
}

// Percent returns w truncated to a whole percentage.
func Percent(w float64) int {
	return int(w * 100)
}

// String formats the vector as "Name: NN%" pairs.
func (v WeightVector) String() string {
	parts := make([]string, len(v))
	for i, w := range v {
		parts[i] = fmt.Sprintf("%s: %d%%", w.Trait.Name, Percent(w.Weight))
	}
	return strings.Join(parts, ", ")
}
