package mixer

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Compass directions in screen space (y grows downward).
const (
	Top    = -90.0
	Right  = 0.0
	Bottom = 90.0
	Left   = 180.0
)

// Trait is a named category with a base color and a fixed direction on the disc.
type Trait struct {
	Name  string
	Color colorful.Color
	// Angle is in degrees, canonicalized to (-180, 180].
	Angle float64
}

// NewTrait builds a trait with its angle canonicalized.
func NewTrait(name string, c colorful.Color, angle float64) Trait {
	return Trait{Name: name, Color: c, Angle: CanonicalAngle(angle)}
}

// DefaultTraits returns the four-direction personality set.
func DefaultTraits() []Trait {
	return []Trait{
		NewTrait("Creative", mustHex("#af52de"), Top),
		NewTrait("Analytical", mustHex("#007aff"), Right),
		NewTrait("Empathetic", mustHex("#ff2d55"), Bottom),
		NewTrait("Practical", mustHex("#34c759"), Left),
	}
}

// ValidateTraits rejects trait lists that would make name-keyed reporting
// ambiguous or that carry values the engine cannot blend.
func ValidateTraits(traits []Trait) error {
	seen := make(map[string]int, len(traits))
	for i, t := range traits {
		if t.Name == "" {
			return fmt.Errorf("%w: trait %d has no name", ErrInvalidTraitSet, i)
		}
		if j, ok := seen[t.Name]; ok {
			return fmt.Errorf("%w: duplicate trait name %q at %d and %d", ErrInvalidTraitSet, t.Name, j, i)
		}
		seen[t.Name] = i
		if !isFinite(t.Angle) {
			return fmt.Errorf("%w: trait %q has non-finite angle", ErrInvalidTraitSet, t.Name)
		}
		if !t.Color.IsValid() {
			return fmt.Errorf("%w: trait %q color %v outside [0,1]", ErrInvalidTraitSet, t.Name, t.Color)
		}
	}
	return nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
