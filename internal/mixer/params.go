package mixer

import "fmt"

const (
	DefaultMagneticRadius   = 0.25
	DefaultMagneticStrength = 0.3
	DefaultCenterThreshold  = 0.15
	DefaultSharpness        = 2.5
)

// Params are the behavior tuning knobs shared by the controller and the engine.
// All distances are in normalized disc units.
type Params struct {
	// MagneticRadius is the distance below which the control is pulled toward the center.
	MagneticRadius float64
	// MagneticStrength is the fraction of the distance removed at the very center.
	MagneticStrength float64
	// CenterThreshold bounds the center zone, where weights are equal.
	CenterThreshold float64
	// Sharpness is the exponent applied to the raised cosine kernel.
	Sharpness float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MagneticRadius:   DefaultMagneticRadius,
		MagneticStrength: DefaultMagneticStrength,
		CenterThreshold:  DefaultCenterThreshold,
		Sharpness:        DefaultSharpness,
	}
}

// Validate rejects negative or non-finite constants. A MagneticStrength above 1
// is rejected too, since it would push points through the center.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"magnetic radius", p.MagneticRadius},
		{"magnetic strength", p.MagneticStrength},
		{"center threshold", p.CenterThreshold},
		{"sharpness", p.Sharpness},
	}
	for _, f := range fields {
		if !isFinite(f.value) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v",
				ErrInvalidConfiguration, f.name, f.value)
		}
	}
	if p.MagneticStrength > 1 {
		return fmt.Errorf("%w: magnetic strength must not exceed 1, got %v",
			ErrInvalidConfiguration, p.MagneticStrength)
	}
	return nil
}
