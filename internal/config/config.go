package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iburimskiy/trait-mixer/internal/mixer"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
)

const (
	WindowWidth  = 800
	WindowHeight = 520

	// Mixer geometry
	DiscRadius  = 150
	LabelMargin = 60
	KnobSize    = 40

	// Blend panel
	PanelWidth  = 260
	PieRadius   = 80
	PieHoleFrac = 0.4
	MinSlice    = 0.02

	// Feedback tick
	SampleRate      = 44100
	TickVolume      = 0.5
	VisualRingSize  = 4096
	SmoothingFactor = 0.6
)

// AudioConfig controls the center crossing tick.
type AudioConfig struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

// Config is everything the host needs to start a mixing session.
type Config struct {
	WindowWidth  int
	WindowHeight int
	DiscRadius   float64
	KnobSize     float64
	ShowPanel    bool
	LogLevel     string

	Params mixer.Params
	Audio  AudioConfig

	// TraitSpecs are raw --trait values; Resolve turns them into Traits.
	TraitSpecs []string
	Traits     []mixer.Trait
}

// Default returns the stock four-trait setup.
func Default() Config {
	return Config{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		DiscRadius:   DiscRadius,
		KnobSize:     KnobSize,
		ShowPanel:    true,
		LogLevel:     "info",
		Params:       mixer.DefaultParams(),
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     TickVolume,
			SampleRate: SampleRate,
		},
		Traits: mixer.DefaultTraits(),
	}
}

// BindFlags exposes every tunable on fs, writing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Float64Var(&cfg.Params.MagneticRadius, "magnetic-radius", cfg.Params.MagneticRadius, "distance from center where the magnetic pull starts (disc units)")
	fs.Float64Var(&cfg.Params.MagneticStrength, "magnetic-strength", cfg.Params.MagneticStrength, "fraction of distance removed at the very center")
	fs.Float64Var(&cfg.Params.CenterThreshold, "center-threshold", cfg.Params.CenterThreshold, "radius of the equal-blend center zone (disc units)")
	fs.Float64Var(&cfg.Params.Sharpness, "sharpness", cfg.Params.Sharpness, "exponent applied to the angular kernel")

	fs.Float64Var(&cfg.DiscRadius, "disc-radius", cfg.DiscRadius, "disc radius in pixels")
	fs.Float64Var(&cfg.KnobSize, "knob-size", cfg.KnobSize, "knob diameter in pixels")
	fs.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width")
	fs.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height")
	fs.BoolVar(&cfg.ShowPanel, "panel", cfg.ShowPanel, "show the blend panel on start")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	fs.BoolVar(&cfg.Audio.Enabled, "audio", cfg.Audio.Enabled, "play a tick when crossing the center zone")
	fs.Float64Var(&cfg.Audio.Volume, "volume", cfg.Audio.Volume, "tick volume in [0,1]")
	fs.IntVar(&cfg.Audio.SampleRate, "sample-rate", cfg.Audio.SampleRate, "audio sample rate")

	fs.StringArrayVar(&cfg.TraitSpecs, "trait", nil, "trait as name:#rrggbb:direction, direction is top|right|bottom|left or degrees (repeatable)")
}

// Resolve parses trait flags, if any, and validates the result.
func (c *Config) Resolve() error {
	if len(c.TraitSpecs) > 0 {
		traits := make([]mixer.Trait, 0, len(c.TraitSpecs))
		for _, spec := range c.TraitSpecs {
			t, err := ParseTrait(spec)
			if err != nil {
				return err
			}
			traits = append(traits, t)
		}
		c.Traits = traits
	}
	return c.Validate()
}

// Validate checks geometry, tuning and traits.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", mixer.ErrInvalidConfiguration, c.WindowWidth, c.WindowHeight)
	}
	if c.DiscRadius <= 0 {
		return fmt.Errorf("%w: disc radius must be positive, got %v", mixer.ErrInvalidConfiguration, c.DiscRadius)
	}
	if c.KnobSize <= 0 {
		return fmt.Errorf("%w: knob size must be positive, got %v", mixer.ErrInvalidConfiguration, c.KnobSize)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume must be in [0,1], got %v", mixer.ErrInvalidConfiguration, c.Audio.Volume)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", mixer.ErrInvalidConfiguration, c.Audio.SampleRate)
	}
	if err := c.Params.Validate(); err != nil {
		return err
	}
	return mixer.ValidateTraits(c.Traits)
}

var errTraitSyntax = errors.New("want name:#rrggbb:direction")

// ParseTrait parses "name:#rrggbb:direction". The name may itself contain colons.
func ParseTrait(spec string) (mixer.Trait, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return mixer.Trait{}, fmt.Errorf("%w: trait %q: %w", mixer.ErrInvalidTraitSet, spec, errTraitSyntax)
	}
	n := len(parts)
	name := strings.TrimSpace(strings.Join(parts[:n-2], ":"))
	c, err := colorful.Hex(strings.TrimSpace(parts[n-2]))
	if err != nil {
		return mixer.Trait{}, fmt.Errorf("%w: trait %q color: %w", mixer.ErrInvalidTraitSet, spec, err)
	}
	angle, err := ParseDirection(parts[n-1])
	if err != nil {
		return mixer.Trait{}, fmt.Errorf("%w: trait %q: %w", mixer.ErrInvalidTraitSet, spec, err)
	}
	return mixer.NewTrait(name, c, angle), nil
}

// ParseDirection accepts a compass name or an angle in degrees.
func ParseDirection(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "up", "n":
		return mixer.Top, nil
	case "right", "e":
		return mixer.Right, nil
	case "bottom", "down", "s":
		return mixer.Bottom, nil
	case "left", "w":
		return mixer.Left, nil
	}
	deg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("direction %q is neither a compass name nor degrees", s)
	}
	return deg, nil
}
