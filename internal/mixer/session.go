package mixer

import (
	"fmt"
	"log/slog"

	"github.com/iburimskiy/trait-mixer/internal/logging"
	"github.com/lucasb-eyer/go-colorful"
)

// Disc is the mixing disc in the host's pixel space.
type Disc struct {
	Origin Point
	Radius float64
}

// Validate rejects discs that would make the normalization degenerate.
func (d Disc) Validate() error {
	if !isFinite(d.Radius) || d.Radius <= 0 {
		return fmt.Errorf("%w: disc radius must be positive, got %v", ErrInvalidConfiguration, d.Radius)
	}
	if !isFinite(d.Origin.X) || !isFinite(d.Origin.Y) {
		return fmt.Errorf("%w: disc origin must be finite", ErrInvalidConfiguration)
	}
	return nil
}

// Snapshot is the derived state of a session at one instant.
type Snapshot struct {
	Position Position
	Weights  WeightVector
	Color    colorful.Color
	// Event is the center crossing caused by the update that produced the
	// snapshot, CenterNone otherwise.
	Event CenterEvent
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithParams overrides the default tuning.
func WithParams(p Params) Option {
	return func(s *Session) {
		s.params = p
	}
}

// Session owns the controller, the trait list and the disc geometry for one
// mixing session. Weights and color are derived on every read. A Session is
// not safe for concurrent use.
type Session struct {
	params     Params
	engine     Engine
	controller *PositionController
	traits     []Trait
	disc       Disc
	active     bool
	logger     *slog.Logger

	blendObservers  []func(Snapshot)
	centerObservers []func(CenterEvent)
}

// NewSession validates the traits, disc and tuning and returns an active
// session with the control point at the center.
func NewSession(traits []Trait, disc Disc, opts ...Option) (*Session, error) {
	s := &Session{
		params: DefaultParams(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	c, err := NewPositionController(s.params)
	if err != nil {
		return nil, err
	}
	s.controller = c
	s.engine = NewEngine(s.params)
	if err := s.SetDisc(disc); err != nil {
		return nil, err
	}
	if err := s.setTraits(traits); err != nil {
		return nil, err
	}
	s.active = true
	return s, nil
}

// OnBlendChange registers fn to receive every new snapshot. Observers run
// synchronously in registration order.
func (s *Session) OnBlendChange(fn func(Snapshot)) {
	s.blendObservers = append(s.blendObservers, fn)
}

// OnCenterCross registers fn to receive center zone edges, once per crossing.
func (s *Session) OnCenterCross(fn func(CenterEvent)) {
	s.centerObservers = append(s.centerObservers, fn)
}

// Configure replaces the trait list. The position is kept and observers see
// the blend recomputed for the new traits.
func (s *Session) Configure(traits []Trait) error {
	if err := s.setTraits(traits); err != nil {
		return err
	}
	s.notify(s.Snapshot())
	return nil
}

func (s *Session) setTraits(traits []Trait) error {
	if err := ValidateTraits(traits); err != nil {
		return err
	}
	cp := make([]Trait, len(traits))
	for i, t := range traits {
		cp[i] = NewTrait(t.Name, t.Color, t.Angle)
	}
	s.traits = cp
	s.logger.Debug("traits configured", "count", len(cp))
	return nil
}

// SetDisc changes the pixel geometry used by Apply.
func (s *Session) SetDisc(d Disc) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.disc = d
	return nil
}

// Disc returns the current pixel geometry.
func (s *Session) Disc() Disc { return s.disc }

// Traits returns a copy of the configured traits.
func (s *Session) Traits() []Trait {
	return append([]Trait(nil), s.traits...)
}

// Engine returns the engine used for derived values.
func (s *Session) Engine() Engine { return s.engine }

// Controller exposes the session's controller for read access by
// presentation code.
func (s *Session) Controller() *PositionController { return s.controller }

// Active reports whether the session has begun and not ended.
func (s *Session) Active() bool { return s.active }

// Begin starts a fresh session at the center and reports the equal blend.
func (s *Session) Begin() {
	s.controller.BeginSession()
	s.active = true
	s.logger.Debug("session begin")
	s.notify(s.Snapshot())
}

// End discards the position. A later Apply begins a new session.
func (s *Session) End() {
	s.controller.BeginSession()
	s.active = false
	s.logger.Debug("session end")
}

// Apply feeds one pointer location through the controller and returns the
// resulting snapshot.
func (s *Session) Apply(loc Point) (Snapshot, error) {
	if !s.active {
		s.Begin()
	}
	prev := s.controller.Position()
	pos, ev, err := s.controller.ApplyPointer(loc, s.disc.Origin, s.disc.Radius)
	if err != nil {
		return s.Snapshot(), err
	}

	snap := s.derive(pos)
	snap.Event = ev
	if ev != CenterNone {
		s.logger.Debug("center zone crossed", "event", ev.String(), "x", pos.X, "y", pos.Y)
		for _, fn := range s.centerObservers {
			fn(ev)
		}
	}
	if pos != prev {
		s.notify(snap)
	}
	return snap, nil
}

// Snapshot derives the current blend without changing anything.
func (s *Session) Snapshot() Snapshot {
	return s.derive(s.controller.Position())
}

func (s *Session) derive(pos Position) Snapshot {
	w, c := s.engine.Blend(pos, s.traits)
	return Snapshot{Position: pos, Weights: w, Color: c}
}

func (s *Session) notify(snap Snapshot) {
	for _, fn := range s.blendObservers {
		fn(snap)
	}
}
