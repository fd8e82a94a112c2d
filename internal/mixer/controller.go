package mixer

import "fmt"

// CenterEvent is the edge reported when the control point crosses the
// center zone boundary.
type CenterEvent int

const (
	CenterNone CenterEvent = iota
	CenterEntered
	CenterExited
)

func (e CenterEvent) String() string {
	switch e {
	case CenterEntered:
		return "entered"
	case CenterExited:
		return "exited"
	default:
		return "none"
	}
}

// PositionController turns pixel-space pointer locations into a clamped,
// magnetically adjusted Position. One controller belongs to one session and
// is not safe for concurrent use; events must be applied in arrival order.
type PositionController struct {
	params   Params
	pos      Position
	inCenter bool
}

// NewPositionController validates p and returns a controller at the center.
func NewPositionController(p Params) (*PositionController, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := &PositionController{params: p}
	c.BeginSession()
	return c, nil
}

// BeginSession resets the control point to the center. The origin lies in
// the center zone, so the zone state is reset to inside as well.
func (c *PositionController) BeginSession() {
	c.pos = Center
	c.inCenter = true
}

// Position returns the last settled position.
func (c *PositionController) Position() Position { return c.pos }

// InCenter reports whether the last settled position is in the center zone.
func (c *PositionController) InCenter() bool { return c.inCenter }

// ApplyPointer maps loc, relative to a disc of the given radius centered at
// origin, to a settled position. The returned event is CenterNone unless this
// call moved the point across the center zone boundary.
func (c *PositionController) ApplyPointer(loc, origin Point, radius float64) (Position, CenterEvent, error) {
	if !isFinite(radius) || radius <= 0 {
		return c.pos, CenterNone, fmt.Errorf("%w: disc radius must be positive, got %v", ErrInvalidConfiguration, radius)
	}
	if !isFinite(loc.X) || !isFinite(loc.Y) || !isFinite(origin.X) || !isFinite(origin.Y) {
		return c.pos, CenterNone, fmt.Errorf("%w: non-finite pointer geometry", ErrInvalidConfiguration)
	}

	raw := Position{X: (loc.X - origin.X) / radius, Y: (loc.Y - origin.Y) / radius}
	pos, d := clampToDisc(raw)
	pos, d = c.magnetize(pos, d)

	ev := CenterNone
	in := d < c.params.CenterThreshold
	if in != c.inCenter {
		if in {
			ev = CenterEntered
		} else {
			ev = CenterExited
		}
		c.inCenter = in
	}
	c.pos = pos
	return pos, ev, nil
}

// magnetize pulls points inside the magnetic radius toward the center,
// harder the closer they already are.
func (c *PositionController) magnetize(p Position, d float64) (Position, float64) {
	r := c.params.MagneticRadius
	if d <= 0 || d >= r {
		return p, d
	}
	pull := (1 - d/r) * c.params.MagneticStrength
	p = p.Scale(1 - pull)
	return p, p.Distance()
}
