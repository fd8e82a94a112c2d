package mixer

import "math"

// Point is a location in the host's pixel space.
type Point struct {
	X, Y float64
}

// Position is the normalized control point. After any controller operation
// it lies inside the unit disc.
type Position struct {
	X, Y float64
}

// Center is the neutral position.
var Center = Position{}

// Distance returns the distance from the center.
func (p Position) Distance() float64 {
	return math.Hypot(p.X, p.Y)
}

// AngleDegrees returns the direction of p in degrees, in (-180, 180].
// Screen coordinates grow downward, so -90 points up.
func (p Position) AngleDegrees() float64 {
	return CanonicalAngle(degrees(math.Atan2(p.Y, p.X)))
}

// Scale multiplies both coordinates by f.
func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f}
}

// clampToDisc projects p onto the unit circle when it lies outside it and
// returns the resulting distance from the center.
func clampToDisc(p Position) (Position, float64) {
	d := p.Distance()
	if d > 1 {
		return p.Scale(1 / d), 1
	}
	return p, d
}

// CanonicalAngle maps any angle in degrees into (-180, 180].
func CanonicalAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

// AngularDistance returns the circular distance between two compass angles,
// in [0, 180].
func AngularDistance(a, b float64) float64 {
	diff := math.Abs(CanonicalAngle(a) - CanonicalAngle(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// DirectionVector returns the unit vector pointing along deg.
func DirectionVector(deg float64) Position {
	r := radians(deg)
	return Position{X: math.Cos(r), Y: math.Sin(r)}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
