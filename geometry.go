package chart

import "math"

// Angle conversion factors.
const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// PointOnCircle returns the point at distance from center in the direction
// of angle, given in degrees. Zero degrees points along +X and angles grow
// clockwise on screen since Y increases downwards.
func PointOnCircle(center Point, distance, angle float64) Point {
	rad := angle * DegToRad
	return Point{
		X: center.X + distance*math.Cos(rad),
		Y: center.Y + distance*math.Sin(rad),
	}
}

// RotatedSize returns the size of the axis-aligned bounding box of a w×h
// rectangle rotated by angle radians.
func RotatedSize(w, h, angle float64) Size {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Size{
		Width:  math.Abs(w*cos) + math.Abs(h*sin),
		Height: math.Abs(w*sin) + math.Abs(h*cos),
	}
}

// RotatedSizeDegrees is RotatedSize with the angle given in degrees.
func RotatedSizeDegrees(w, h, angle float64) Size {
	return RotatedSize(w, h, angle*DegToRad)
}

// NormalizeAngle reduces an angle in degrees to [0, 360).
// Non-finite input yields NaN.
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return math.NaN()
	}
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 + 360 rounds to 360; Mod keeps the sign of -0.
	if a >= 360 || a == 0 {
		a = 0
	}
	return a
}
