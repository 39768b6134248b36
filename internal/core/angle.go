package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Bearing returns the direction from one point to another in degrees.
// 0° is +X and angles grow toward +Y, so with a y-down screen 90° is south.
func Bearing(from, to Point) float64 {
	d := r2.Sub(to.Vec(), from.Vec())
	return NormalizeDegrees(math.Atan2(d.Y, d.X) * 180 / math.Pi)
}

// Heading returns the unit vector pointing along deg.
func Heading(deg float64) r2.Vec {
	rad := deg * math.Pi / 180
	return r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Advance moves p by speed units along deg, truncating to integer units.
func Advance(p Point, deg float64, speed float64) Point {
	return p.Offset(r2.Scale(speed, Heading(deg)))
}
