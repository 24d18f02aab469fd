package geometry

import "math"

// Vec2 is a 2D vector in world units. +Y points up the screen.
type Vec2 struct {
	X, Y float64
}

var Zero = Vec2{}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector at angle radians, scaled by length.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Normalize returns the unit vector, or Zero for a zero-length input.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle is the direction of v in radians, measured from +X.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits each axis to [-half.X, half.X] and [-half.Y, half.Y].
func (v Vec2) Clamp(half Vec2) Vec2 {
	return Vec2{X: Clamp(v.X, -half.X, half.X), Y: Clamp(v.Y, -half.Y, half.Y)}
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// NormalizeAngle wraps an angle into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// SteerToward rotates the heading of velocity toward target by at most
// maxTurn radians while keeping its speed.
func SteerToward(velocity, target Vec2, maxTurn float64) Vec2 {
	speed := velocity.Len()
	if speed == 0 || target.LenSq() == 0 {
		return velocity
	}
	current := velocity.Angle()
	diff := NormalizeAngle(target.Angle() - current)
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	return FromAngle(current+diff, speed)
}
