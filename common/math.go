package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Smooth moves current toward target by a fraction rate*dt of the remaining
// distance. The fraction is clamped to [0, 1] so large frame times never
// overshoot.
func Smooth(current, target, rate, dt float64) float64 {
	t := rate * dt
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Lerp(current, target, t)
}

// MoveTowards steps from toward to by at most maxDist. When the remaining
// distance is within one step the result is exactly to, so callers can
// compare positions with ==.
func MoveTowards(from, to cp.Vector, maxDist float64) cp.Vector {
	delta := to.Sub(from)
	dist := delta.Length()
	if dist <= maxDist || dist == 0 {
		return to
	}
	if maxDist <= 0 {
		return from
	}
	return from.Add(delta.Mult(maxDist / dist))
}
