package game

import "math"

// MoveCat steers the cat straight at the mouse (pure pursuit) and applies
// the passive difficulty ramp. The cat needs no wall clamp: it chases a
// target that is always in bounds.
func MoveCat(w *World, delta float64) {
	dx := w.Mouse.X - w.Cat.X
	dy := w.Mouse.Y - w.Cat.Y
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		mag = 1 // already on top of the mouse; nowhere to steer
	}
	w.Cat.X += dx / mag * w.CatSpeed * delta
	w.Cat.Y += dy / mag * w.CatSpeed * delta

	// Time-based acceleration, layered under the larger per-cheese boost.
	w.CatSpeed += CatTickAccel * delta
}
