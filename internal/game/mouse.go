package game

import "math"

// MoveMouse advances the mouse by one tick of held-key movement. The raw
// direction from Keys.Axes is normalized when non-zero so diagonals are no
// faster than straights, scaled by MouseSpeed*delta, then the position is
// clamped to the walled arena.
func MoveMouse(w *World, keys *Keys, delta float64) {
	dx, dy := keys.Axes()
	if dx != 0 || dy != 0 {
		mag := math.Hypot(dx, dy)
		w.Mouse.X += dx / mag * MouseSpeed * delta
		w.Mouse.Y += dy / mag * MouseSpeed * delta
	}
	w.Mouse.X = clampF(w.Mouse.X, WallPad, ArenaSize-WallPad)
	w.Mouse.Y = clampF(w.Mouse.Y, WallPad, ArenaSize-WallPad)
}
