package game

import "math"

// World is the single unit of mutable simulation state. It is owned by the
// Session and mutated only from within a tick; everything else sees it
// read-only.
type World struct {
	Mouse  Vec2
	Cat    Vec2
	Cheese Vec2

	CatSpeed    float64 // never drops below CatBaseSpeed within a run
	Score       float64 // fractional; HUD shows the floor
	CheeseEaten int

	LastTick float64 // seconds; NoTickYet until the first tick of a run
}

// Reset puts the world back to run-start values with a fresh cheese spot.
func (w *World) Reset(rng *Rand) {
	w.Mouse = Vec2{X: MouseStartX, Y: MouseStartY}
	w.Cat = Vec2{X: CatStartX, Y: CatStartY}
	w.Cheese = randomCheesePos(rng)
	w.CatSpeed = CatBaseSpeed
	w.Score = 0
	w.CheeseEaten = 0
	w.LastTick = NoTickYet
}

// DisplayScore is the integer score suitable for direct display.
func (w *World) DisplayScore() int {
	return int(math.Floor(w.Score))
}

// randomCheesePos picks a uniform position inside the cheese spawn box,
// which is inset further than the wall padding so cheese never sits flush
// against a wall.
func randomCheesePos(rng *Rand) Vec2 {
	return Vec2{
		X: rng.RangeF(CheesePad, ArenaSize-CheesePad),
		Y: rng.RangeF(CheesePad, ArenaSize-CheesePad),
	}
}
