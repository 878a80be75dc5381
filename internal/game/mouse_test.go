package game

import (
	"math"
	"testing"
)

func centeredWorld() *World {
	w := &World{}
	w.Reset(NewRand(1))
	return w
}

func TestMoveMouseCardinalDirections(t *testing.T) {
	tests := []struct {
		name   string
		dir    Dir
		wantDX float64
		wantDY float64
	}{
		{"up", DirUp, 0, -MouseSpeed},
		{"down", DirDown, 0, MouseSpeed},
		{"left", DirLeft, -MouseSpeed, 0},
		{"right", DirRight, MouseSpeed, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := centeredWorld()
			start := w.Mouse
			var k Keys
			k.Press(tt.dir)
			MoveMouse(w, &k, 1)
			if got := w.Mouse.X - start.X; math.Abs(got-tt.wantDX) > 1e-9 {
				t.Errorf("dx = %v, want %v", got, tt.wantDX)
			}
			if got := w.Mouse.Y - start.Y; math.Abs(got-tt.wantDY) > 1e-9 {
				t.Errorf("dy = %v, want %v", got, tt.wantDY)
			}
		})
	}
}

func TestMoveMouseDiagonalNormalized(t *testing.T) {
	w := centeredWorld()
	start := w.Mouse
	var k Keys
	k.Press(DirUp)
	k.Press(DirRight)
	MoveMouse(w, &k, 1)
	moved := Dist(start, w.Mouse)
	if math.Abs(moved-MouseSpeed) > 1e-9 {
		t.Errorf("diagonal displacement = %v, want %v", moved, MouseSpeed)
	}
	if w.Mouse.X <= start.X || w.Mouse.Y >= start.Y {
		t.Errorf("diagonal moved the wrong way: %v -> %v", start, w.Mouse)
	}
}

func TestMoveMouseOpposingKeysCancel(t *testing.T) {
	w := centeredWorld()
	start := w.Mouse
	var k Keys
	k.Press(DirUp)
	k.Press(DirDown)
	k.Press(DirLeft)
	k.Press(DirRight)
	MoveMouse(w, &k, 1)
	if w.Mouse != start {
		t.Errorf("all-keys-held moved the mouse: %v -> %v", start, w.Mouse)
	}
}

func TestMoveMouseNoInputNoMove(t *testing.T) {
	w := centeredWorld()
	start := w.Mouse
	var k Keys
	MoveMouse(w, &k, 2.5)
	if w.Mouse != start {
		t.Errorf("idle mouse moved: %v -> %v", start, w.Mouse)
	}
}

func TestMoveMouseDeltaScaling(t *testing.T) {
	w := centeredWorld()
	start := w.Mouse
	var k Keys
	k.Press(DirRight)
	MoveMouse(w, &k, 0.5)
	if got := w.Mouse.X - start.X; math.Abs(got-MouseSpeed*0.5) > 1e-9 {
		t.Errorf("half-delta dx = %v, want %v", got, MouseSpeed*0.5)
	}
}

func TestMoveMouseStopsAtWalls(t *testing.T) {
	w := centeredWorld()
	var k Keys
	k.Press(DirLeft)
	k.Press(DirUp)
	for i := 0; i < 500; i++ {
		MoveMouse(w, &k, 2.5)
	}
	if w.Mouse.X != WallPad || w.Mouse.Y != WallPad {
		t.Errorf("mouse ended at %v, want pinned to (%v, %v)", w.Mouse, WallPad, WallPad)
	}
}

// Bounds hold for any key combination and any delta in (0, 2.5].
func TestMoveMouseBoundsInvariant(t *testing.T) {
	w := centeredWorld()
	r := NewRand(777)
	var k Keys
	for i := 0; i < 2000; i++ {
		k.Reset()
		for d := DirUp; d < dirCount; d++ {
			if r.Float64() < 0.5 {
				k.Press(d)
			}
		}
		delta := r.RangeF(0.01, DeltaMax)
		MoveMouse(w, &k, delta)
		if w.Mouse.X < WallPad || w.Mouse.X > ArenaSize-WallPad ||
			w.Mouse.Y < WallPad || w.Mouse.Y > ArenaSize-WallPad {
			t.Fatalf("step %d: mouse out of bounds at %v", i, w.Mouse)
		}
	}
}
