package game

import "testing"

func TestParticleSystemCapacity(t *testing.T) {
	ps := NewParticleSystem(4)
	for i := 0; i < 10; i++ {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("len = %d, want capped at 4", len(ps.P))
	}
	// Oldest entries are overwritten in a circle: after adds 0..9 the live
	// set is 8, 9, 6, 7.
	if ps.P[0].X != 8 || ps.P[1].X != 9 {
		t.Fatalf("circular overwrite broken: got %v, %v at front", ps.P[0].X, ps.P[1].X)
	}
}

func TestParticleSystemUpdate(t *testing.T) {
	ps := NewParticleSystem(16)
	ps.Add(Particle{VX: 10, MaxLife: 1})
	ps.Add(Particle{MaxLife: 0.05})

	ps.Update(0.1)
	if len(ps.P) != 1 {
		t.Fatalf("expired particle survived: len = %d", len(ps.P))
	}
	if ps.P[0].X <= 0 {
		t.Fatalf("particle did not move: x = %v", ps.P[0].X)
	}

	ps.Update(2.0)
	if len(ps.P) != 0 {
		t.Fatalf("all particles should be dead, len = %d", len(ps.P))
	}
}

func TestParticleBursts(t *testing.T) {
	ps := NewParticleSystem(256)
	r := NewRand(3)
	ps.SpawnPickupBurst(r, Vec2{X: 100, Y: 100})
	pickupN := len(ps.P)
	if pickupN == 0 {
		t.Fatal("pickup burst spawned nothing")
	}
	for _, p := range ps.P {
		if !p.Glow {
			t.Fatal("pickup sparkles must be glow particles")
		}
		if p.X != 100 || p.Y != 100 {
			t.Fatalf("sparkle spawned away from the pickup: (%v, %v)", p.X, p.Y)
		}
	}

	ps.Clear()
	ps.SpawnCaptureBurst(r, Vec2{X: 5, Y: 5})
	if len(ps.P) == 0 {
		t.Fatal("capture burst spawned nothing")
	}
}

func TestParticleRenderDataSplitsPasses(t *testing.T) {
	ps := NewParticleSystem(8)
	ps.Add(Particle{MaxLife: 1, Col: RGB{R: 255}, Glow: true})
	ps.Add(Particle{MaxLife: 1, Col: RGB{G: 255}})
	ps.Add(Particle{MaxLife: 1, Life: 2, Col: RGB{B: 255}}) // already faded out

	glow, norm := ps.RenderData(nil, nil)
	if len(glow) != 8 {
		t.Fatalf("glow buffer = %d floats, want 8", len(glow))
	}
	if len(norm) != 8 {
		t.Fatalf("normal buffer = %d floats, want 8", len(norm))
	}
	// Fresh glow particle: full alpha, premultiplied red stays 1.
	if glow[6] != 1 || glow[3] != 1 {
		t.Fatalf("glow alpha/red = %v/%v, want 1/1", glow[6], glow[3])
	}
}

func TestCameraShakeDecays(t *testing.T) {
	var c Camera
	c.Fit(800, 800)
	if c.Zoom != 1 {
		t.Fatalf("800px framebuffer zoom = %v, want 1", c.Zoom)
	}
	c.AddShake(CaptureShakeIntensity, CaptureShakeDuration)
	c.UpdateShake(0.1, 42)
	x, y := c.EffectivePos()
	if x == c.X && y == c.Y {
		t.Fatal("shake produced no offset")
	}
	c.UpdateShake(10, 42)
	c.UpdateShake(0.1, 42)
	if c.ShakeX != 0 || c.ShakeY != 0 {
		t.Fatalf("shake did not settle: (%v, %v)", c.ShakeX, c.ShakeY)
	}
}
