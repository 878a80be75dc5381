package game

import "math"

// Camera maps arena space to the framebuffer. The view is a fixed
// whole-arena fit; the only motion is capture shake.
type Camera struct {
	X, Y float64 // arena-space centre
	Zoom float64 // framebuffer pixels per arena unit

	ShakeX, ShakeY float64 // current offset in arena units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// Fit centres the camera on the arena and scales it to fill the
// framebuffer, letterboxing on the short side.
func (c *Camera) Fit(fbW, fbH int) {
	c.X = ArenaSize / 2
	c.Y = ArenaSize / 2
	c.Zoom = math.Min(float64(fbW)/ArenaSize, float64(fbH)/ArenaSize)
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns the camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}
