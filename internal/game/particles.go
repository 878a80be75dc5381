package game

import "math"

// Particle is a short-lived cosmetic sprite. Glow particles render through
// the additive pass, the rest through normal alpha blending.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Glow bool
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update integrates and ages particles, compacting out the dead.
func (ps *ParticleSystem) Update(dt float64) {
	damp := 1.0 - 2.2*dt
	if damp < 0 {
		damp = 0
	}
	alive := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= damp
		p.VY *= damp
		alive = append(alive, p)
	}
	ps.P = alive
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// SpawnPickupBurst scatters cheese sparkles from the eaten pickup.
func (ps *ParticleSystem) SpawnPickupBurst(rng *Rand, pos Vec2) {
	for i := 0; i < 26; i++ {
		ang := rng.RangeF(0, 2*math.Pi)
		spd := rng.RangeF(40, 160)
		ps.Add(Particle{
			X: pos.X, Y: pos.Y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    rng.RangeF(3, 7),
			MaxLife: rng.RangeF(0.25, 0.6),
			Col:     RGB{R: 255, G: uint8(190 + rng.Range(0, 50)), B: 60},
			Glow:    true,
		})
	}
}

// SpawnCaptureBurst throws a grey dust cloud where the cat lands.
func (ps *ParticleSystem) SpawnCaptureBurst(rng *Rand, pos Vec2) {
	for i := 0; i < 44; i++ {
		ang := rng.RangeF(0, 2*math.Pi)
		spd := rng.RangeF(25, 210)
		grey := uint8(120 + rng.Range(0, 90))
		ps.Add(Particle{
			X: pos.X, Y: pos.Y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    rng.RangeF(4, 10),
			MaxLife: rng.RangeF(0.4, 0.95),
			Col:     RGB{R: grey, G: grey, B: grey},
		})
	}
}

// RenderData appends sprite vertices, split into glow (additive) and normal
// (alpha blend) buffers. Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) RenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		t := clampF(p.Life/p.MaxLife, 0, 1)
		a := float32(1.0 - t)
		if a <= 0 {
			continue
		}
		col := p.Col
		if p.Glow {
			// Sparkles cool from white-hot toward their base color.
			col = lerpRGB(RGB{R: 255, G: 255, B: 220}, p.Col, t)
		}
		rc := float32(col.R) / 255.0
		gc := float32(col.G) / 255.0
		bc := float32(col.B) / 255.0
		if p.Glow {
			// Additive: pre-multiply color by alpha.
			rc *= a
			gc *= a
			bc *= a
			glowBuf = append(glowBuf, float32(p.X), float32(p.Y), float32(p.Size), rc, gc, bc, a, 0)
		} else {
			normBuf = append(normBuf, float32(p.X), float32(p.Y), float32(p.Size), rc, gc, bc, a, 0)
		}
	}
	return glowBuf, normBuf
}
