package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Arena program: a single quad for floor and walls.
	arenaProg uint32
	arenaVAO  uint32
	arenaVBO  uint32

	uArenaOrigin int32
	uArenaSize   int32
	uCamera      int32
	uZoom        int32
	uResolution  int32

	// Particle/sprite program. The shaped programs below reuse its VAO.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Glow (radial light) program — additive blend only.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Actor (round character) program.
	actorProg        uint32
	actorUCamera     int32
	actorUZoom       int32
	actorUResolution int32

	// Cheese wedge program.
	cheeseProg        uint32
	cheeseUCamera     int32
	cheeseUZoom       int32
	cheeseUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	arenaProg, err := linkProgram(arenaVertSrc, arenaFragSrc)
	if err != nil {
		return nil, fmt.Errorf("arena program: %w", err)
	}
	spriteProg, err := linkProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		gl.DeleteProgram(arenaProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(particleVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(arenaProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	actorProg, err := linkProgram(particleVertSrc, actorFragSrc)
	if err != nil {
		gl.DeleteProgram(arenaProg)
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("actor program: %w", err)
	}
	cheeseProg, err := linkProgram(particleVertSrc, cheeseFragSrc)
	if err != nil {
		gl.DeleteProgram(arenaProg)
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		gl.DeleteProgram(actorProg)
		return nil, fmt.Errorf("cheese program: %w", err)
	}

	r := &Renderer{
		arenaProg:  arenaProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
		actorProg:  actorProg,
		cheeseProg: cheeseProg,
	}

	// Arena VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var aVAO, aVBO uint32
	gl.GenVertexArrays(1, &aVAO)
	gl.GenBuffers(1, &aVBO)
	gl.BindVertexArray(aVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, aVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.arenaVAO = aVAO
	r.arenaVBO = aVBO

	// Arena uniforms.
	gl.UseProgram(arenaProg)
	r.uArenaOrigin = gl.GetUniformLocation(arenaProg, gl.Str("uArenaOrigin\x00"))
	r.uArenaSize = gl.GetUniformLocation(arenaProg, gl.Str("uArenaSize\x00"))
	r.uCamera = gl.GetUniformLocation(arenaProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(arenaProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(arenaProg, gl.Str("uResolution\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	// Sprite uniforms.
	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	// Glow uniforms.
	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	// Actor uniforms.
	gl.UseProgram(actorProg)
	r.actorUCamera = gl.GetUniformLocation(actorProg, gl.Str("uCamera\x00"))
	r.actorUZoom = gl.GetUniformLocation(actorProg, gl.Str("uZoom\x00"))
	r.actorUResolution = gl.GetUniformLocation(actorProg, gl.Str("uResolution\x00"))

	// Cheese uniforms.
	gl.UseProgram(cheeseProg)
	r.cheeseUCamera = gl.GetUniformLocation(cheeseProg, gl.Str("uCamera\x00"))
	r.cheeseUZoom = gl.GetUniformLocation(cheeseProg, gl.Str("uZoom\x00"))
	r.cheeseUResolution = gl.GetUniformLocation(cheeseProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.arenaVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.arenaVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.arenaProg, r.spriteProg, r.glowProg, r.actorProg, r.cheeseProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.ActiveTexture(gl.TEXTURE0)
}

// DrawArena renders the floor quad with its wall band.
func (r *Renderer) DrawArena(cam Camera, fbW, fbH int) {
	gl.UseProgram(r.arenaProg)
	gl.BindVertexArray(r.arenaVAO)

	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	gl.Uniform2f(r.uArenaOrigin, 0, 0)
	gl.Uniform2f(r.uArenaSize, float32(ArenaSize), float32(ArenaSize))

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// RestoreArenaProgram switches back to the arena program after sprite drawing.
func (r *Renderer) RestoreArenaProgram() {
	gl.UseProgram(r.arenaProg)
	gl.BindVertexArray(r.arenaVAO)
}
