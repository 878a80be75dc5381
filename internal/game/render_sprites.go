package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders an array of point sprites using the sprite program.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
// additive: true = additive blend, false = standard alpha blend.
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial
// falloff. buf format: same as DrawSprites. RGB values should be
// pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.glowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawActorSprites renders the mouse and cat using the round actor shader.
// buf format: same as DrawSprites; rotation is the heading in radians.
func (r *Renderer) DrawActorSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.actorProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.actorUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.actorUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.actorUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawCheeseSprites renders the cheese pickup using the wedge shader.
// buf format: same as DrawSprites; rotation supplies the idle wobble.
func (r *Renderer) DrawCheeseSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.cheeseProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.cheeseUCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.cheeseUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.cheeseUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
