package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glyphs5x7 holds 7 rows of 5-bit pixel masks per glyph for ASCII 32-126.
// Bit 4 is the leftmost column.
var glyphs5x7 = [95][7]byte{
	{0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000}, // space
	{0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000, 0b00100}, // !
	{0b01010, 0b01010, 0b01010, 0b00000, 0b00000, 0b00000, 0b00000}, // "
	{0b01010, 0b01010, 0b11111, 0b01010, 0b11111, 0b01010, 0b01010}, // #
	{0b00100, 0b01111, 0b10100, 0b01110, 0b00101, 0b11110, 0b00100}, // $
	{0b11000, 0b11001, 0b00010, 0b00100, 0b01000, 0b10011, 0b00011}, // %
	{0b01100, 0b10010, 0b10100, 0b01000, 0b10101, 0b10010, 0b01101}, // &
	{0b01100, 0b00100, 0b01000, 0b00000, 0b00000, 0b00000, 0b00000}, // '
	{0b00010, 0b00100, 0b01000, 0b01000, 0b01000, 0b00100, 0b00010}, // (
	{0b01000, 0b00100, 0b00010, 0b00010, 0b00010, 0b00100, 0b01000}, // )
	{0b00000, 0b00100, 0b10101, 0b01110, 0b10101, 0b00100, 0b00000}, // *
	{0b00000, 0b00100, 0b00100, 0b11111, 0b00100, 0b00100, 0b00000}, // +
	{0b00000, 0b00000, 0b00000, 0b00000, 0b01100, 0b00100, 0b01000}, // ,
	{0b00000, 0b00000, 0b00000, 0b11111, 0b00000, 0b00000, 0b00000}, // -
	{0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b01100, 0b01100}, // .
	{0b00000, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b00000}, // /
	{0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110}, // 0
	{0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110}, // 1
	{0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111}, // 2
	{0b11111, 0b00010, 0b00100, 0b00010, 0b00001, 0b10001, 0b01110}, // 3
	{0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010}, // 4
	{0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110}, // 5
	{0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110}, // 6
	{0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000}, // 7
	{0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110}, // 8
	{0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100}, // 9
	{0b00000, 0b01100, 0b01100, 0b00000, 0b01100, 0b01100, 0b00000}, // :
	{0b00000, 0b01100, 0b01100, 0b00000, 0b01100, 0b00100, 0b01000}, // ;
	{0b00010, 0b00100, 0b01000, 0b10000, 0b01000, 0b00100, 0b00010}, // <
	{0b00000, 0b00000, 0b11111, 0b00000, 0b11111, 0b00000, 0b00000}, // =
	{0b01000, 0b00100, 0b00010, 0b00001, 0b00010, 0b00100, 0b01000}, // >
	{0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b00000, 0b00100}, // ?
	{0b01110, 0b10001, 0b00001, 0b01101, 0b10101, 0b10101, 0b01110}, // @
	{0b01110, 0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001}, // A
	{0b11110, 0b10001, 0b10001, 0b11110, 0b10001, 0b10001, 0b11110}, // B
	{0b01110, 0b10001, 0b10000, 0b10000, 0b10000, 0b10001, 0b01110}, // C
	{0b11100, 0b10010, 0b10001, 0b10001, 0b10001, 0b10010, 0b11100}, // D
	{0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b11111}, // E
	{0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b10000}, // F
	{0b01110, 0b10001, 0b10000, 0b10111, 0b10001, 0b10001, 0b01111}, // G
	{0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001}, // H
	{0b01110, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110}, // I
	{0b00111, 0b00010, 0b00010, 0b00010, 0b00010, 0b10010, 0b01100}, // J
	{0b10001, 0b10010, 0b10100, 0b11000, 0b10100, 0b10010, 0b10001}, // K
	{0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b11111}, // L
	{0b10001, 0b11011, 0b10101, 0b10101, 0b10001, 0b10001, 0b10001}, // M
	{0b10001, 0b10001, 0b11001, 0b10101, 0b10011, 0b10001, 0b10001}, // N
	{0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110}, // O
	{0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000, 0b10000}, // P
	{0b01110, 0b10001, 0b10001, 0b10001, 0b10101, 0b10010, 0b01101}, // Q
	{0b11110, 0b10001, 0b10001, 0b11110, 0b10100, 0b10010, 0b10001}, // R
	{0b01111, 0b10000, 0b10000, 0b01110, 0b00001, 0b00001, 0b11110}, // S
	{0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100}, // T
	{0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110}, // U
	{0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01010, 0b00100}, // V
	{0b10001, 0b10001, 0b10001, 0b10101, 0b10101, 0b10101, 0b01010}, // W
	{0b10001, 0b10001, 0b01010, 0b00100, 0b01010, 0b10001, 0b10001}, // X
	{0b10001, 0b10001, 0b10001, 0b01010, 0b00100, 0b00100, 0b00100}, // Y
	{0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b11111}, // Z
	{0b01110, 0b01000, 0b01000, 0b01000, 0b01000, 0b01000, 0b01110}, // [
	{0b00000, 0b10000, 0b01000, 0b00100, 0b00010, 0b00001, 0b00000}, // backslash
	{0b01110, 0b00010, 0b00010, 0b00010, 0b00010, 0b00010, 0b01110}, // ]
	{0b00100, 0b01010, 0b10001, 0b00000, 0b00000, 0b00000, 0b00000}, // ^
	{0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b11111}, // _
	{0b01000, 0b00100, 0b00010, 0b00000, 0b00000, 0b00000, 0b00000}, // `
	{0b00000, 0b00000, 0b01110, 0b00001, 0b01111, 0b10001, 0b01111}, // a
	{0b10000, 0b10000, 0b11110, 0b10001, 0b10001, 0b10001, 0b11110}, // b
	{0b00000, 0b00000, 0b01110, 0b10000, 0b10000, 0b10001, 0b01110}, // c
	{0b00001, 0b00001, 0b01111, 0b10001, 0b10001, 0b10001, 0b01111}, // d
	{0b00000, 0b00000, 0b01110, 0b10001, 0b11111, 0b10000, 0b01110}, // e
	{0b00110, 0b01001, 0b01000, 0b11100, 0b01000, 0b01000, 0b01000}, // f
	{0b00000, 0b01111, 0b10001, 0b10001, 0b01111, 0b00001, 0b01110}, // g
	{0b10000, 0b10000, 0b11110, 0b10001, 0b10001, 0b10001, 0b10001}, // h
	{0b00100, 0b00000, 0b01100, 0b00100, 0b00100, 0b00100, 0b01110}, // i
	{0b00010, 0b00000, 0b00110, 0b00010, 0b00010, 0b10010, 0b01100}, // j
	{0b10000, 0b10000, 0b10010, 0b10100, 0b11000, 0b10100, 0b10010}, // k
	{0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110}, // l
	{0b00000, 0b00000, 0b11010, 0b10101, 0b10101, 0b10001, 0b10001}, // m
	{0b00000, 0b00000, 0b11110, 0b10001, 0b10001, 0b10001, 0b10001}, // n
	{0b00000, 0b00000, 0b01110, 0b10001, 0b10001, 0b10001, 0b01110}, // o
	{0b00000, 0b00000, 0b11110, 0b10001, 0b11110, 0b10000, 0b10000}, // p
	{0b00000, 0b00000, 0b01111, 0b10001, 0b01111, 0b00001, 0b00001}, // q
	{0b00000, 0b00000, 0b10110, 0b11001, 0b10000, 0b10000, 0b10000}, // r
	{0b00000, 0b00000, 0b01110, 0b10000, 0b01110, 0b00001, 0b11110}, // s
	{0b01000, 0b01000, 0b11100, 0b01000, 0b01000, 0b01001, 0b00110}, // t
	{0b00000, 0b00000, 0b10001, 0b10001, 0b10001, 0b10011, 0b01101}, // u
	{0b00000, 0b00000, 0b10001, 0b10001, 0b10001, 0b01010, 0b00100}, // v
	{0b00000, 0b00000, 0b10001, 0b10001, 0b10101, 0b10101, 0b01010}, // w
	{0b00000, 0b00000, 0b10001, 0b01010, 0b00100, 0b01010, 0b10001}, // x
	{0b00000, 0b00000, 0b10001, 0b10001, 0b01111, 0b00001, 0b01110}, // y
	{0b00000, 0b00000, 0b11111, 0b00010, 0b00100, 0b01000, 0b11111}, // z
	{0b00010, 0b00100, 0b00100, 0b01000, 0b00100, 0b00100, 0b00010}, // {
	{0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100}, // |
	{0b01000, 0b00100, 0b00100, 0b00010, 0b00100, 0b00100, 0b01000}, // }
	{0b00000, 0b00000, 0b01000, 0b10101, 0b00010, 0b00000, 0b00000}, // ~
}

// fontAtlasPixels rasterizes the glyph table into an RGBA atlas. Cells are
// laid out by raw ASCII code: column c%FontCols, row c/FontCols.
func fontAtlasPixels() []uint8 {
	pix := make([]uint8, FontAtlasW*FontAtlasH*4)
	for ch := 32; ch < 127; ch++ {
		glyph := &glyphs5x7[ch-32]
		cellX := (ch % FontCols) * FontCellW
		cellY := (ch / FontCols) * FontCellH
		for row := 0; row < FontGlyphH; row++ {
			bits := glyph[row]
			for col := 0; col < FontGlyphW; col++ {
				if bits&(1<<(FontGlyphW-1-col)) == 0 {
					continue
				}
				off := ((cellY+row)*FontAtlasW + cellX + col) * 4
				pix[off] = 255
				pix[off+1] = 255
				pix[off+2] = 255
				pix[off+3] = 255
			}
		}
	}
	return pix
}

// InitFont builds the font atlas texture and sets up the text pipeline.
func (r *Renderer) InitFont() error {
	pix := fontAtlasPixels()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	r.fontTex = tex

	// Text shader program.
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	if ch < 32 || ch > 126 {
		return
	}
	c := int(ch)
	column := c % FontCols
	row := c / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
