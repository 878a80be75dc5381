package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Arena vertex shader: VBO-based quad covering the play field.
const arenaVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec2 uArenaOrigin;
uniform vec2 uArenaSize;
uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec2 vUV;

void main() {
    vUV = aPos;
    vec2 worldPos = uArenaOrigin + aPos * uArenaSize;
    vec2 screenPos = (worldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Arena fragment shader: procedural checkered floor with a wall band at the
// edge. No textures; everything derives from vUV.
const arenaFragSrc = `#version 410 core

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec2 tile = floor(vUV * 16.0);
    float parity = mod(tile.x + tile.y, 2.0);
    vec3 floorA = vec3(0.13, 0.12, 0.16);
    vec3 floorB = vec3(0.15, 0.14, 0.18);
    vec3 col = mix(floorA, floorB, parity);

    // Subtle vignette keeps attention near the middle of the field.
    vec2 centered = vUV - vec2(0.5);
    col *= 1.0 - dot(centered, centered) * 0.55;

    // Wall band with a lit inner lip.
    float border = 0.012;
    float edge = min(min(vUV.x, vUV.y), min(1.0 - vUV.x, 1.0 - vUV.y));
    if (edge < border) {
        float inner = smoothstep(0.0, border, edge);
        col = vec3(0.42, 0.30, 0.20) * (0.55 + 0.45 * inner);
    }

    FragColor = vec4(col, 1.0);
}
` + "\x00"

// Particle vertex shader: point sprites with per-vertex pos/size/color/rotation.
const particleVertSrc = `#version 410 core

layout(location = 0) in vec2 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRotation;

void main() {
    vec2 screenPos = (aWorldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    float ps = floor(aSize * uZoom + 0.5);
    gl_PointSize = max(1.0, ps);
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Particle fragment shader: solid square point sprite.
const particleFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Glow fragment shader: additive radial falloff for light sprites.
// vColor.rgb should be pre-multiplied by desired brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff; // quadratic: natural light falloff
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

// Actor fragment shader: round character body with an outline ring and a
// bright wedge toward the heading given by vRotation.
const actorFragSrc = `#version 410 core

in vec4 vColor;
in float vRotation;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    float dist = length(uv) * 2.0;
    if (dist > 0.92) discard;

    vec3 col = vColor.rgb;

    // Rotate so the heading points +x in local space.
    float c = cos(vRotation);
    float s = sin(vRotation);
    vec2 rot = vec2(c * uv.x + s * uv.y, -s * uv.x + c * uv.y);

    float wedge = clamp(rot.x * 2.0 - abs(rot.y) * 3.0, 0.0, 0.45);
    col = mix(col, vec3(1.0), wedge * 0.5);

    // Top-left light, bottom-right shade.
    float lit = clamp(0.5 - (uv.x + uv.y), 0.0, 1.0);
    col *= 0.78 + lit * 0.45;

    if (dist > 0.78) col *= 0.35; // outline ring

    FragColor = vec4(col, vColor.a);
}
` + "\x00"

// Cheese fragment shader: wedge with a rind strip and darker holes, spun by
// vRotation for a gentle idle wobble.
const cheeseFragSrc = `#version 410 core

in vec4 vColor;
in float vRotation;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);

    float c = cos(vRotation);
    float s = sin(vRotation);
    vec2 rot = vec2(c * uv.x + s * uv.y, -s * uv.x + c * uv.y);

    // Wedge: flat rind on the left, tip pointing right.
    float span = (0.45 - rot.x) / 0.85;
    if (rot.x < -0.40 || rot.x > 0.45 || abs(rot.y) > 0.34 * span) discard;

    vec3 col = vColor.rgb;
    if (rot.x < -0.33) {
        col = vec3(0.93, 0.62, 0.18); // rind
    }

    vec2 h1 = rot - vec2(-0.16, 0.10);
    vec2 h2 = rot - vec2(0.05, -0.07);
    vec2 h3 = rot - vec2(-0.22, -0.15);
    float hole = min(min(length(h1) - 0.070, length(h2) - 0.055), length(h3) - 0.045);
    if (hole < 0.0) col *= 0.55;

    col *= 0.88 - rot.y * 0.35;

    FragColor = vec4(col, vColor.a);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
