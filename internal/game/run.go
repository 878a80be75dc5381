package game

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// DesktopOptions configures the windowed shell.
type DesktopOptions struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	Seed   uint64

	Audio  bool
	Volume float64 // master volume, 0..1

	// OnRunEnd receives every finished run's summary.
	OnRunEnd func(RunSummary)
}

// frameScheduler defers ticks to the render loop: ScheduleNext arms a flag
// the loop consumes at most once per frame.
type frameScheduler struct {
	pending bool
}

func (f *frameScheduler) ScheduleNext() { f.pending = true }
func (f *frameScheduler) Cancel()       { f.pending = false }

// keyName maps movement keys to the alias names the input layer accepts.
func keyName(key glfw.Key) string {
	switch key {
	case glfw.KeyUp:
		return "ArrowUp"
	case glfw.KeyDown:
		return "ArrowDown"
	case glfw.KeyLeft:
		return "ArrowLeft"
	case glfw.KeyRight:
		return "ArrowRight"
	case glfw.KeyW:
		return "w"
	case glfw.KeyA:
		return "a"
	case glfw.KeyS:
		return "s"
	case glfw.KeyD:
		return "d"
	}
	return ""
}

// RunDesktop opens the window and runs the game until it is closed.
func RunDesktop(opts DesktopOptions) error {
	runtime.LockOSThread()

	window, err := initWindow(opts.Width, opts.Height, opts.Title, opts.VSync)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if opts.Audio {
		if err := InitAudio(); err != nil {
			slog.Warn("audio init failed, continuing without sound", "error", err)
		} else {
			SetMasterVolume(opts.Volume)
			go func() {
				time.Sleep(100 * time.Millisecond) // let audio context initialize
				StartMenuMusic()
			}()
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0.07, 0.06, 0.09, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	// Systems.
	sched := &frameScheduler{}
	bus := NewEventBus()
	session := NewSession(sched, bus, opts.Seed)
	hiscore := &Hiscore{}
	particles := NewParticleSystem(MaxParticles)
	vfxRng := NewRand(opts.Seed ^ 0xBEAD)

	var lastRun *RunSummary
	session.OnRunEnd = func(sum RunSummary) {
		hiscore.Observe(sum.Score)
		lastRun = &sum
		if opts.OnRunEnd != nil {
			opts.OnRunEnd(sum)
		}
	}

	cam := Camera{X: ArenaSize / 2, Y: ArenaSize / 2, Zoom: 1}

	bus.Subscribe(EventRunStart, func(e Event) {
		particles.Clear()
		PlaySound(SoundStart)
		StartChaseMusic()
	})
	bus.Subscribe(EventPickup, func(e Event) {
		particles.SpawnPickupBurst(vfxRng, e.Pos)
		PlaySound(SoundPickup)
	})
	bus.Subscribe(EventCapture, func(e Event) {
		particles.SpawnCaptureBurst(vfxRng, e.Pos)
		cam.AddShake(CaptureShakeIntensity, CaptureShakeDuration)
		PlaySound(SoundCapture)
		StartMenuMusic()
	})
	bus.Subscribe(EventSuspended, func(e Event) {
		StartMenuMusic()
	})

	// Key events, minimization and focus loss all arrive via PollEvents on
	// this thread, between ticks.
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			switch key {
			case glfw.KeyEscape:
				w.SetShouldClose(true)
			case glfw.KeySpace:
				session.StartRequested()
			default:
				session.Keys.KeyDown(keyName(key))
			}
		case glfw.Release:
			session.Keys.KeyUp(keyName(key))
		}
	})
	window.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		if iconified {
			session.Suspend()
		}
	})
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			session.Suspend()
		}
	})

	// Reusable render buffers.
	var glowBuf, normBuf, spriteBuf []float32
	mouseFacing := 0.0

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		// Deliver at most one scheduled tick per frame.
		if sched.pending {
			sched.pending = false
			session.Tick(now)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		cam.Fit(fbW, fbH)
		cam.UpdateShake(dt, opts.Seed^uint64(now*1000))
		particles.Update(dt)

		// Music tension follows the cat's accumulated speed.
		if session.Phase == PhaseRunning {
			SetMusicIntensity((session.World.CatSpeed - CatBaseSpeed) / 6.0)
		}

		renderCam := cam
		sx, sy := cam.EffectivePos()
		renderCam.X = sx
		renderCam.Y = sy

		rend.BeginFrame(fbW, fbH)
		rend.DrawArena(renderCam, fbW, fbH)

		if session.Phase != PhaseIdle {
			w := &session.World

			// Cheese: soft glow under a wobbling wedge.
			wobble := float32(0.3 * math.Sin(now*2.2))
			spriteBuf = append(spriteBuf[:0],
				float32(w.Cheese.X), float32(w.Cheese.Y), float32(CheeseRadius*5), 0.55, 0.42, 0.10, 1, 0,
			)
			rend.DrawGlowSprites(spriteBuf, renderCam, fbW, fbH)

			spriteBuf = append(spriteBuf[:0],
				float32(w.Cheese.X), float32(w.Cheese.Y), float32(CheeseRadius*2.6), 1.0, 0.82, 0.25, 1, wobble,
			)
			rend.DrawCheeseSprites(spriteBuf, renderCam, fbW, fbH)

			// Actors: the mouse faces its input, the cat faces the mouse.
			if dx, dy := session.Keys.Axes(); dx != 0 || dy != 0 {
				mouseFacing = math.Atan2(dy, dx)
			}
			catFacing := math.Atan2(w.Mouse.Y-w.Cat.Y, w.Mouse.X-w.Cat.X)
			spriteBuf = append(spriteBuf[:0],
				float32(w.Mouse.X), float32(w.Mouse.Y), float32(CharRadius*2.2), 0.62, 0.66, 0.78, 1, float32(mouseFacing),
				float32(w.Cat.X), float32(w.Cat.Y), float32(CharRadius*2.4), 0.92, 0.48, 0.15, 1, float32(catFacing),
			)
			rend.DrawActorSprites(spriteBuf, renderCam, fbW, fbH)
		}

		// Particles: glow pass (additive radial) then normal pass.
		glowBuf, normBuf = particles.RenderData(glowBuf, normBuf)
		rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)
		rend.DrawSprites(normBuf, renderCam, fbW, fbH, false)

		// HUD uses the unshaken framebuffer space.
		RenderHUD(rend, session, hiscore, lastRun, fbW, fbH)

		rend.RestoreArenaProgram()
		window.SwapBuffers()
	}

	StopMusic()
	return nil
}
