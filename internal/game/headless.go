package game

import (
	"log/slog"
	"math"
)

// HeadlessOptions configures windowless simulation runs.
type HeadlessOptions struct {
	Seed     uint64
	Runs     int
	MaxTicks int // per run; the run is suspended when it is reached

	// OnRunEnd receives every finished run's summary.
	OnRunEnd func(RunSummary)
}

// fleePolicy steers the mouse away from the cat with a pull toward the
// arena center so it cannot pin itself in a corner.
func fleePolicy(s *Session) {
	w := &s.World

	fx, fy := w.Mouse.X-w.Cat.X, w.Mouse.Y-w.Cat.Y
	if m := math.Hypot(fx, fy); m > 0 {
		fx, fy = fx/m, fy/m
	}
	cx, cy := ArenaSize/2-w.Mouse.X, ArenaSize/2-w.Mouse.Y
	if m := math.Hypot(cx, cy); m > 0 {
		edge := clampF(m/(ArenaSize/2), 0, 1)
		weight := edge * edge * 1.2
		fx += cx / m * weight
		fy += cy / m * weight
	}

	s.Keys.Reset()
	if fx > 0.35 {
		s.Keys.Press(DirRight)
	} else if fx < -0.35 {
		s.Keys.Press(DirLeft)
	}
	if fy > 0.35 {
		s.Keys.Press(DirDown)
	} else if fy < -0.35 {
		s.Keys.Press(DirUp)
	}
}

// RunHeadless drives back-to-back runs on a synthetic 60 Hz clock with the
// flee policy standing in for the player.
func RunHeadless(opts HeadlessOptions) {
	runs := opts.Runs
	if runs <= 0 {
		runs = 1
	}
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = 20000
	}

	sched := &frameScheduler{}
	session := NewSession(sched, nil, opts.Seed)
	session.OnRunEnd = func(sum RunSummary) {
		slog.Info("run finished",
			"cause", sum.Cause.String(),
			"score", sum.Score,
			"cheese", sum.Cheese,
			"ticks", sum.Ticks)
		if opts.OnRunEnd != nil {
			opts.OnRunEnd(sum)
		}
	}

	clock := 0.0
	for run := 0; run < runs; run++ {
		session.Start()
		for session.Phase == PhaseRunning && sched.pending {
			sched.pending = false
			if session.Ticks >= maxTicks {
				session.Suspend()
				break
			}
			clock += RefFrameSeconds
			fleePolicy(session)
			session.Tick(clock)
		}
	}
}
