package game

import "math"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	}
	return "?"
}

// EndCause says why a run ended.
type EndCause int

const (
	CauseCapture EndCause = iota
	CauseSuspend
)

func (c EndCause) String() string {
	switch c {
	case CauseCapture:
		return "capture"
	case CauseSuspend:
		return "suspend"
	}
	return "?"
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score  int
	Cheese int
	Ticks  int
	Cause  EndCause
}

// Scheduler is the session's one handle on the host's frame cadence:
// ScheduleNext requests a single future Tick invocation, Cancel withdraws a
// pending one. The session decides whether to keep ticking; the host decides
// how and when the invocation actually happens.
type Scheduler interface {
	ScheduleNext()
	Cancel()
}

// Session owns the world, the input state, and the run lifecycle. All
// mutation happens on the host's event thread: key events between ticks,
// the tick body itself, and the suspend signal.
type Session struct {
	Phase Phase
	World World
	Keys  Keys

	// Ticks advanced in the current run.
	Ticks int

	// OnRunEnd receives the summary of every finished run, exactly once
	// per run. The shell feeds it to the hiscore and telemetry.
	OnRunEnd func(RunSummary)

	sched Scheduler
	bus   *EventBus
	rng   *Rand
}

func NewSession(sched Scheduler, bus *EventBus, seed uint64) *Session {
	return &Session{
		Phase: PhaseIdle,
		sched: sched,
		bus:   bus,
		rng:   NewRand(seed),
	}
}

// StartRequested handles the player's start action (space bar or UI
// activation): it begins a run from Idle or GameOver and is ignored while
// one is already Running.
func (s *Session) StartRequested() {
	if s.Phase == PhaseRunning {
		return
	}
	s.Start()
}

// Start begins a fresh run from any phase. Any pending tick is canceled
// before the new chain is scheduled, so two chains can never run at once.
func (s *Session) Start() {
	if s.sched != nil {
		s.sched.Cancel()
	}
	s.World.Reset(s.rng)
	s.Keys.Reset()
	s.Ticks = 0
	s.Phase = PhaseRunning
	s.emit(EventRunStart, s.World.Mouse)
	if s.sched != nil {
		s.sched.ScheduleNext()
	}
}

// Tick advances the simulation once. now is the host clock in seconds.
// A stale invocation arriving after the phase changed is a silent no-op.
func (s *Session) Tick(now float64) {
	if s.Phase != PhaseRunning {
		return
	}
	w := &s.World

	// Delta is measured in 60 Hz reference frames and clamped so a stalled
	// host can't produce a teleporting catch-up tick. The first tick of a
	// run has no previous timestamp and counts as one frame.
	delta := FirstTickDelta
	if w.LastTick != NoTickYet {
		delta = math.Min((now-w.LastTick)/RefFrameSeconds, DeltaMax)
	}
	w.LastTick = now
	s.Ticks++

	MoveMouse(w, &s.Keys, delta)
	MoveCat(w, delta)

	// Capture takes precedence: on a capture tick the cheese is neither
	// consumed nor relocated. Survival score still accrues for this tick,
	// so the final score counts every tick the run was alive.
	captured := Collide(w.Mouse, w.Cat, CharRadius, CharRadius)
	if !captured && Collide(w.Mouse, w.Cheese, CharRadius, CheeseRadius) {
		eatenAt := w.Cheese
		w.Cheese = randomCheesePos(s.rng)
		w.CatSpeed += CatCheeseBoost
		w.CheeseEaten++
		w.Score += CheeseBonus
		s.emit(EventPickup, eatenAt)
	}
	w.Score += ScoreRate * delta

	if captured {
		s.endRun(CauseCapture)
		return
	}
	if s.sched != nil {
		s.sched.ScheduleNext()
	}
}

// Suspend force-ends the run when the host context goes inactive. Outside
// Running it is a no-op.
func (s *Session) Suspend() {
	if s.Phase != PhaseRunning {
		return
	}
	s.endRun(CauseSuspend)
}

// endRun is the single exit from Running, shared by capture and suspension,
// so the end-of-run effects fire exactly once per run.
func (s *Session) endRun(cause EndCause) {
	s.Phase = PhaseGameOver
	if s.sched != nil {
		s.sched.Cancel()
	}
	switch cause {
	case CauseCapture:
		s.emit(EventCapture, s.World.Mouse)
	case CauseSuspend:
		s.emit(EventSuspended, s.World.Mouse)
	}
	if s.OnRunEnd != nil {
		s.OnRunEnd(RunSummary{
			Score:  s.World.DisplayScore(),
			Cheese: s.World.CheeseEaten,
			Ticks:  s.Ticks,
			Cause:  cause,
		})
	}
}

func (s *Session) emit(t EventType, pos Vec2) {
	if s.bus == nil {
		return
	}
	s.bus.Emit(Event{
		Type:   t,
		Pos:    pos,
		Score:  s.World.DisplayScore(),
		Cheese: s.World.CheeseEaten,
	})
}
