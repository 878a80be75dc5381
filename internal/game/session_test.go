package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler stands in for the host frame loop: it records the session's
// scheduling decisions and lets tests deliver ticks by hand.
type fakeScheduler struct {
	pending   bool
	scheduled int
	canceled  int
	log       []string
}

func (f *fakeScheduler) ScheduleNext() {
	f.pending = true
	f.scheduled++
	f.log = append(f.log, "schedule")
}

func (f *fakeScheduler) Cancel() {
	f.pending = false
	f.canceled++
	f.log = append(f.log, "cancel")
}

func newTestSession(seed uint64) (*Session, *fakeScheduler) {
	f := &fakeScheduler{}
	return NewSession(f, NewEventBus(), seed), f
}

// tickAt delivers the pending tick at reference-frame timestamp n, so every
// tick after the first lands with delta exactly 1.
func tickAt(s *Session, f *fakeScheduler, n int) {
	f.pending = false
	s.Tick(float64(n) * RefFrameSeconds)
}

func TestStartResetsWorldFromAnyPhase(t *testing.T) {
	s, f := newTestSession(7)

	check := func(from string) {
		require.Equal(t, PhaseRunning, s.Phase, "phase after start from %s", from)
		assert.Equal(t, Vec2{X: MouseStartX, Y: MouseStartY}, s.World.Mouse, from)
		assert.Equal(t, Vec2{X: CatStartX, Y: CatStartY}, s.World.Cat, from)
		assert.Equal(t, CatBaseSpeed, s.World.CatSpeed, from)
		assert.Zero(t, s.World.Score, from)
		assert.Zero(t, s.World.CheeseEaten, from)
		assert.Equal(t, NoTickYet, s.World.LastTick, from)
		assert.Zero(t, s.Ticks, from)
		for d := DirUp; d < dirCount; d++ {
			assert.False(t, s.Keys.Held(d), "%v held after start from %s", d, from)
		}
		assert.GreaterOrEqual(t, s.World.Cheese.X, float64(CheesePad), from)
		assert.LessOrEqual(t, s.World.Cheese.X, ArenaSize-CheesePad, from)
		assert.GreaterOrEqual(t, s.World.Cheese.Y, float64(CheesePad), from)
		assert.LessOrEqual(t, s.World.Cheese.Y, ArenaSize-CheesePad, from)
		assert.True(t, f.pending, "tick chain not scheduled after start from %s", from)
	}

	require.Equal(t, PhaseIdle, s.Phase)
	s.Start()
	check("idle")

	// Dirty the state mid-run, then restart while Running.
	s.Keys.Press(DirLeft)
	tickAt(s, f, 1)
	tickAt(s, f, 2)
	s.Start()
	check("running")

	// End the run, restart from game over.
	s.World.Cat = s.World.Mouse
	tickAt(s, f, 3)
	require.Equal(t, PhaseGameOver, s.Phase)
	s.Start()
	check("gameover")
}

func TestStartRequestedIgnoredWhileRunning(t *testing.T) {
	s, f := newTestSession(7)
	s.StartRequested()
	require.Equal(t, PhaseRunning, s.Phase)

	tickAt(s, f, 1)
	score := s.World.Score
	ticks := s.Ticks
	s.StartRequested()
	assert.Equal(t, score, s.World.Score, "start request mid-run reset the world")
	assert.Equal(t, ticks, s.Ticks)
}

func TestRestartCancelsPendingBeforeScheduling(t *testing.T) {
	s, f := newTestSession(7)
	s.Start()
	s.Start()
	require.GreaterOrEqual(t, len(f.log), 4)
	last := f.log[len(f.log)-2:]
	assert.Equal(t, []string{"cancel", "schedule"}, last)
	assert.Equal(t, 2, f.scheduled)
	assert.Equal(t, 2, f.canceled)
}

func TestTickOutsideRunningIsNoOp(t *testing.T) {
	s, f := newTestSession(7)

	s.Tick(1.0)
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Zero(t, s.World.Score)
	assert.Zero(t, f.scheduled, "idle tick scheduled a successor")

	s.Start()
	s.World.Cat = s.World.Mouse
	tickAt(s, f, 1)
	require.Equal(t, PhaseGameOver, s.Phase)
	frozen := s.World
	scheduled := f.scheduled

	// A stale invocation after game over must change nothing.
	s.Tick(99.0)
	assert.Equal(t, frozen, s.World)
	assert.Equal(t, scheduled, f.scheduled)
}

func TestFirstTickUsesOneFrameDelta(t *testing.T) {
	s, f := newTestSession(7)
	s.Start()
	s.World.Cheese = Vec2{X: 700, Y: 60} // keep the tick pickup-free
	// An arbitrary large timestamp must not matter on the first tick.
	f.pending = false
	s.Tick(1234.5678)
	assert.InDelta(t, ScoreRate, s.World.Score, 1e-9)
	assert.Equal(t, 1234.5678, s.World.LastTick)
}

func TestDeltaClampBoundsCatchUpTicks(t *testing.T) {
	s, f := newTestSession(7)
	s.Start()
	s.World.Cheese = Vec2{X: 700, Y: 60} // keep the ticks pickup-free
	tickAt(s, f, 1)
	score := s.World.Score

	// Ten real seconds between ticks: delta must clamp at DeltaMax.
	f.pending = false
	s.Tick(1*RefFrameSeconds + 10.0)
	assert.InDelta(t, ScoreRate*DeltaMax, s.World.Score-score, 1e-9)
}

func TestPickupEffects(t *testing.T) {
	s, f := newTestSession(7)
	s.Start()
	s.World.Cat = Vec2{X: 60, Y: 60}
	old := s.World.Mouse
	s.World.Cheese = old
	speed := s.World.CatSpeed

	tickAt(s, f, 1)

	require.Equal(t, PhaseRunning, s.Phase)
	assert.Equal(t, 1, s.World.CheeseEaten)
	assert.InDelta(t, CheeseBonus+ScoreRate, s.World.Score, 1e-9)
	assert.InDelta(t, speed+CatCheeseBoost+CatTickAccel, s.World.CatSpeed, 1e-12)
	assert.NotEqual(t, old, s.World.Cheese, "cheese not relocated")
	assert.GreaterOrEqual(t, s.World.Cheese.X, float64(CheesePad))
	assert.LessOrEqual(t, s.World.Cheese.X, ArenaSize-CheesePad)
	assert.GreaterOrEqual(t, s.World.Cheese.Y, float64(CheesePad))
	assert.LessOrEqual(t, s.World.Cheese.Y, ArenaSize-CheesePad)
	assert.True(t, f.pending, "run should keep ticking after a pickup")
}

func TestCaptureTakesPrecedenceOverPickup(t *testing.T) {
	s, f := newTestSession(7)
	var got []RunSummary
	s.OnRunEnd = func(r RunSummary) { got = append(got, r) }
	s.Start()

	// Both the cat and the cheese sit exactly on the mouse this tick.
	s.World.Cat = s.World.Mouse
	cheese := s.World.Mouse
	s.World.Cheese = cheese
	tickAt(s, f, 1)

	require.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, cheese, s.World.Cheese, "cheese must not relocate on a capture tick")
	assert.Zero(t, s.World.CheeseEaten)
	// Survival accrual only: no pickup bonus, no pickup speed boost.
	assert.InDelta(t, ScoreRate, s.World.Score, 1e-9)
	assert.InDelta(t, CatBaseSpeed+CatTickAccel, s.World.CatSpeed, 1e-12)
	require.Len(t, got, 1)
	assert.Equal(t, CauseCapture, got[0].Cause)
	assert.False(t, f.pending, "capture left the tick chain alive")
}

func TestCaptureEndsRunExactlyOnce(t *testing.T) {
	s, f := newTestSession(7)
	ends := 0
	s.OnRunEnd = func(RunSummary) { ends++ }
	s.Start()
	s.World.Cat = s.World.Mouse
	tickAt(s, f, 1)
	s.Tick(2 * RefFrameSeconds)
	s.Suspend()
	assert.Equal(t, 1, ends)
	// One cancel from Start, one from the capture; the stale tick and the
	// late suspend must not add more.
	assert.Equal(t, 2, f.canceled)
}

func TestScoreMonotonicity(t *testing.T) {
	s, f := newTestSession(7)
	s.Start()
	s.World.Cat = Vec2{X: 60, Y: 60}
	prev := s.World.DisplayScore()
	r := NewRand(5)
	for n := 1; n <= 300 && s.Phase == PhaseRunning; n++ {
		if r.Float64() < 0.3 {
			s.Keys.Press(Dir(r.Intn(int(dirCount))))
		} else {
			s.Keys.Release(Dir(r.Intn(int(dirCount))))
		}
		// Park the cat each tick so the run never ends.
		s.World.Cat = Vec2{X: 60, Y: 60}
		tickAt(s, f, n)
		if got := s.World.DisplayScore(); got < prev {
			t.Fatalf("tick %d: displayed score dropped %d -> %d", n, prev, got)
		} else {
			prev = got
		}
	}
}

func TestSpeedMonotonicityWithPickups(t *testing.T) {
	s, f := newTestSession(7)
	s.Start()
	prev := s.World.CatSpeed
	for n := 1; n <= 200; n++ {
		s.World.Cat = Vec2{X: 60, Y: 60}
		if n%50 == 0 {
			s.World.Cheese = s.World.Mouse // force a pickup this tick
		}
		before := s.World.CatSpeed
		tickAt(s, f, n)
		require.GreaterOrEqual(t, s.World.CatSpeed, prev, "tick %d", n)
		if n%50 == 0 {
			require.Greater(t, s.World.CatSpeed, before+CatCheeseBoost/2, "pickup tick %d must jump speed", n)
		}
		prev = s.World.CatSpeed
	}
}

func TestScenarioCleanCapture(t *testing.T) {
	s, f := newTestSession(7)
	s.Start()

	// 200 units apart, mouse idle, cat at base speed, cheese out of reach.
	s.World.Mouse = Vec2{X: 400, Y: 400}
	s.World.Cat = Vec2{X: 400, Y: 200}
	s.World.Cheese = Vec2{X: 700, Y: 700}

	deadline := int(math.Ceil(200.0 / CatBaseSpeed))
	for n := 1; n <= deadline && s.Phase == PhaseRunning; n++ {
		tickAt(s, f, n)
	}

	require.Equal(t, PhaseGameOver, s.Phase, "no capture within %d ticks", deadline)
	assert.Zero(t, s.World.CheeseEaten)
	want := int(math.Floor(ScoreRate * float64(s.Ticks)))
	assert.Equal(t, want, s.World.DisplayScore())
}

func TestScenarioPickupThenCapture(t *testing.T) {
	s, f := newTestSession(7)
	var final RunSummary
	s.OnRunEnd = func(r RunSummary) { final = r }
	s.Start()
	s.World.Cheese = Vec2{X: 700, Y: 60} // away from the idle mouse

	for n := 1; n <= 40; n++ {
		// Hold the cat in its corner so capture can't happen early; its
		// speed still ramps, which the scenario tolerates.
		s.World.Cat = Vec2{X: 60, Y: 60}
		if n == 10 {
			s.World.Cheese = s.World.Mouse
		}
		if n == 40 {
			s.World.Cat = s.World.Mouse
		}
		tickAt(s, f, n)
		if n == 10 {
			require.Equal(t, 1, s.World.CheeseEaten, "pickup must land on tick 10")
			s.World.Cheese = Vec2{X: 700, Y: 60} // park the respawned cheese
		}
	}

	require.Equal(t, PhaseGameOver, s.Phase)
	require.Equal(t, 40, s.Ticks)
	want := int(math.Floor(ScoreRate*40)) + int(CheeseBonus)
	assert.Equal(t, want, s.World.DisplayScore())
	assert.Equal(t, want, final.Score)
	assert.Equal(t, 1, final.Cheese)
	assert.Equal(t, CauseCapture, final.Cause)
}

func TestScenarioSuspendDuringRun(t *testing.T) {
	s, f := newTestSession(7)
	var hs Hiscore
	s.OnRunEnd = func(r RunSummary) { hs.Observe(r.Score) }
	s.Start()
	for n := 1; n <= 80; n++ {
		s.World.Cat = Vec2{X: 60, Y: 60}
		tickAt(s, f, n)
	}
	atSuspend := s.World.DisplayScore()

	s.Suspend()

	require.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, atSuspend, hs.Best(), "best must use the score at the instant of suspension")
	assert.False(t, f.pending)

	// Even a misdelivered tick afterwards must not advance anything.
	world := s.World
	s.Tick(1000.0)
	assert.Equal(t, world, s.World)

	// Suspend outside Running is a no-op.
	best := hs.Best()
	s.Suspend()
	assert.Equal(t, best, hs.Best())
	assert.Equal(t, PhaseGameOver, s.Phase)
}

func TestBestScoreAcrossRuns(t *testing.T) {
	s, f := newTestSession(7)
	var hs Hiscore
	s.OnRunEnd = func(r RunSummary) { hs.Observe(r.Score) }

	endAfter := func(ticks int) int {
		s.Start()
		for n := 1; n <= ticks; n++ {
			s.World.Cat = Vec2{X: 60, Y: 60}
			s.World.Cheese = Vec2{X: 700, Y: 60}
			if n == ticks {
				s.World.Cat = s.World.Mouse
			}
			tickAt(s, f, n)
		}
		return s.World.DisplayScore()
	}

	first := endAfter(100)
	require.Equal(t, first, hs.Best())

	endAfter(10) // shorter run must not lower the best
	assert.Equal(t, first, hs.Best())

	third := endAfter(300)
	require.Greater(t, third, first)
	assert.Equal(t, third, hs.Best())

	// An unfinished run leaves the best untouched.
	s.Start()
	s.World.Cat = Vec2{X: 60, Y: 60}
	tickAt(s, f, 1)
	assert.Equal(t, third, hs.Best())
}

func TestSessionEventsFire(t *testing.T) {
	f := &fakeScheduler{}
	bus := NewEventBus()
	s := NewSession(f, bus, 7)

	counts := map[EventType]int{}
	for _, et := range []EventType{EventRunStart, EventPickup, EventCapture, EventSuspended} {
		et := et
		bus.Subscribe(et, func(Event) { counts[et]++ })
	}

	s.Start()
	s.World.Cat = Vec2{X: 60, Y: 60}
	s.World.Cheese = s.World.Mouse
	tickAt(s, f, 1)
	s.World.Cat = s.World.Mouse
	tickAt(s, f, 2)

	s.Start()
	s.Suspend()

	assert.Equal(t, 2, counts[EventRunStart])
	assert.Equal(t, 1, counts[EventPickup])
	assert.Equal(t, 1, counts[EventCapture])
	assert.Equal(t, 1, counts[EventSuspended])
}

func TestSessionWithoutSchedulerStillSimulates(t *testing.T) {
	s := NewSession(nil, nil, 7)
	s.Start()
	s.World.Cheese = Vec2{X: 700, Y: 60}
	s.Tick(RefFrameSeconds)
	assert.Equal(t, 1, s.Ticks)
	assert.InDelta(t, ScoreRate, s.World.Score, 1e-9)
}
