package game

// Hiscore tracks the best floored score across all runs in this process.
// It is fed by the session's run-end callback, never decreases, and is not
// persisted anywhere.
type Hiscore struct {
	best int
}

// Observe records a finished run's final score.
func (h *Hiscore) Observe(final int) {
	if final > h.best {
		h.best = final
	}
}

func (h *Hiscore) Best() int {
	return h.best
}
