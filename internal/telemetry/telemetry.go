// Package telemetry records finished runs and exports the session history.
package telemetry

import "log/slog"

// RunRecord is one finished run, shaped for CSV export.
type RunRecord struct {
	Run         int     `csv:"run"`
	Seed        uint64  `csv:"seed"`
	Cause       string  `csv:"cause"`
	Ticks       int     `csv:"ticks"`
	DurationSec float64 `csv:"duration_sec"`
	Score       int     `csv:"score"`
	Cheese      int     `csv:"cheese"`
	Best        int     `csv:"best"` // best score as of this run's end
}

// Recorder accumulates run records for the lifetime of the process.
type Recorder struct {
	seed     uint64
	logStats bool
	records  []RunRecord
}

func NewRecorder(seed uint64, logStats bool) *Recorder {
	return &Recorder{seed: seed, logStats: logStats}
}

// Record appends a finished run. The run index and seed are filled in here
// so callers only describe the run itself.
func (r *Recorder) Record(rec RunRecord) {
	rec.Run = len(r.records) + 1
	rec.Seed = r.seed
	r.records = append(r.records, rec)

	if r.logStats {
		slog.Info("run recorded",
			"run", rec.Run,
			"cause", rec.Cause,
			"ticks", rec.Ticks,
			"duration_sec", rec.DurationSec,
			"score", rec.Score,
			"cheese", rec.Cheese,
			"best", rec.Best,
		)
	}
}

func (r *Recorder) Records() []RunRecord {
	return r.records
}

// Summary aggregates everything recorded so far.
func (r *Recorder) Summary() Summary {
	return Summarize(r.records)
}
