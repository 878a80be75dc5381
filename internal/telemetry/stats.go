package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate statistics over a session's runs.
type Summary struct {
	Runs int

	ScoreMean float64
	ScoreStd  float64
	ScoreMax  float64

	DurMean float64
	DurMax  float64

	CheeseTotal int
	Best        int
}

// Summarize folds run records into a Summary. StdDev needs two samples;
// with fewer it reports zero rather than NaN.
func Summarize(records []RunRecord) Summary {
	s := Summary{Runs: len(records)}
	if len(records) == 0 {
		return s
	}

	scores := make([]float64, len(records))
	durs := make([]float64, len(records))
	for i, r := range records {
		scores[i] = float64(r.Score)
		durs[i] = r.DurationSec
		s.CheeseTotal += r.Cheese
		if r.Best > s.Best {
			s.Best = r.Best
		}
	}

	s.ScoreMean = stat.Mean(scores, nil)
	s.ScoreMax = floats.Max(scores)
	s.DurMean = stat.Mean(durs, nil)
	s.DurMax = floats.Max(durs)
	if len(records) > 1 {
		s.ScoreStd = stat.StdDev(scores, nil)
	}
	return s
}
