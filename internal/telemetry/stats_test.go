package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		records []RunRecord
		want    Summary
	}{
		{
			name:    "empty",
			records: nil,
			want:    Summary{},
		},
		{
			name: "single run has zero stddev",
			records: []RunRecord{
				{Score: 120, DurationSec: 4.0, Cheese: 1, Best: 120},
			},
			want: Summary{
				Runs: 1, ScoreMean: 120, ScoreStd: 0, ScoreMax: 120,
				DurMean: 4.0, DurMax: 4.0, CheeseTotal: 1, Best: 120,
			},
		},
		{
			name: "several runs",
			records: []RunRecord{
				{Score: 100, DurationSec: 2.0, Cheese: 0, Best: 100},
				{Score: 200, DurationSec: 6.0, Cheese: 1, Best: 200},
				{Score: 300, DurationSec: 4.0, Cheese: 2, Best: 300},
			},
			want: Summary{
				Runs: 3, ScoreMean: 200, ScoreStd: 100, ScoreMax: 300,
				DurMean: 4.0, DurMax: 6.0, CheeseTotal: 3, Best: 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			if got.Runs != tt.want.Runs {
				t.Errorf("Runs = %d, want %d", got.Runs, tt.want.Runs)
			}
			if math.Abs(got.ScoreMean-tt.want.ScoreMean) > 0.001 {
				t.Errorf("ScoreMean = %v, want %v", got.ScoreMean, tt.want.ScoreMean)
			}
			if math.Abs(got.ScoreStd-tt.want.ScoreStd) > 0.001 {
				t.Errorf("ScoreStd = %v, want %v", got.ScoreStd, tt.want.ScoreStd)
			}
			if got.ScoreMax != tt.want.ScoreMax {
				t.Errorf("ScoreMax = %v, want %v", got.ScoreMax, tt.want.ScoreMax)
			}
			if math.Abs(got.DurMean-tt.want.DurMean) > 0.001 {
				t.Errorf("DurMean = %v, want %v", got.DurMean, tt.want.DurMean)
			}
			if got.DurMax != tt.want.DurMax {
				t.Errorf("DurMax = %v, want %v", got.DurMax, tt.want.DurMax)
			}
			if got.CheeseTotal != tt.want.CheeseTotal {
				t.Errorf("CheeseTotal = %d, want %d", got.CheeseTotal, tt.want.CheeseTotal)
			}
			if got.Best != tt.want.Best {
				t.Errorf("Best = %d, want %d", got.Best, tt.want.Best)
			}
		})
	}
}

func TestRecorderNumbersRunsAndStampsSeed(t *testing.T) {
	r := NewRecorder(77, false)
	r.Record(RunRecord{Score: 10})
	r.Record(RunRecord{Score: 20})

	recs := r.Records()
	if len(recs) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(recs))
	}
	for i, rec := range recs {
		if rec.Run != i+1 {
			t.Errorf("record %d: Run = %d, want %d", i, rec.Run, i+1)
		}
		if rec.Seed != 77 {
			t.Errorf("record %d: Seed = %d, want 77", i, rec.Seed)
		}
	}
	if got := r.Summary().Runs; got != 2 {
		t.Errorf("Summary().Runs = %d, want 2", got)
	}
}
