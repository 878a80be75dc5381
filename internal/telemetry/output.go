package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
)

// WriteRuns exports the run history as runs.csv under dir, creating the
// directory if needed. An empty dir disables the export; the returned path
// is empty in that case.
func WriteRuns(dir string, records []RunRecord) (string, error) {
	if dir == "" || len(records) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, "runs.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating runs.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		return "", fmt.Errorf("writing runs.csv: %w", err)
	}
	return path, nil
}

var (
	sumTitle = color.New(color.FgGreen, color.Bold)
	sumLabel = color.New(color.FgCyan)
	sumBest  = color.New(color.FgYellow, color.Bold)
)

// PrintSummary writes a colored end-of-session summary. Sessions with no
// finished runs print nothing.
func PrintSummary(w io.Writer, s Summary) {
	if s.Runs == 0 {
		return
	}
	sumTitle.Fprintln(w, "Session summary")
	sumLabel.Fprintf(w, "  runs:    %d\n", s.Runs)
	sumLabel.Fprintf(w, "  score:   mean %.1f  sd %.1f  max %.0f\n", s.ScoreMean, s.ScoreStd, s.ScoreMax)
	sumLabel.Fprintf(w, "  length:  mean %.1fs  max %.1fs\n", s.DurMean, s.DurMax)
	sumLabel.Fprintf(w, "  cheese:  %d\n", s.CheeseTotal)
	sumBest.Fprintf(w, "  best:    %d\n", s.Best)
}
