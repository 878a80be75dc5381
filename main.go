package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"scurry/internal/config"
	"scurry/internal/game"
	"scurry/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = embedded defaults)")
	seedFlag := flag.Uint64("seed", 0, "RNG seed (0 = config value, then time-based)")
	headless := flag.Bool("headless", false, "Run without a window")
	runs := flag.Int("runs", 1, "Headless: number of back-to-back runs")
	maxTicks := flag.Int("max-ticks", 0, "Headless: suspend a run after N ticks (0 = default cap)")
	quiet := flag.Bool("quiet", false, "Log warnings and errors only")
	logStats := flag.Bool("log-stats", false, "Log every finished run via slog")
	writeConfig := flag.String("write-config", "", "Write the effective config to this path and exit")

	flag.Parse()

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config.MustInit(*configPath)
	cfg := config.Cfg()

	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", *writeConfig)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	slog.Info("starting", "seed", seed, "headless", *headless)

	// The shell owns the best score; the session reports each finished run
	// and the hiscore/telemetry take it from there.
	var hiscore game.Hiscore
	recorder := telemetry.NewRecorder(seed, *logStats)
	onRunEnd := func(sum game.RunSummary) {
		hiscore.Observe(sum.Score)
		recorder.Record(telemetry.RunRecord{
			Cause:       sum.Cause.String(),
			Ticks:       sum.Ticks,
			DurationSec: float64(sum.Ticks) * game.RefFrameSeconds,
			Score:       sum.Score,
			Cheese:      sum.Cheese,
			Best:        hiscore.Best(),
		})
	}

	if *headless {
		game.RunHeadless(game.HeadlessOptions{
			Seed:     seed,
			Runs:     *runs,
			MaxTicks: *maxTicks,
			OnRunEnd: onRunEnd,
		})
	} else {
		err := game.RunDesktop(game.DesktopOptions{
			Width:    cfg.Screen.Width,
			Height:   cfg.Screen.Height,
			Title:    cfg.Screen.Title,
			VSync:    cfg.Screen.VSync,
			Seed:     seed,
			Audio:    cfg.Audio.Enabled,
			Volume:   cfg.Audio.Volume,
			OnRunEnd: onRunEnd,
		})
		if err != nil {
			slog.Error("desktop shell failed", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Telemetry.Enabled {
		path, err := telemetry.WriteRuns(cfg.Telemetry.OutputDir, recorder.Records())
		switch {
		case err != nil:
			slog.Warn("run history export failed", "error", err)
		case path != "":
			slog.Info("run history written", "path", path)
		}
	}
	telemetry.PrintSummary(os.Stderr, recorder.Summary())
}
