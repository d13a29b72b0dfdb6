// Command crafter runs random-action rollouts, each against a freshly
// constructed Env, and prints a per-episode summary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/talgya/crafter/internal/data"
	"github.com/talgya/crafter/internal/diagnostics"
	"github.com/talgya/crafter/internal/env"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	seed := flag.Int64("seed", 42, "base world seed")
	length := flag.Int("length", 10000, "episode step cap (0 = unbounded)")
	areaW := flag.Int("area-w", 64, "world grid width")
	areaH := flag.Int("area-h", 64, "world grid height")
	viewW := flag.Int("view-w", 9, "local view width, in tiles")
	viewH := flag.Int("view-h", 7, "local view height, in tiles")
	sizePx := flag.Int("size", 63, "observation width in pixels (must divide evenly by view-w)")
	episodes := flag.Int("episodes", 1, "number of episodes to run")
	dbPath := flag.String("db", "", "optional sqlite path for run diagnostics")
	flag.Parse()

	consts := data.MustLoad()
	cfg := env.Config{
		Area:     [2]int{*areaW, *areaH},
		View:     [2]int{*viewW, *viewH},
		Size:     [2]int{*sizePx, *sizePx * (*viewH) / (*viewW)},
		Length:   *length,
		Seed:     *seed,
		Textures: placeholderTextures(consts),
	}

	var store *diagnostics.Store
	if *dbPath != "" {
		var err error
		store, err = diagnostics.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open diagnostics store", "error", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	slog.Info("crafter starting",
		"seed", cfg.Seed,
		"area", cfg.Area,
		"view", cfg.View,
		"size", cfg.Size,
		"episodes", *episodes,
	)

	for i := 0; i < *episodes; i++ {
		runEpisode(cfg, store)
	}
}

func runEpisode(cfg env.Config, store *diagnostics.Store) {
	e, err := env.New(cfg)
	if err != nil {
		slog.Error("failed to construct env", "error", err)
		os.Exit(1)
	}
	e.Reset()

	if store != nil {
		if err := store.BeginRun(e.RunID.String(), cfg.Seed, 1); err != nil {
			slog.Warn("diagnostics: begin run failed", "error", err)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	n := e.ActionSpaceN()

	var totalReward float64
	steps := 0
	var lastInfo env.Info
	recorded := make(map[string]bool)

	for {
		action := rng.Intn(n)
		_, reward, done, info := e.Step(action)
		totalReward += reward
		steps++
		lastInfo = info

		if store != nil {
			for name, count := range info.Achievements {
				if count > 0 && !recorded[name] {
					recorded[name] = true
					_ = store.RecordUnlock(e.RunID.String(), steps, name, count)
				}
			}
		}

		if done {
			break
		}
	}

	if store != nil {
		if err := store.FinishRun(e.RunID.String(), steps, lastInfo.Health, totalReward, lastInfo.Discount); err != nil {
			slog.Warn("diagnostics: finish run failed", "error", err)
		}
	}

	unlocked := 0
	for _, count := range lastInfo.Achievements {
		if count > 0 {
			unlocked++
		}
	}

	slog.Info("episode complete",
		"run_id", e.RunID.String(),
		"steps", humanize.Comma(int64(steps)),
		"reward", fmt.Sprintf("%.2f", totalReward),
		"health", lastInfo.Health,
		"achievements_unlocked", unlocked,
	)
}
