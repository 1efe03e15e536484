// Command simrun is a reference host for the decision core: it builds a
// seeded demo world, runs the tick loop, and archives the telemetry to
// SQLite for later inspection.
package main

import (
	"flag"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/grandstrat/internal/config"
	"github.com/freeeve/grandstrat/internal/logger"
	"github.com/freeeve/grandstrat/internal/persistence"
	"github.com/freeeve/grandstrat/pkg/strat"
)

func main() {
	cfg := config.Load()

	var (
		seed      uint64
		ticks     int
		countries int
		archive   string
		dryRun    bool
		debug     bool
	)
	flag.Uint64Var(&seed, "seed", cfg.Seed, "World generation seed")
	flag.IntVar(&ticks, "ticks", cfg.Ticks, "Number of ticks to run")
	flag.IntVar(&countries, "countries", cfg.Countries, "Number of countries in the demo world")
	flag.StringVar(&archive, "archive", cfg.ArchivePath, "SQLite archive path")
	flag.BoolVar(&dryRun, "dry-run", false, "Skip archive writes")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	logger.Init()
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if countries < 1 {
		log.Fatal().Int("countries", countries).Msg("Need at least one country")
	}

	runID := uuid.NewString()
	runLog := log.With().Str("runId", runID).Logger()

	engine := strat.New(seed)
	engine.SetLogger(runLog)
	if err := buildDemoWorld(engine, seed, countries); err != nil {
		runLog.Fatal().Err(err).Msg("World generation failed")
	}
	runLog.Info().
		Uint64("seed", seed).
		Int("countries", countries).
		Int("ticks", ticks).
		Msg("World generated")

	for i := 0; i < ticks; i++ {
		engine.Tick()
		if (i+1)%50 == 0 {
			runLog.Debug().Int("tick", i+1).Msg("Progress")
		}
	}

	logs := engine.Logs()
	runLog.Info().Int("decisions", len(logs)).Msg("Run complete")
	printHistogram(runLog, logs)

	if dryRun {
		return
	}

	db, err := persistence.Open(archive)
	if err != nil {
		runLog.Fatal().Err(err).Str("archive", archive).Msg("Archive open failed")
	}
	defer db.Close()

	if err := db.SaveRun(runID, seed, countries, ticks); err != nil {
		runLog.Fatal().Err(err).Msg("Archive run metadata failed")
	}
	if err := db.SaveDecisions(runID, logs); err != nil {
		runLog.Fatal().Err(err).Msg("Archive decisions failed")
	}
	runLog.Info().Str("archive", archive).Msg("Telemetry archived")
}

// buildDemoWorld wires countries into a ring with a few random chords, with
// seeded hostilities so the same seed always yields the same world.
func buildDemoWorld(engine *strat.Engine, seed uint64, n int) error {
	rng := rand.New(rand.NewSource(int64(seed)))

	for id := uint32(1); id <= uint32(n); id++ {
		if err := engine.AddCountry(id); err != nil {
			return err
		}
	}
	if n == 1 {
		return nil
	}

	addPair := func(a, b uint32, dist int) error {
		if err := engine.AddEdge(a, b, dist, float32(rng.Float64())); err != nil {
			return err
		}
		return engine.AddEdge(b, a, dist, float32(rng.Float64()))
	}

	// Ring of near borders.
	for id := uint32(1); id <= uint32(n); id++ {
		next := id%uint32(n) + 1
		if n == 2 && id == 2 {
			break // two countries share the single border already added
		}
		if err := addPair(id, next, 1); err != nil {
			return err
		}
	}

	// A few longer chords for texture.
	for i := 0; i < n/3; i++ {
		a := uint32(rng.Intn(n) + 1)
		b := uint32(rng.Intn(n) + 1)
		if a == b {
			continue
		}
		if err := addPair(a, b, 2+rng.Intn(4)); err != nil {
			// Duplicate chords are fine to skip.
			continue
		}
	}

	// Border tiles along the ring edges.
	tile := uint32(1)
	for id := uint32(1); id <= uint32(n); id++ {
		next := id%uint32(n) + 1
		if err := engine.AddBorderTile(id, tile, next); err != nil {
			return err
		}
		tile++
	}

	return nil
}

func printHistogram(runLog zerolog.Logger, logs []strat.DecisionLog) {
	counts := make(map[string]int)
	for _, entry := range logs {
		counts[entry.Chosen.Kind.String()]++
	}
	ev := runLog.Info()
	for kind, n := range counts {
		ev = ev.Int(kind, n)
	}
	ev.Msg("Chosen action histogram")
}
