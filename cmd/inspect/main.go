// Command inspect reads a telemetry archive and prints run summaries.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/grandstrat/internal/config"
	"github.com/freeeve/grandstrat/internal/persistence"
)

func main() {
	cfg := config.Load()

	var (
		archive string
		runID   string
	)
	flag.StringVar(&archive, "archive", cfg.ArchivePath, "SQLite archive path")
	flag.StringVar(&runID, "run", "", "Run ID to summarize (default: list runs)")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	db, err := persistence.Open(archive)
	if err != nil {
		log.Fatal().Err(err).Str("archive", archive).Msg("Archive open failed")
	}
	defer db.Close()

	if runID == "" {
		listRuns(db)
		return
	}
	summarizeRun(db, runID)
}

func listRuns(db *persistence.DB) {
	runs, err := db.Runs()
	if err != nil {
		log.Fatal().Err(err).Msg("List runs failed")
	}
	if len(runs) == 0 {
		fmt.Println("no runs archived")
		return
	}
	for _, r := range runs {
		fmt.Printf("%s  seed=%d  countries=%d  ticks=%d  %s\n",
			r.ID, r.Seed, r.Countries, r.Ticks, r.CreatedAt)
	}
}

func summarizeRun(db *persistence.DB, runID string) {
	n, err := db.DecisionCount(runID)
	if err != nil {
		log.Fatal().Err(err).Str("run", runID).Msg("Decision count failed")
	}
	counts, err := db.ActionCounts(runID)
	if err != nil {
		log.Fatal().Err(err).Str("run", runID).Msg("Action counts failed")
	}

	fmt.Printf("run %s: %d decisions\n", runID, n)
	for _, c := range counts {
		share := 0.0
		if n > 0 {
			share = 100 * float64(c.Count) / float64(n)
		}
		fmt.Printf("  %-24s %6d  (%.1f%%)\n", c.Action, c.Count, share)
	}
}
