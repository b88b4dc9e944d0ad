// Command firerisk synthesizes a power line scenario, runs the external fire
// spread simulator over it, and reports asset risk.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/talgya/emberline/internal/landscape"
	"github.com/talgya/emberline/internal/persistence"
	"github.com/talgya/emberline/internal/pipeline"
	"github.com/talgya/emberline/internal/simulator"
)

// envConfig is the environment half of the configuration: where the external
// pieces live on this machine. Scenario shape is all flags.
type envConfig struct {
	Python      string `env:"EMBERLINE_SIM_PYTHON" envDefault:"python"`
	Module      string `env:"EMBERLINE_SIM_MODULE" envDefault:"cell2fire.main"`
	SimDir      string `env:"EMBERLINE_SIM_DIR"`
	TemplateDir string `env:"EMBERLINE_TEMPLATE_DIR" envDefault:"data/Sub40x40"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		slog.Error("parse environment", "error", err)
		os.Exit(1)
	}

	defaults := pipeline.DefaultConfig()
	rows := flag.Int("rows", defaults.Rows, "landscape rows")
	cols := flag.Int("cols", defaults.Cols, "landscape cols")
	nsims := flag.Int("nsims", defaults.Replicates, "fire replicates per run")
	simYears := flag.Int("sim-years", defaults.SimYears, "simulated seasons per replicate")
	seed := flag.Int("seed", defaults.Seed, "simulator RNG seed")
	scenarioDir := flag.String("scenario", defaults.ScenarioDir, "directory for synthesized scenario inputs")
	outputDir := flag.String("out", defaults.OutputDir, "simulator output directory (cleared each run)")
	templateDir := flag.String("templates", ec.TemplateDir, "directory holding the fuel lookup table and weather stream")
	profileName := flag.String("profile", "flat", "terrain profile: flat or rolling")
	dbPath := flag.String("db", "", "archive completed runs to this SQLite database")
	flag.Parse()

	slog.Info("Emberline — power line fire risk harness")

	// ── Terrain profile ───────────────────────────────────────────────
	var profile landscape.Profile
	switch *profileName {
	case "flat":
		profile = landscape.Flat()
	case "rolling":
		profile = landscape.Rolling(int64(*seed))
	default:
		slog.Error("unknown terrain profile", "profile", *profileName)
		os.Exit(1)
	}

	// ── Pipeline ──────────────────────────────────────────────────────
	// The simulator may run from its own checkout (EMBERLINE_SIM_DIR), so
	// every path handed to it has to be absolute.
	cfg := pipeline.Config{
		Rows:        *rows,
		Cols:        *cols,
		Replicates:  *nsims,
		SimYears:    *simYears,
		Seed:        *seed,
		TemplateDir: mustAbs(*templateDir),
		ScenarioDir: mustAbs(*scenarioDir),
		OutputDir:   mustAbs(*outputDir),
		Profile:     profile,
	}

	runner := simulator.New(ec.Python, ec.Module)
	runner.Dir = ec.SimDir

	p, err := pipeline.New(cfg, runner)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// ── Archive (optional) ────────────────────────────────────────────
	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open archive database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		p.Archive = db
		slog.Info("archive opened", "path", *dbPath)
	}

	// ── Run ───────────────────────────────────────────────────────────
	res, err := p.Run(context.Background())
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	pipeline.FprintReport(os.Stdout, res)
}

// mustAbs resolves path against the current directory, exiting on failure.
func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		slog.Error("resolve path", "path", path, "error", err)
		os.Exit(1)
	}
	return abs
}
