// Package pipeline runs one complete risk scenario end to end: synthesize the
// landscape, stage template inputs, build the asset value map, invoke the
// spread simulator, and fold its outputs into a risk report. Every stage
// completes before the next starts; any stage error aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/emberline/internal/assets"
	"github.com/talgya/emberline/internal/landscape"
	"github.com/talgya/emberline/internal/persistence"
	"github.com/talgya/emberline/internal/results"
	"github.com/talgya/emberline/internal/risk"
	"github.com/talgya/emberline/internal/simulator"
)

// Config holds everything a run needs besides the simulator binary itself.
type Config struct {
	Rows       int // landscape height in cells
	Cols       int // landscape width in cells
	Replicates int // fire replicates per run
	SimYears   int // simulated seasons per replicate
	Seed       int // simulator RNG seed

	TemplateDir string // source of the fuel lookup table and weather stream
	ScenarioDir string // where synthesized inputs are written
	OutputDir   string // simulator output root, cleared each run
	ValueFile   string // value map path, derived from ScenarioDir when empty

	Profile landscape.Profile // terrain profile, Flat when nil
}

// DefaultConfig mirrors the baseline power line scenario: a 100x100 single
// fuel landscape, 20 replicates, one season each.
func DefaultConfig() Config {
	return Config{
		Rows:        100,
		Cols:        100,
		Replicates:  20,
		SimYears:    1,
		Seed:        123,
		TemplateDir: "data/Sub40x40",
		ScenarioDir: "data/PowerLine100x100",
		OutputDir:   "outputs/PowerLine100x100",
	}
}

func (c Config) validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", c.Rows)
	}
	if c.Cols < 2 {
		return fmt.Errorf("cols must be at least 2 to place an asset column, got %d", c.Cols)
	}
	if c.Replicates < 1 {
		return fmt.Errorf("replicates must be at least 1, got %d", c.Replicates)
	}
	if c.SimYears < 1 {
		return fmt.Errorf("sim years must be at least 1, got %d", c.SimYears)
	}
	if c.TemplateDir == "" || c.ScenarioDir == "" || c.OutputDir == "" {
		return fmt.Errorf("template, scenario, and output dirs must all be set")
	}
	return nil
}

func (c Config) simOptions() simulator.Options {
	opts := simulator.DefaultOptions()
	opts.ScenarioDir = c.ScenarioDir
	opts.OutputDir = c.OutputDir
	opts.Replicates = c.Replicates
	opts.SimYears = c.SimYears
	opts.Seed = c.Seed
	opts.ValueFile = c.ValueFile
	return opts
}

// Pipeline wires the run stages together around one simulator Runner.
type Pipeline struct {
	Config  Config
	Runner  simulator.Runner
	Archive *persistence.DB // optional, nil disables archival
}

// New validates the config, fills derived defaults, and returns a Pipeline.
func New(cfg Config, runner simulator.Runner) (*Pipeline, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("pipeline config: %w", err)
	}
	if runner == nil {
		return nil, fmt.Errorf("pipeline needs a simulator runner")
	}
	if cfg.Profile == nil {
		cfg.Profile = landscape.Flat()
	}
	if cfg.ValueFile == "" {
		cfg.ValueFile = filepath.Join(cfg.ScenarioDir,
			fmt.Sprintf("values%dx%d.csv", cfg.Rows, cfg.Cols))
	}
	return &Pipeline{Config: cfg, Runner: runner}, nil
}

// Result is everything a finished run produced.
type Result struct {
	RunID  string
	Grid   landscape.Grid
	Asset  assets.Spec
	Report risk.Report
}

// Run executes the scenario start to finish and returns the risk report.
// Stages run strictly in sequence; the simulator call blocks until the whole
// replicate batch has finished.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	cfg := p.Config
	runID := uuid.NewString()
	started := time.Now().UTC()

	g, err := landscape.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return Result{}, err
	}

	slog.Info("run starting",
		"run", runID,
		"grid", g.String(),
		"replicates", cfg.Replicates,
		"seed", cfg.Seed,
		"profile", cfg.Profile.Name(),
	)
	if err := landscape.Synthesize(cfg.ScenarioDir, g, cfg.Profile); err != nil {
		return Result{}, fmt.Errorf("synthesize landscape: %w", err)
	}
	if err := landscape.Stage(cfg.TemplateDir, cfg.ScenarioDir); err != nil {
		return Result{}, fmt.Errorf("stage templates: %w", err)
	}

	asset := assets.PowerLine(g)
	values := assets.BuildValueMap(g, asset)
	if err := assets.WriteValueMap(cfg.ValueFile, values); err != nil {
		return Result{}, fmt.Errorf("write value map: %w", err)
	}
	slog.Info("value map written", "path", cfg.ValueFile, "asset_column", asset.Column)

	if err := p.Runner.Run(ctx, cfg.simOptions()); err != nil {
		return Result{}, err
	}

	report, err := risk.Evaluate(values, asset.Column, cfg.Replicates, results.Loader(cfg.OutputDir))
	if err != nil {
		return Result{}, fmt.Errorf("evaluate risk: %w", err)
	}

	elapsed := time.Since(started)
	slog.Info("run complete",
		"run", runID,
		"hit_count", report.HitCount,
		"hit_rate", fmt.Sprintf("%.3f", report.HitRate),
		"mean_loss", fmt.Sprintf("%.2f", report.MeanLoss),
		"max_loss", fmt.Sprintf("%.2f", report.MaxLoss),
		"elapsed", elapsed.Round(time.Millisecond),
	)

	if p.Archive != nil {
		rec := persistence.RunRecord{
			ID:         runID,
			StartedAt:  started.Format(time.RFC3339),
			ElapsedMS:  elapsed.Milliseconds(),
			Rows:       cfg.Rows,
			Cols:       cfg.Cols,
			Replicates: cfg.Replicates,
			Seed:       cfg.Seed,
			AssetCol:   asset.Column,
			HitCount:   report.HitCount,
			HitRate:    report.HitRate,
			MeanLoss:   report.MeanLoss,
			MaxLoss:    report.MaxLoss,
		}
		if err := p.Archive.SaveRun(rec, report.Losses, report.Hits); err != nil {
			return Result{}, fmt.Errorf("archive run: %w", err)
		}
	}

	return Result{RunID: runID, Grid: g, Asset: asset, Report: report}, nil
}
