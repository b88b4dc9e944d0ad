// Package simulator invokes the external fire spread engine over a staged
// scenario directory. The engine is treated as an opaque executable: this
// package owns the command line contract and nothing about spread physics.
package simulator

import (
	"context"
	"fmt"
	"strconv"
)

// Options is the per-run command line contract with the engine.
type Options struct {
	ScenarioDir    string  // --input-instance-folder
	OutputDir      string  // --output-folder, cleared before each run
	Replicates     int     // --nsims
	SimYears       int     // --sim-years
	Seed           int     // --seed
	Weather        string  // --weather selection mode
	WeatherSamples int     // --nweathers
	FirePeriodLen  float64 // --Fire-Period-Length, hours
	ROSCV          float64 // --ROS-CV, rate-of-spread coefficient of variation
	IgnitionRadius int     // --IgnitionRad, cells around each ignition point
	ROSThreshold   float64 // --ROS-Threshold, m/min
	HFIThreshold   float64 // --HFI-Threshold, kW/m
	ValueFile      string  // --customValue, per-cell asset values
}

// DefaultOptions returns the baseline run settings: single-season fires,
// randomly sampled weather, deterministic seed, no spread dampening.
func DefaultOptions() Options {
	return Options{
		Replicates:     20,
		SimYears:       1,
		Seed:           123,
		Weather:        "random",
		WeatherSamples: 100,
		FirePeriodLen:  1.0,
		ROSCV:          0.0,
		IgnitionRadius: 0,
		ROSThreshold:   0,
		HFIThreshold:   0,
	}
}

func (o Options) validate() error {
	if o.ScenarioDir == "" {
		return fmt.Errorf("scenario dir not set")
	}
	if o.OutputDir == "" {
		return fmt.Errorf("output dir not set")
	}
	if o.ValueFile == "" {
		return fmt.Errorf("value file not set")
	}
	if o.Replicates < 1 {
		return fmt.Errorf("replicates must be at least 1, got %d", o.Replicates)
	}
	return nil
}

// args renders the full engine argument list. Order is part of the contract:
// the engine's parser is positional about some flag groups, so arguments are
// emitted exactly as the engine's own regression inputs order them.
func (o Options) args() []string {
	return []string{
		"--input-instance-folder", o.ScenarioDir,
		"--output-folder", o.OutputDir,
		"--sim-years", strconv.Itoa(o.SimYears),
		"--nsims", strconv.Itoa(o.Replicates),
		"--finalGrid",
		"--weather", o.Weather,
		"--nweathers", strconv.Itoa(o.WeatherSamples),
		"--Fire-Period-Length", strconv.FormatFloat(o.FirePeriodLen, 'f', 1, 64),
		"--ROS-CV", strconv.FormatFloat(o.ROSCV, 'f', 1, 64),
		"--seed", strconv.Itoa(o.Seed),
		"--IgnitionRad", strconv.Itoa(o.IgnitionRadius),
		"--grids",
		"--output-messages",
		"--stats",
		"--ROS-Threshold", strconv.FormatFloat(o.ROSThreshold, 'f', -1, 64),
		"--HFI-Threshold", strconv.FormatFloat(o.HFIThreshold, 'f', -1, 64),
		"--customValue", o.ValueFile,
	}
}

// Runner runs the spread engine for a prepared scenario. Implementations
// block until every replicate has finished or the run has failed.
type Runner interface {
	Run(ctx context.Context, opts Options) error
}
