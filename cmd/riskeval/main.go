// Command riskeval recomputes the risk report for an existing simulator
// output tree without rerunning the simulator. Useful after tweaking nothing
// but the question being asked of the same burn grids.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/talgya/emberline/internal/assets"
	"github.com/talgya/emberline/internal/landscape"
	"github.com/talgya/emberline/internal/pipeline"
	"github.com/talgya/emberline/internal/results"
	"github.com/talgya/emberline/internal/risk"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	valuesPath := flag.String("values", "", "value map file from the original run (required)")
	outputDir := flag.String("out", "", "simulator output directory to evaluate (required)")
	nsims := flag.Int("nsims", 0, "replicates to evaluate, 0 = detect from output tree")
	assetCol := flag.Int("col", -1, "asset column index, -1 = centre-left column of the value map")
	flag.Parse()

	if *valuesPath == "" || *outputDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	values, err := assets.ReadValueMap(*valuesPath)
	if err != nil {
		slog.Error("failed to read value map", "error", err)
		os.Exit(1)
	}
	rows, cols := values.Dims()

	g, err := landscape.New(rows, cols)
	if err != nil {
		slog.Error("invalid value map shape", "error", err)
		os.Exit(1)
	}

	col := *assetCol
	if col < 0 {
		col = assets.PowerLine(g).Column
	}

	n := *nsims
	if n == 0 {
		n, err = results.ReplicateCount(*outputDir)
		if err != nil {
			slog.Error("failed to detect replicate count", "error", err)
			os.Exit(1)
		}
		slog.Info("detected replicates", "count", n)
	}

	report, err := risk.Evaluate(values, col, n, results.Loader(*outputDir))
	if err != nil {
		slog.Error("evaluation failed", "error", err)
		os.Exit(1)
	}

	pipeline.FprintReport(os.Stdout, pipeline.Result{
		Grid:   g,
		Asset:  assets.Spec{Column: col},
		Report: report,
	})
}
