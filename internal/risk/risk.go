// Package risk folds replicate burn grids into loss statistics for a single
// asset corridor. It is pure computation: grids arrive through a GridSource
// and nothing here touches the filesystem.
package risk

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Burned is the cell state the engine writes for a cell the fire reached.
// The engine emits other states too (available, non-burnable); only equality
// with this one counts as a loss.
const Burned = 1.0

// GridSource yields the terminal burn grid for a replicate, indexed from 1.
type GridSource func(replicate int) (*mat.Dense, error)

// Report is the aggregate risk picture over one replicate batch.
type Report struct {
	Replicates int       // batch size
	Losses     []float64 // per-replicate corridor loss, index = replicate-1
	Hits       []bool    // per-replicate hit flag, parallel to Losses
	HitCount   int       // replicates with at least one burned corridor cell
	HitRate    float64   // HitCount / Replicates
	MeanLoss   float64   // mean over all replicates, misses count as zero
	MaxLoss    float64   // worst replicate
}

// Evaluate folds nsims replicate grids into a Report. Replicates are visited
// in order, 1 through nsims, and every grid must match the value map's shape;
// a source error or shape mismatch aborts the whole evaluation, a partial
// report over an undefined subset of replicates is worse than no report.
func Evaluate(values *mat.Dense, assetCol, nsims int, src GridSource) (Report, error) {
	rows, cols := values.Dims()
	if assetCol < 0 || assetCol >= cols {
		return Report{}, fmt.Errorf("asset column %d out of range for %d columns", assetCol, cols)
	}
	if nsims < 1 {
		return Report{}, fmt.Errorf("replicate count must be at least 1, got %d", nsims)
	}

	assetValues := mat.Col(nil, assetCol, values)

	report := Report{
		Replicates: nsims,
		Losses:     make([]float64, nsims),
		Hits:       make([]bool, nsims),
	}
	for replicate := 1; replicate <= nsims; replicate++ {
		grid, err := src(replicate)
		if err != nil {
			return Report{}, err
		}
		gr, gc := grid.Dims()
		if gr != rows || gc != cols {
			return Report{}, fmt.Errorf("replicate %d: burn grid is %dx%d, value map is %dx%d",
				replicate, gr, gc, rows, cols)
		}

		loss, hit := columnOutcome(grid, assetCol, assetValues)
		report.Losses[replicate-1] = loss
		report.Hits[replicate-1] = hit
		if hit {
			report.HitCount++
		}
	}

	report.HitRate = float64(report.HitCount) / float64(nsims)
	report.MeanLoss = stat.Mean(report.Losses, nil)
	report.MaxLoss = floats.Max(report.Losses)
	return report, nil
}

// columnOutcome scans the corridor column and returns the summed value of its
// burned cells plus whether any cell burned at all. The hit flag does not
// follow from the loss: a burned zero-value cell is a hit with no loss.
func columnOutcome(grid *mat.Dense, col int, assetValues []float64) (loss float64, hit bool) {
	for row, value := range assetValues {
		if grid.At(row, col) == Burned {
			loss += value
			hit = true
		}
	}
	return loss, hit
}
