package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// LoadBurnGrid parses one engine burn grid: comma-separated integer cell
// states, one row per line. Ragged rows fail the parse, a burn grid is only
// meaningful as a full rectangle.
func LoadBurnGrid(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open burn grid: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse burn grid %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("burn grid %s is empty", path)
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, record := range records {
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("burn grid %s row %d: %w", path, i, err)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

// Loader returns a replicate-indexed grid source over one engine run: it
// resolves the terminal snapshot for the requested replicate and parses it.
func Loader(outputDir string) func(replicate int) (*mat.Dense, error) {
	return func(replicate int) (*mat.Dense, error) {
		path, err := TerminalGrid(outputDir, replicate)
		if err != nil {
			return nil, err
		}
		return LoadBurnGrid(path)
	}
}
