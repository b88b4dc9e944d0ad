// Package assets builds per-cell asset value maps over a landscape grid.
// A value map assigns every cell a scalar worth; risk aggregation sums the
// values of burned cells, so the map is where "what do we care about losing"
// is encoded.
package assets

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/talgya/emberline/internal/landscape"
)

// Cell values for the power line corridor scenario. Every cell carries a
// small baseline worth so that any burn registers a nonzero loss; corridor
// cells are two orders of magnitude above it.
const (
	BaselineValue  = 1.0
	PowerLineValue = 100.0
)

// Spec describes a vertical high-value corridor.
type Spec struct {
	Column int // grid column carrying PowerLineValue
}

// PowerLine places the corridor one column left of centre, keeping it clear
// of edge effects while still crossing most plausible fire paths.
func PowerLine(g landscape.Grid) Spec {
	return Spec{Column: g.Cols/2 - 1}
}

// BuildValueMap materializes the value map for the grid as a dense matrix.
func BuildValueMap(g landscape.Grid, s Spec) *mat.Dense {
	m := mat.NewDense(g.Rows, g.Cols, nil)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			v := BaselineValue
			if col == s.Column {
				v = PowerLineValue
			}
			m.Set(row, col, v)
		}
	}
	return m
}

// WriteValueMap writes the matrix as space-delimited rows with one decimal
// place per value, the format the simulator parses for --customValue.
func WriteValueMap(path string, values *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create value map: %w", err)
	}

	rows, cols := values.Dims()
	w := bufio.NewWriter(f)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.FormatFloat(values.At(row, col), 'f', 1, 64))
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write value map: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close value map: %w", err)
	}
	return nil
}

// ReadValueMap parses a value map previously written by WriteValueMap.
func ReadValueMap(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open value map: %w", err)
	}
	defer f.Close()

	var (
		data []float64
		rows int
		cols int
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("value map row %d has %d values, want %d", rows, len(fields), cols)
		}
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("value map row %d: %w", rows, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read value map: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("value map %s is empty", path)
	}
	return mat.NewDense(rows, cols, data), nil
}
