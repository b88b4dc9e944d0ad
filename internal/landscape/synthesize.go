// Raster and attribute-table writers.
// Both files are positional contracts with the external simulator: the asc
// header fields, the attribute column order, and the row-major record order
// are fixed and not self-describing.
package landscape

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Scenario artifact names shared with the simulator.
const (
	RasterFile    = "Forest.asc"
	AttributeFile = "Data.csv"
	LookupFile    = "fbp_lookup_table.csv"
	WeatherFile   = "Weather.csv"
)

// Raster header values for the synthetic landscape.
const (
	rasterXLLCorner = 0
	rasterYLLCorner = 0
	rasterCellSize  = 100 // metres per cell
	rasterNoData    = -9999
)

// Constant attribute fields written to every record. Columns left blank are
// derived or ignored by the simulator.
const (
	attrLatitude  = "51.0"   // reference latitude, Alberta foothills
	attrLongitude = "-115.0" // reference longitude
	attrGrassLoad = "0.75"   // gfl: grass fuel load, kg/m²
	attrTime      = "20"     // elapsed time for rate-of-spread levelling, minutes
)

// attributeColumns is the fixed positional schema of the attribute table.
var attributeColumns = []string{
	"fueltype", "mon", "jd", "M", "jd_min", "lat", "lon", "elev",
	"ffmc", "ws", "waz", "bui", "ps", "saz", "pc", "pdf",
	"gfl", "cur", "time", "pattern",
}

// Synthesize writes the landscape raster and the per-cell attribute table for
// the grid into dir, creating the directory if absent. Filesystem failures
// propagate immediately: a partial scenario directory is not valid input for
// any downstream stage.
func Synthesize(dir string, g Grid, p Profile) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create scenario dir: %w", err)
	}
	if err := writeRaster(filepath.Join(dir, RasterFile), g, p); err != nil {
		return err
	}
	if err := writeAttributes(filepath.Join(dir, AttributeFile), g, p); err != nil {
		return err
	}

	slog.Info("landscape synthesized",
		"dir", dir,
		"grid", g.String(),
		"cells", g.CellCount(),
		"profile", p.Name(),
	)
	return nil
}

// writeRaster writes the asc-style fuel grid: six header lines followed by
// one line of fuel grid codes per grid row.
func writeRaster(path string, g Grid, p Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create raster: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "ncols %d\n", g.Cols)
	fmt.Fprintf(w, "nrows %d\n", g.Rows)
	fmt.Fprintf(w, "xllcorner %d\n", rasterXLLCorner)
	fmt.Fprintf(w, "yllcorner %d\n", rasterYLLCorner)
	fmt.Fprintf(w, "cellsize %d\n", rasterCellSize)
	fmt.Fprintf(w, "NODATA_value %d\n", rasterNoData)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.Itoa(p.Cell(row, col).Fuel.Grid))
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write raster: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close raster: %w", err)
	}
	return nil
}

// writeAttributes writes the attribute table: a header row and one record per
// cell in row-major order.
func writeAttributes(path string, g Grid, p Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create attribute table: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(attributeColumns); err != nil {
		f.Close()
		return fmt.Errorf("write attribute header: %w", err)
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if err := w.Write(attributeRecord(p.Cell(row, col))); err != nil {
				f.Close()
				return fmt.Errorf("write attribute record (%d,%d): %w", row, col, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write attribute table: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close attribute table: %w", err)
	}
	return nil
}

// attributeRecord renders one cell as the fixed 20-column record.
func attributeRecord(c CellAttrs) []string {
	return []string{
		c.Fuel.Code,                  // fueltype
		"", "", "", "",               // mon, jd, M, jd_min: simulator-derived
		attrLatitude,                 // lat
		attrLongitude,                // lon
		strconv.Itoa(c.ElevM),        // elev
		"", "", "", "",               // ffmc, ws, waz, bui: taken from weather
		strconv.Itoa(c.SlopePct),     // ps
		strconv.Itoa(c.AspectDeg),    // saz
		"", "",                       // pc, pdf: mixedwood fractions, unused
		attrGrassLoad,                // gfl
		"",                           // cur
		attrTime,                     // time
		"",                           // pattern
	}
}
