// Landscape profiles using layered simplex noise.
// A profile assigns a fuel model and terrain attributes to every cell; the
// writers in synthesize.go turn those assignments into simulator inputs.
package landscape

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/emberline/internal/fbp"
)

// CellAttrs holds the synthesis outputs for one cell: the fuel model written
// to the raster and the terrain fields written to the attribute table.
type CellAttrs struct {
	Fuel      fbp.Fuel
	ElevM     int // elevation in metres
	SlopePct  int // percent ground slope (ps column)
	AspectDeg int // slope azimuth in degrees clockwise from north (saz column)
}

// Profile assigns fuel and terrain to every cell of a grid.
// Implementations must be deterministic: the same profile yields the same
// attributes for the same cell on every call.
type Profile interface {
	Name() string
	Cell(row, col int) CellAttrs
}

// FlatProfile is the reference landscape: a single fuel model everywhere on
// flat terrain (zero elevation, slope, and aspect).
type FlatProfile struct {
	Fuel fbp.Fuel
}

// Flat returns the reference profile with the default C-1 fuel.
func Flat() FlatProfile {
	return FlatProfile{Fuel: fbp.SpruceLichen}
}

// Name implements Profile.
func (p FlatProfile) Name() string { return "flat" }

// Cell implements Profile.
func (p FlatProfile) Cell(row, col int) CellAttrs {
	return CellAttrs{Fuel: p.Fuel}
}

// Terrain shaping constants for the rolling profile.
const (
	rollingBaseElevM = 450.0 // mean elevation in metres
	rollingReliefM   = 220.0 // half-range of elevation variation
	cellSizeM        = 100.0 // ground distance per cell; matches the raster header
)

// Fuel mosaic thresholds on the normalized fuel-noise layer.
const (
	aspenBelow  = 0.30 // below this the cell is a deciduous break
	spruceAbove = 0.75 // above this the cell is dense boreal spruce
)

// RollingProfile generates gently rolling terrain with a fuel mosaic.
// Elevation and fuel run on independently seeded noise layers.
type RollingProfile struct {
	seed int64
	elev opensimplex.Noise
	fuel opensimplex.Noise
}

// Rolling returns a rolling-terrain profile. Deterministic for a given seed.
func Rolling(seed int64) RollingProfile {
	return RollingProfile{
		seed: seed,
		elev: opensimplex.NewNormalized(seed),
		fuel: opensimplex.NewNormalized(seed + 1),
	}
}

// Name implements Profile.
func (p RollingProfile) Name() string { return "rolling" }

// Cell implements Profile.
func (p RollingProfile) Cell(row, col int) CellAttrs {
	elev := p.elevationAt(row, col)

	// Finite-difference gradient across neighbouring cells gives the slope
	// and the downhill azimuth for the ps/saz columns. Row 0 is north.
	dzdx := (p.elevationAt(row, col+1) - p.elevationAt(row, col-1)) / (2 * cellSizeM)
	dzdy := (p.elevationAt(row-1, col) - p.elevationAt(row+1, col)) / (2 * cellSizeM)

	slope := math.Sqrt(dzdx*dzdx+dzdy*dzdy) * 100

	// Azimuth of steepest descent, clockwise from north.
	aspect := 0.0
	if slope > 0 {
		aspect = math.Atan2(-dzdx, -dzdy) * 180 / math.Pi
		if aspect < 0 {
			aspect += 360
		}
	}

	v := octaveNoise(p.fuel, float64(col), float64(row), 3, 0.06, 0.5)
	fuel := fbp.SpruceLichen
	switch {
	case v < aspenBelow:
		fuel = fbp.LeaflessAspen
	case v > spruceAbove:
		fuel = fbp.BorealSpruce
	}

	return CellAttrs{
		Fuel:      fuel,
		ElevM:     int(math.Round(elev)),
		SlopePct:  int(math.Round(slope)),
		AspectDeg: int(math.Round(aspect)) % 360,
	}
}

func (p RollingProfile) elevationAt(row, col int) float64 {
	n := octaveNoise(p.elev, float64(col), float64(row), 4, 0.08, 0.5)
	return rollingBaseElevM + (n-0.5)*2*rollingReliefM
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
