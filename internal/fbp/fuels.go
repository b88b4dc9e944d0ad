// Package fbp provides the Canadian Fire Behaviour Prediction (FBP) fuel
// models shared by landscape synthesis and template staging.
// Grid codes must agree with the fbp_lookup_table.csv staged into each
// scenario directory; the simulator resolves raster cells through that table.
package fbp

// Fuel is one FBP fuel model and its raster encoding.
type Fuel struct {
	Code string // FBP short code written to the attribute table, e.g. "C1"
	Grid int    // integer cell value written to the landscape raster
	Name string // descriptive name matching the lookup table
}

// Fuel models emitted by the landscape profiles. Grid values follow the
// standard Cell2Fire lookup ordering (C-1 = 1 ... D-1 = 8).
var (
	// SpruceLichen is the single fuel of the flat reference landscape.
	SpruceLichen = Fuel{Code: "C1", Grid: 1, Name: "C-1 Spruce-Lichen Woodland"}

	// BorealSpruce forms the dense-conifer patches of the rolling mosaic.
	BorealSpruce = Fuel{Code: "C2", Grid: 2, Name: "C-2 Boreal Spruce"}

	// LeaflessAspen forms the deciduous breaks of the rolling mosaic.
	LeaflessAspen = Fuel{Code: "D1", Grid: 8, Name: "D-1 Leafless Aspen"}
)

// All lists every fuel model the synthesizer may emit.
func All() []Fuel {
	return []Fuel{SpruceLichen, BorealSpruce, LeaflessAspen}
}
