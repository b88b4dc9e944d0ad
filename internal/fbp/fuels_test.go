package fbp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceFuel(t *testing.T) {
	assert.Equal(t, "C1", SpruceLichen.Code)
	assert.Equal(t, 1, SpruceLichen.Grid)
}

func TestAllFuelsDistinct(t *testing.T) {
	codes := map[string]bool{}
	grids := map[int]bool{}
	for _, f := range All() {
		assert.False(t, codes[f.Code], "duplicate code %s", f.Code)
		assert.False(t, grids[f.Grid], "duplicate grid value %d", f.Grid)
		assert.NotEmpty(t, f.Name)
		codes[f.Code] = true
		grids[f.Grid] = true
	}
}
