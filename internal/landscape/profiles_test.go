package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/emberline/internal/fbp"
)

func TestFlatProfile(t *testing.T) {
	p := Flat()
	assert.Equal(t, "flat", p.Name())

	c := p.Cell(10, 20)
	assert.Equal(t, fbp.SpruceLichen, c.Fuel)
	assert.Zero(t, c.ElevM)
	assert.Zero(t, c.SlopePct)
	assert.Zero(t, c.AspectDeg)
}

func TestRollingProfile(t *testing.T) {
	t.Run("deterministic for a seed", func(t *testing.T) {
		a := Rolling(123)
		b := Rolling(123)
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				assert.Equal(t, a.Cell(row, col), b.Cell(row, col))
			}
		}
	})

	t.Run("seed changes the terrain", func(t *testing.T) {
		a := Rolling(1)
		b := Rolling(2)
		differ := false
		for row := 0; row < 20 && !differ; row++ {
			for col := 0; col < 20 && !differ; col++ {
				differ = a.Cell(row, col) != b.Cell(row, col)
			}
		}
		assert.True(t, differ, "two seeds produced identical terrain over 400 cells")
	})

	t.Run("attributes stay in range", func(t *testing.T) {
		p := Rolling(7)
		known := map[int]bool{}
		for _, f := range fbp.All() {
			known[f.Grid] = true
		}

		for row := 0; row < 30; row++ {
			for col := 0; col < 30; col++ {
				c := p.Cell(row, col)
				require.True(t, known[c.Fuel.Grid], "unknown fuel %+v at (%d,%d)", c.Fuel, row, col)
				assert.GreaterOrEqual(t, c.ElevM, 230, "elevation below relief floor")
				assert.LessOrEqual(t, c.ElevM, 670, "elevation above relief ceiling")
				assert.GreaterOrEqual(t, c.SlopePct, 0)
				assert.GreaterOrEqual(t, c.AspectDeg, 0)
				assert.Less(t, c.AspectDeg, 360)
			}
		}
	})
}
