package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/talgya/emberline/internal/landscape"
)

func grid(t *testing.T, rows, cols int) landscape.Grid {
	t.Helper()
	g, err := landscape.New(rows, cols)
	require.NoError(t, err)
	return g
}

func TestPowerLineColumn(t *testing.T) {
	assert.Equal(t, 49, PowerLine(grid(t, 100, 100)).Column)
	assert.Equal(t, 1, PowerLine(grid(t, 4, 4)).Column)
	assert.Equal(t, 0, PowerLine(grid(t, 5, 2)).Column)
}

func TestBuildValueMap(t *testing.T) {
	g := grid(t, 4, 4)
	spec := PowerLine(g)
	values := BuildValueMap(g, spec)

	rows, cols := values.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			want := BaselineValue
			if col == spec.Column {
				want = PowerLineValue
			}
			assert.Equal(t, want, values.At(row, col), "cell (%d,%d)", row, col)
		}
	}

	again := BuildValueMap(g, spec)
	assert.True(t, mat.Equal(values, again), "builder must be deterministic")
}

func TestWriteValueMapFormat(t *testing.T) {
	g := grid(t, 2, 3)
	values := BuildValueMap(g, Spec{Column: 1})

	path := filepath.Join(t.TempDir(), "values.csv")
	require.NoError(t, WriteValueMap(path, values))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0 100.0 1.0\n1.0 100.0 1.0\n", string(data))
}

func TestValueMapRoundTrip(t *testing.T) {
	g := grid(t, 6, 9)
	values := BuildValueMap(g, PowerLine(g))

	path := filepath.Join(t.TempDir(), "values.csv")
	require.NoError(t, WriteValueMap(path, values))

	back, err := ReadValueMap(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(values, back), "round trip must reproduce values exactly")
}

func TestReadValueMapErrors(t *testing.T) {
	t.Run("ragged rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ragged.csv")
		require.NoError(t, os.WriteFile(path, []byte("1.0 2.0\n3.0\n"), 0644))
		_, err := ReadValueMap(path)
		assert.ErrorContains(t, err, "row 1")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		_, err := ReadValueMap(path)
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte("1.0 oops\n"), 0644))
		_, err := ReadValueMap(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadValueMap(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorContains(t, err, "open value map")
	})
}
