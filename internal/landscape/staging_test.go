package landscape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testLookup  = "grid_value,export_value,descriptive_name,fuel_type\n1,1,C-1 spruce-lichen,C1\n"
	testWeather = "Scenario,datetime,APCP,TMP,RH,WS,WD,FFMC,DMC,DC,ISI,BUI,FWI\n" +
		"JCC,2001-10-01 13:00,0,21,27,20,118,94.1,117.5,685.4,12.9,152.6,43.2\n"
)

func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LookupFile), []byte(testLookup), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, WeatherFile), []byte(testWeather), 0644))
	return dir
}

func TestStage(t *testing.T) {
	templates := writeTemplates(t)
	scenario := t.TempDir()

	require.NoError(t, Stage(templates, scenario))

	for _, name := range []string{LookupFile, WeatherFile} {
		want, err := os.ReadFile(filepath.Join(templates, name))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(scenario, name))
		require.NoError(t, err)
		assert.Equal(t, want, got, "%s must be copied byte for byte", name)
	}
}

func TestStageMissingTemplate(t *testing.T) {
	templates := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templates, WeatherFile), []byte(testWeather), 0644))

	err := Stage(templates, t.TempDir())
	assert.ErrorContains(t, err, LookupFile)
}
