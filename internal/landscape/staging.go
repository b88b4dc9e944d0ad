package landscape

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Stage copies the fuel lookup table and the weather stream from templateDir
// into scenarioDir. Both files are required: the simulator resolves grid codes
// through the lookup table and samples ignition weather from the stream, so a
// missing template is a hard error rather than something to default.
func Stage(templateDir, scenarioDir string) error {
	for _, name := range []string{LookupFile, WeatherFile} {
		src := filepath.Join(templateDir, name)
		dst := filepath.Join(scenarioDir, name)
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}
	}

	describeWeather(filepath.Join(scenarioDir, WeatherFile))
	return nil
}

// copyFile copies src to dst byte for byte, replacing dst if present.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// describeWeather logs the shape of the staged weather stream. Purely
// advisory: the simulator is the authority on weather semantics, this only
// surfaces obviously malformed templates before a long run.
func describeWeather(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		slog.Warn("weather stream unreadable", "path", path, "error", err)
		return
	}
	if header[0] != "Scenario" {
		slog.Warn("weather stream has unexpected header", "path", path, "first_column", header[0])
	}

	rows := 0
	for {
		if _, err := r.Read(); err != nil {
			break
		}
		rows++
	}
	slog.Info("weather stream staged", "path", path, "columns", len(header), "rows", rows)
}
