// Package results locates and parses the burn grids the spread engine leaves
// behind. Layout on disk follows the engine's convention: one Grids<k>
// directory per replicate, holding periodic ForestGrid snapshots.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Engine output layout.
const (
	GridsDir    = "Grids"
	gridPattern = "ForestGrid*.csv"
)

// TerminalGrid returns the path of the final burn grid for a replicate.
// Snapshots sort lexicographically by period, so the last match is the state
// of the landscape when the fire stopped. A replicate with no snapshots means
// the engine run did not produce what it was asked for, which callers treat
// as fatal.
func TerminalGrid(outputDir string, replicate int) (string, error) {
	dir := filepath.Join(outputDir, GridsDir, fmt.Sprintf("Grids%d", replicate))
	matches, err := filepath.Glob(filepath.Join(dir, gridPattern))
	if err != nil {
		return "", fmt.Errorf("replicate %d: %w", replicate, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("replicate %d: no terminal grid files in %s", replicate, dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// ReplicateCount reports how many replicate directories an engine run left
// under outputDir, for re-evaluating archived runs without knowing their
// original settings.
func ReplicateCount(outputDir string) (int, error) {
	entries, err := os.ReadDir(filepath.Join(outputDir, GridsDir))
	if err != nil {
		return 0, fmt.Errorf("read grids dir: %w", err)
	}

	highest := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(e.Name(), GridsDir))
		if err != nil || n < 1 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	if highest == 0 {
		return 0, fmt.Errorf("no replicate directories under %s", filepath.Join(outputDir, GridsDir))
	}
	return highest, nil
}
