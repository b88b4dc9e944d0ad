package simulator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// Conventional engine entry point when nothing else is configured.
const (
	DefaultPython = "python"
	DefaultModule = "cell2fire.main"
)

// How much trailing engine stderr to carry into a failure message.
const stderrTailBytes = 2048

// Cell2Fire runs the spread engine as a Python module in a subprocess.
type Cell2Fire struct {
	Python string // interpreter binary
	Module string // module passed to -m
	Dir    string // working directory for the subprocess, empty for inherited
}

// New returns a Cell2Fire invoker. Empty python or module fall back to the
// conventional entry point.
func New(python, module string) Cell2Fire {
	if python == "" {
		python = DefaultPython
	}
	if module == "" {
		module = DefaultModule
	}
	return Cell2Fire{Python: python, Module: module}
}

// Run clears the output directory and executes the engine once for the whole
// replicate batch, blocking until it exits. Engine stdout and stderr pass
// through to the caller's terminal; a non-zero exit is fatal and the error
// carries the stderr tail so the failure is diagnosable from the log alone.
func (c Cell2Fire) Run(ctx context.Context, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if err := os.RemoveAll(opts.OutputDir); err != nil {
		return fmt.Errorf("clear output dir: %w", err)
	}

	args := append([]string{"-m", c.Module}, opts.args()...)
	cmd := exec.CommandContext(ctx, c.Python, args...)
	cmd.Dir = c.Dir
	cmd.Stdout = os.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)

	slog.Info("launching simulator",
		"python", c.Python,
		"module", c.Module,
		"replicates", opts.Replicates,
		"scenario", opts.ScenarioDir,
		"output", opts.OutputDir,
	)

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("simulator exited with status %d: %s",
				exitErr.ExitCode(), tail(stderr.Bytes(), stderrTailBytes))
		}
		return fmt.Errorf("run simulator: %w", err)
	}

	slog.Info("simulator finished",
		"replicates", opts.Replicates,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// tail returns the last max bytes of b as trimmed text.
func tail(b []byte, max int) string {
	if len(b) > max {
		b = b[len(b)-max:]
	}
	return string(bytes.TrimSpace(b))
}
