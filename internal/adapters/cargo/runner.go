package cargo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultBinary is the cargo executable looked up on PATH.
	DefaultBinary = "cargo"

	// binaryEnv names the variable cargo exports to point at itself.
	binaryEnv = "CARGO"
)

// Runner runs cargo subcommands and captures their standard output.
type Runner struct {
	binary string
	logger ports.Logger
}

// NewRunner creates a Runner for binary. An empty binary selects $CARGO, then
// DefaultBinary.
func NewRunner(binary string, logger ports.Logger) *Runner {
	if binary == "" {
		binary = os.Getenv(binaryEnv)
	}
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{binary: binary, logger: logger}
}

// Output runs cargo with args inside dir and returns what it printed on
// standard output. Standard error is forwarded to the logger line by line.
func (r *Runner) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	executable := r.binary
	if !filepath.IsAbs(executable) {
		if lp, err := exec.LookPath(executable); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // binary is operator configured
	if len(cmd.Args) > 0 {
		cmd.Args[0] = r.binary
	}
	cmd.Dir = dir

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: r.logger}

	r.logger.Debug("running " + r.binary + " " + strings.Join(args, " ") + " in " + dir)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrMetadataQueryFailed.Error()),
			"dir", dir), "exit_code", exitCode)
	}

	return stdout.Bytes(), nil
}

type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w.logger.Debug(line)
	}
	return len(p), nil
}
