// Package shell provides the subprocess command runner adapter.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.cachet.dev/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec. It is meant for
// short-lived probe commands whose single-line output is the result.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command and returns its trimmed standard output. The
// command inherits the caller's environment; cancellation comes from ctx.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Probe argv comes from the ecosystem registry

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return "", zerr.With(zerr.With(zerr.Wrap(err, "command failed"),
			"command", name),
			"exit_code", exitCode)
	}

	return strings.TrimSpace(stdout.String()), nil
}
