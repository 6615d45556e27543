package pocket

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner executes an external command and returns its stdout. It is
// an injectable capability so tests can substitute a fake instead of
// invoking a real pocketd binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

// NewExecRunner returns a CommandRunner backed by os/exec.
func NewExecRunner() CommandRunner {
	return execRunner{}
}

// Run executes the command, capturing stdout and stderr separately. On
// failure the stderr text is folded into the returned error so callers get
// pocketd's own diagnostics.
func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.Bytes(), fmt.Errorf("executing %s: %w", name, err)
		}
		return stdout.Bytes(), fmt.Errorf("executing %s: %w: %s", name, err, msg)
	}
	return stdout.Bytes(), nil
}
