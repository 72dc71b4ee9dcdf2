package execution

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"

	"tcr/internal/config"
	"tcr/internal/domain"
)

// Launcher starts the runner described by a launch request
type Launcher interface {
	Launch(ctx context.Context, req domain.LaunchRequest) error
}

// ProcessLauncher runs the request through node with the terminal attached
type ProcessLauncher struct {
	config *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewProcessLauncher creates a launcher using the configured node executable
func NewProcessLauncher(cfg *config.Config) *ProcessLauncher {
	return &ProcessLauncher{
		config: cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Command builds the node invocation for a launch request
func (l *ProcessLauncher) Command(ctx context.Context, req domain.LaunchRequest) *exec.Cmd {
	args := append([]string{}, req.RuntimeArgs...)
	if l.config.Inspect {
		args = append(args, "--inspect")
	}
	args = append(args, req.Program)
	args = append(args, req.Args...)

	cmd := exec.CommandContext(ctx, l.config.NodePath, args...)
	cmd.Dir = req.Cwd
	cmd.Env = os.Environ()
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd
}

// Launch runs the runner and waits for it. The context cancels the process.
func (l *ProcessLauncher) Launch(ctx context.Context, req domain.LaunchRequest) error {
	if _, err := exec.LookPath(l.config.NodePath); err != nil {
		return fmt.Errorf("node executable %q not found: %w", l.config.NodePath, err)
	}
	if err := l.Command(ctx, req).Run(); err != nil {
		return fmt.Errorf("runner exited: %w", err)
	}
	return nil
}

// PrintLauncher writes the launch request as a launch.json configuration instead of running it
type PrintLauncher struct {
	w io.Writer
}

// NewPrintLauncher creates a launcher that prints to w
func NewPrintLauncher(w io.Writer) *PrintLauncher {
	return &PrintLauncher{w: w}
}

// Launch prints the request
func (l *PrintLauncher) Launch(_ context.Context, req domain.LaunchRequest) error {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal launch request: %w", err)
	}
	_, err = fmt.Fprintln(l.w, string(data))
	return err
}
