package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"tcr/internal/domain"
	"tcr/internal/execution"
	"tcr/internal/ui"

	"github.com/spf13/cobra"
)

// RunFileCommand handles the run-file command
type RunFileCommand struct {
	orchestrator *execution.Orchestrator
	notifier     *ui.Notifier
}

// NewRunFileCommand creates a new RunFileCommand
func NewRunFileCommand(orchestrator *execution.Orchestrator, notifier *ui.Notifier) *RunFileCommand {
	return &RunFileCommand{orchestrator: orchestrator, notifier: notifier}
}

// Execute runs the command
func (rc *RunFileCommand) Execute(cmd *cobra.Command, args []string) error {
	browser, err := parseBrowser(args[0])
	if err != nil {
		return err
	}

	file, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[1], err)
	}
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("test file does not exist: %s", file)
	}

	rc.notifier.Debug("running all tests in %s", file)
	return rc.orchestrator.StartRun(cmd.Context(), browser, file, domain.KindFile, "")
}
