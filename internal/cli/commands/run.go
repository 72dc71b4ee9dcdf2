package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"tcr/internal/cli"
	"tcr/internal/config"
	"tcr/internal/discovery"
	"tcr/internal/domain"
	"tcr/internal/execution"
	"tcr/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config       *config.Config
	orchestrator *execution.Orchestrator
	notifier     *ui.Notifier
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, orchestrator *execution.Orchestrator, notifier *ui.Notifier) *RunCommand {
	return &RunCommand{
		config:       cfg,
		orchestrator: orchestrator,
		notifier:     notifier,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	browser, err := parseBrowser(args[0])
	if err != nil {
		return err
	}

	file, text, err := readSource(args[1])
	if err != nil {
		return err
	}

	query := cursorQuery(text, flags)
	rc.notifier.Debug("cursor at byte %d of %s", query.Offset, file)

	return rc.orchestrator.RunAtCursor(cmd.Context(), browser, file, query)
}

// cursorQuery turns the 1-based --line/--column or the byte --offset into a query
func cursorQuery(text string, flags *cli.Flags) domain.CursorQuery {
	if flags.Offset >= 0 {
		return discovery.QueryAtOffset(text, flags.Offset)
	}
	return discovery.QueryAt(text, flags.Line-1, flags.Column-1)
}

// readSource resolves path to an absolute file name and reads it
func readSource(path string) (string, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return abs, string(data), nil
}
