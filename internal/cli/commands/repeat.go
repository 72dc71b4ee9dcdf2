package commands

import (
	"tcr/internal/execution"
	"tcr/internal/ui"

	"github.com/spf13/cobra"
)

// RepeatCommand handles the repeat command
type RepeatCommand struct {
	orchestrator *execution.Orchestrator
	formatter    *ui.Formatter
	notifier     *ui.Notifier
}

// NewRepeatCommand creates a new RepeatCommand
func NewRepeatCommand(orchestrator *execution.Orchestrator, formatter *ui.Formatter, notifier *ui.Notifier) *RepeatCommand {
	return &RepeatCommand{
		orchestrator: orchestrator,
		formatter:    formatter,
		notifier:     notifier,
	}
}

// Execute runs the command. With show set it only prints the recorded run.
func (rc *RepeatCommand) Execute(cmd *cobra.Command, show bool) error {
	if show {
		last, err := rc.orchestrator.Session()
		if err != nil {
			return err
		}
		rc.formatter.PrintSession(last)
		return nil
	}

	last, err := rc.orchestrator.Session()
	if err == nil && last.Complete() {
		rc.notifier.Debug("repeating run %s", last.RunID)
	}
	return rc.orchestrator.RepeatLastRun(cmd.Context())
}
