package commands

import (
	"fmt"

	"tcr/internal/discovery"
	"tcr/internal/domain"
	"tcr/internal/execution"
	"tcr/internal/ui"

	"github.com/spf13/cobra"
)

// PickCommand handles the pick command
type PickCommand struct {
	locator      *discovery.RegexLocator
	detector     *discovery.BrowserDetector
	orchestrator *execution.Orchestrator
	notifier     *ui.Notifier
}

// NewPickCommand creates a new PickCommand
func NewPickCommand(
	locator *discovery.RegexLocator,
	detector *discovery.BrowserDetector,
	orchestrator *execution.Orchestrator,
	notifier *ui.Notifier,
) *PickCommand {
	return &PickCommand{
		locator:      locator,
		detector:     detector,
		orchestrator: orchestrator,
		notifier:     notifier,
	}
}

// Execute runs the command
func (pc *PickCommand) Execute(cmd *cobra.Command, args []string) error {
	file, text, err := readSource(args[0])
	if err != nil {
		return err
	}
	if !discovery.IsSourceFile(file) {
		return fmt.Errorf("%w: %s", execution.ErrUnsupportedDocument, file)
	}

	installed, err := pc.detector.Detect(cmd.Context())
	if err != nil {
		return fmt.Errorf("detect browsers: %w", err)
	}
	browsers := discovery.InstalledAliases(installed)
	if len(browsers) == 0 {
		pc.notifier.Warn("No installed browsers detected, showing every alias")
		browsers = domain.BrowserAliases
	}

	selection, ok, err := ui.NewPicker().Pick(file, pc.locator.Declarations(text), browsers)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return pc.orchestrator.StartRun(cmd.Context(), selection.Browser, file, selection.Target.Kind, selection.Target.Name)
}
