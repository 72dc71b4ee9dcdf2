package commands

import (
	"fmt"

	"tcr/internal/discovery"
	"tcr/internal/execution"
	"tcr/internal/ui"

	"github.com/spf13/cobra"
)

// BrowsersCommand handles the browsers command
type BrowsersCommand struct {
	detector     *discovery.BrowserDetector
	orchestrator *execution.Orchestrator
	formatter    *ui.Formatter
}

// NewBrowsersCommand creates a new BrowsersCommand
func NewBrowsersCommand(detector *discovery.BrowserDetector, orchestrator *execution.Orchestrator, formatter *ui.Formatter) *BrowsersCommand {
	return &BrowsersCommand{
		detector:     detector,
		orchestrator: orchestrator,
		formatter:    formatter,
	}
}

// Execute runs the command
func (bc *BrowsersCommand) Execute(cmd *cobra.Command, asJSON bool) error {
	spinner := ui.NewSpinner("Detecting browsers")
	spinner.Start()
	installed, err := bc.detector.Detect(cmd.Context())
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("detect browsers: %w", err)
	}

	flags, err := bc.orchestrator.PublishContext(installed)
	if err != nil {
		return err
	}

	if asJSON {
		return bc.formatter.PrintJSON(flags.Keys())
	}
	bc.formatter.PrintBrowsers(installed)
	return nil
}
