package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tcr/internal/config"
	"tcr/internal/discovery"
	"tcr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	locator   *discovery.RegexLocator
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	locator *discovery.RegexLocator,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		locator:   locator,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command. Without an argument the project directory is scanned.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string, nameFilter string) error {
	path := lc.config.GetWorkingDirectory()
	if len(args) > 0 {
		path = args[0]
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("test path does not exist: %s", path)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = lc.scanner.Scan(path)
		if err != nil {
			return err
		}
	}

	// Filter files
	files = lc.filter.FilterByName(files, nameFilter)

	found := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		text := string(data)
		decls := lc.locator.Declarations(text)
		if len(decls) == 0 {
			continue
		}
		lc.formatter.PrintDeclarations(file, text, decls)
		found++
	}

	if found == 0 {
		color.Yellow("No tests found")
	}
	return nil
}
