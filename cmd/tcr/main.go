package main

import (
	"context"
	"os"
	"os/signal"

	"tcr/internal/cli"
	"tcr/internal/cli/commands"
	"tcr/internal/config"
	"tcr/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tcr",
		Short:   "Run TestCafe tests from your editor",
		Long:    `Runs the TestCafe test or fixture under the cursor, a whole file, or the last run again. Browser flags in the custom arguments are passed to the browser, everything else goes to the runner.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.NewNotifier(false).Error(err)
		stop()
		os.Exit(1)
	}
}
