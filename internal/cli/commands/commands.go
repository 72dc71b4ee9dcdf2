package commands

import (
	"fmt"
	"os"
	"strings"

	"tcr/internal/cli"
	"tcr/internal/config"
	"tcr/internal/discovery"
	"tcr/internal/domain"
	"tcr/internal/execution"
	"tcr/internal/storage"
	"tcr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	RunFile  *RunFileCommand
	Repeat   *RepeatCommand
	Browsers *BrowsersCommand
	List     *ListCommand
	Pick     *PickCommand

	orchestrator *execution.Orchestrator
	notifier     *ui.Notifier
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	locator := discovery.NewRegexLocator()
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	detector := discovery.NewBrowserDetector(cfg.GetPortableBrowserPath)
	jsonStorage := storage.NewJSONStorage(cfg)
	launcher := execution.NewProcessLauncher(cfg)
	orchestrator := execution.NewOrchestrator(cfg, locator, launcher, jsonStorage)
	formatter := ui.NewFormatter()
	notifier := ui.NewNotifier(false)

	return &Commands{
		Run:      NewRunCommand(cfg, orchestrator, notifier),
		RunFile:  NewRunFileCommand(orchestrator, notifier),
		Repeat:   NewRepeatCommand(orchestrator, formatter, notifier),
		Browsers: NewBrowsersCommand(detector, orchestrator, formatter),
		List:     NewListCommand(cfg, locator, scanner, filter, formatter),
		Pick:     NewPickCommand(locator, detector, orchestrator, notifier),

		orchestrator: orchestrator,
		notifier:     notifier,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.ProjectPath, "project", "C", config.DefaultProjectPath, "Project directory (where .vscode/settings.json and .env live)")
	persistent.StringVar(&flags.WorkspaceRoot, "workspace-root", "", "Directory relative to the project that contains node_modules/testcafe")
	persistent.BoolVar(&flags.Live, "live", false, "Start the runner in live mode")
	persistent.BoolVar(&flags.Headless, "headless", false, "Run browsers in headless mode")
	persistent.StringVar(&flags.Args, "args", "", "Custom arguments; browser flags go to the browser, the rest to the runner")
	persistent.StringVar(&flags.NodePath, "node", "", "Node.js executable used to start the runner")
	persistent.BoolVar(&flags.DryRun, "dry-run", false, "Print the launch request as JSON instead of starting the runner")
	persistent.BoolVar(&flags.Inspect, "inspect", false, "Start node with --inspect so a debugger can attach")
	persistent.BoolVarP(&flags.Verbose, "verbose", "v", false, "Print debug output")

	// Flags are parsed before any command runs, so the config is loaded here and
	// shared with every dependency through the same pointer
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToOverrides(cmd.Flags().Changed))
		if err != nil {
			return err
		}
		*cfg = *loaded

		c.notifier.SetVerbose(cfg.Verbose)
		c.notifier.Debug("project: %s", cfg.GetWorkingDirectory())
		c.notifier.Debug("runner: %s", cfg.GetRunnerCLIPath())

		if cfg.DryRun {
			c.orchestrator.SetLauncher(execution.NewPrintLauncher(os.Stdout))
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run <browser> <file>",
		Short: "Run the test or fixture at a cursor position",
		Long:  "Find the test or fixture that encloses the cursor position in a file and run it in the given browser",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run.Execute(cmd, args, flags)
		},
	}
	runCmd.Flags().IntVarP(&flags.Line, "line", "l", 1, "Cursor line (1-based)")
	runCmd.Flags().IntVarP(&flags.Column, "column", "c", 1, "Cursor column in characters (1-based)")
	runCmd.Flags().IntVarP(&flags.Offset, "offset", "o", -1, "Cursor byte offset (overrides --line and --column)")
	rootCmd.AddCommand(runCmd)

	// Run file command
	runFileCmd := &cobra.Command{
		Use:   "run-file <browser> <file>",
		Short: "Run every test in a file",
		Args:  cobra.ExactArgs(2),
		RunE:  c.RunFile.Execute,
	}
	rootCmd.AddCommand(runFileCmd)

	// Repeat command
	repeatCmd := &cobra.Command{
		Use:   "repeat",
		Short: "Repeat the last run",
		Long:  "Start the last recorded run again with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Repeat.Execute(cmd, flags.Show)
		},
	}
	repeatCmd.Flags().BoolVar(&flags.Show, "show", false, "Only show the last run")
	rootCmd.AddCommand(repeatCmd)

	// Browsers command
	browsersCmd := &cobra.Command{
		Use:   "browsers",
		Short: "Detect installed browsers",
		Long:  "Detect installed browsers and publish the context flags an editor uses to enable its commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Browsers.Execute(cmd, flags.JSON)
		},
	}
	browsersCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the context flags as JSON")
	rootCmd.AddCommand(browsersCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [file|dir]",
		Short: "List fixtures and tests",
		Long:  "Print the fixtures and tests declared in a file, or in every source file under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.List.Execute(cmd, args, flags.NameFilter)
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files by name pattern (supports wildcards, e.g., '*.test.ts' or '*login*')")
	rootCmd.AddCommand(listCmd)

	// Pick command
	pickCmd := &cobra.Command{
		Use:   "pick <file>",
		Short: "Choose a test and browser interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Pick.Execute,
	}
	rootCmd.AddCommand(pickCmd)
}

// parseBrowser resolves a browser argument or lists the accepted aliases
func parseBrowser(alias string) (domain.Browser, error) {
	browser, ok := domain.ParseBrowser(alias)
	if !ok {
		known := append(append([]string{}, domain.BrowserAliases...), domain.PortableBrowsers...)
		return domain.Browser{}, fmt.Errorf("unknown browser %q (expected one of: %s)", alias, strings.Join(known, ", "))
	}
	return browser, nil
}
