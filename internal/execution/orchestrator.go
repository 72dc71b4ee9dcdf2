package execution

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"tcr/internal/config"
	"tcr/internal/discovery"
	"tcr/internal/domain"
	"tcr/internal/parser"
	"tcr/internal/storage"
)

const launchName = "Launch current test(s) with TestCafe"

// Orchestrator turns run requests into runner launches and owns the last-run session
type Orchestrator struct {
	config   *config.Config
	locator  discovery.Locator
	launcher Launcher
	storage  storage.Storage
	state    *storage.State

	stat func(name string) (os.FileInfo, error)
	now  func() time.Time
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(cfg *config.Config, locator discovery.Locator, launcher Launcher, st storage.Storage) *Orchestrator {
	return &Orchestrator{
		config:   cfg,
		locator:  locator,
		launcher: launcher,
		storage:  st,
		stat:     os.Stat,
		now:      time.Now,
	}
}

// SetLauncher replaces the launcher (e.g. for dry runs chosen after construction)
func (o *Orchestrator) SetLauncher(l Launcher) {
	o.launcher = l
}

func (o *Orchestrator) loadState() (*storage.State, error) {
	if o.state != nil {
		return o.state, nil
	}
	state, err := o.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load run state: %w", err)
	}
	o.state = state
	return state, nil
}

// Session returns the last recorded run, or nil
func (o *Orchestrator) Session() (*domain.RunSession, error) {
	state, err := o.loadState()
	if err != nil {
		return nil, err
	}
	return state.LastRun, nil
}

// RunAtCursor runs the test or fixture enclosing the cursor in a document
func (o *Orchestrator) RunAtCursor(ctx context.Context, browser domain.Browser, filePath string, query domain.CursorQuery) error {
	if !discovery.IsSourceFile(filePath) {
		return fmt.Errorf("%w: %s", ErrUnsupportedDocument, filePath)
	}

	target := o.locator.Locate(query.Text, query.Offset)
	if target.Empty() {
		return ErrNoTarget
	}

	return o.StartRun(ctx, browser, filePath, target.Kind, target.Name)
}

// RepeatLastRun starts the last recorded run again
func (o *Orchestrator) RepeatLastRun(ctx context.Context) error {
	last, err := o.Session()
	if err != nil {
		return err
	}
	if !last.Complete() {
		return ErrNoPreviousRun
	}
	return o.StartRun(ctx, last.Browser, last.File, last.Kind, last.Name)
}

// StartRun records the run in the session and launches the runner.
// The session is written before validation so a failed start can still be repeated.
func (o *Orchestrator) StartRun(ctx context.Context, browser domain.Browser, filePath string, kind domain.Kind, name string) error {
	if !kind.Valid() {
		return ErrNoTarget
	}

	state, err := o.loadState()
	if err != nil {
		return err
	}
	state.LastRun = &domain.RunSession{
		Browser:   browser,
		File:      filePath,
		Kind:      kind,
		Name:      name,
		RunID:     uuid.NewString(),
		StartedAt: o.now(),
	}
	if err := o.storage.Save(state); err != nil {
		return fmt.Errorf("save run session: %w", err)
	}

	req, err := o.BuildLaunchRequest(browser, filePath, kind, name)
	if err != nil {
		return err
	}

	state.Context.CanRerun = true
	if err := o.storage.Save(state); err != nil {
		return fmt.Errorf("save run session: %w", err)
	}

	return o.launcher.Launch(ctx, req)
}

// BuildLaunchRequest composes the runner command line and checks that the runner is installed
func (o *Orchestrator) BuildLaunchRequest(browser domain.Browser, filePath string, kind domain.Kind, name string) (domain.LaunchRequest, error) {
	var portablePath string
	if browser.IsPortable {
		p, ok := o.config.GetPortableBrowserPath(browser.Name)
		if !ok || p == "" {
			return domain.LaunchRequest{}, fmt.Errorf("%w: %s", ErrPortablePathNotSet, browser.Name)
		}
		portablePath = p
	}

	result := parser.Partition(o.config.CustomArguments, o.config.UseHeadlessMode)

	args := []string{parser.BrowserArg(browser, portablePath, result), filePath}
	if kind != domain.KindFile {
		args = append(args, kind.Flag(), name)
	}
	args = append(args, result.RunnerFlags...)
	if o.config.UseLiveRunner {
		args = append(args, "--live")
	}

	program := o.config.GetRunnerCLIPath()
	if _, err := o.stat(program); err != nil {
		return domain.LaunchRequest{}, &MissingCLIError{Path: program}
	}

	return domain.LaunchRequest{
		Name:                   launchName,
		Request:                "launch",
		Type:                   "node",
		Cwd:                    o.config.GetWorkingDirectory(),
		Program:                program,
		Args:                   args,
		Console:                "integratedTerminal",
		InternalConsoleOptions: "neverOpen",
		RuntimeArgs:            []string{"--no-deprecation"},
	}, nil
}

// PublishContext records the installed browsers and returns the flags the editor UI reads.
// CanRerun stays as the last run left it: only a run that reached the launcher enables it.
func (o *Orchestrator) PublishContext(installed map[string]bool) (domain.ContextFlags, error) {
	state, err := o.loadState()
	if err != nil {
		return domain.ContextFlags{}, err
	}
	state.Context.Installed = installed
	state.Context.ReadyForUX = true
	state.Context.CanRerun = state.Context.CanRerun && state.LastRun.Complete()
	if err := o.storage.Save(state); err != nil {
		return domain.ContextFlags{}, fmt.Errorf("save context flags: %w", err)
	}
	return state.Context, nil
}
