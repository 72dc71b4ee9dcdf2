package cli

import "tcr/internal/config"

// Flags holds command-line flags
type Flags struct {
	// Persistent flags
	ProjectPath   string
	WorkspaceRoot string
	Live          bool
	Headless      bool
	Args          string
	NodePath      string
	DryRun        bool
	Inspect       bool
	Verbose       bool

	// Cursor position (run)
	Line   int
	Column int
	Offset int

	// Output (list, browsers, repeat)
	NameFilter string
	JSON       bool
	Show       bool
}

// ToOverrides converts CLI flags to config overrides. changed reports whether a flag was set
// explicitly, so unset toggles do not mask values from settings or the environment.
func (f *Flags) ToOverrides(changed func(name string) bool) config.Overrides {
	o := config.Overrides{
		ProjectPath: f.ProjectPath,
		NodePath:    f.NodePath,
		Inspect:     f.Inspect,
		DryRun:      f.DryRun,
		Verbose:     f.Verbose,
	}
	if changed("workspace-root") {
		root := f.WorkspaceRoot
		o.WorkspaceRoot = &root
	}
	if changed("live") {
		live := f.Live
		o.UseLiveRunner = &live
	}
	if changed("headless") {
		headless := f.Headless
		o.UseHeadlessMode = &headless
	}
	if changed("args") {
		args := f.Args
		o.CustomArguments = &args
	}
	return o
}
