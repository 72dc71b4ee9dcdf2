package config

import (
	"path/filepath"

	"tcr/internal/domain"
)

// Config holds all configuration for one command invocation
type Config struct {
	// Project settings
	ProjectPath   string
	WorkspaceRoot string

	// Run settings
	UseLiveRunner   bool
	UseHeadlessMode bool
	// CustomArguments is nil when the setting is absent or not a string
	CustomArguments *string

	// Portable browser paths
	PortableFirefoxPath string
	PortableChromePath  string

	// Launch settings
	NodePath string
	Inspect  bool
	DryRun   bool
	Verbose  bool

	// State settings
	StateDir string

	// Paths to ignore when scanning
	PathsToIgnore []string
}

// Overrides holds values given on the command line; nil fields are not set
type Overrides struct {
	ProjectPath     string
	WorkspaceRoot   *string
	UseLiveRunner   *bool
	UseHeadlessMode *bool
	CustomArguments *string
	NodePath        string
	Inspect         bool
	DryRun          bool
	Verbose         bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		NodePath:    DefaultNodePath,
		StateDir:    DefaultStateDir,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Apply copies command-line overrides onto the config
func (c *Config) Apply(o Overrides) {
	if o.ProjectPath != "" {
		c.ProjectPath = o.ProjectPath
	}
	if o.WorkspaceRoot != nil {
		c.WorkspaceRoot = *o.WorkspaceRoot
	}
	if o.UseLiveRunner != nil {
		c.UseLiveRunner = *o.UseLiveRunner
	}
	if o.UseHeadlessMode != nil {
		c.UseHeadlessMode = *o.UseHeadlessMode
	}
	if o.CustomArguments != nil {
		args := *o.CustomArguments
		c.CustomArguments = &args
	}
	if o.NodePath != "" {
		c.NodePath = o.NodePath
	}
	c.Inspect = c.Inspect || o.Inspect
	c.DryRun = c.DryRun || o.DryRun
	c.Verbose = c.Verbose || o.Verbose
}

// GetWorkingDirectory resolves the runner's working directory from the project path and the
// workspace root override. An absolute override replaces the project path.
func (c *Config) GetWorkingDirectory() string {
	dir := c.ProjectPath
	if c.WorkspaceRoot != "" {
		if filepath.IsAbs(c.WorkspaceRoot) {
			dir = c.WorkspaceRoot
		} else {
			dir = filepath.Join(c.ProjectPath, c.WorkspaceRoot)
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}

// GetRunnerCLIPath returns the path to the runner entry point
func (c *Config) GetRunnerCLIPath() string {
	return filepath.Join(c.GetWorkingDirectory(), RunnerCLIPath)
}

// GetStatePath returns the full path to the persisted state file.
// Resolves to an absolute path so every command reads the same file regardless of cwd.
func (c *Config) GetStatePath() string {
	p := filepath.Join(c.ProjectPath, c.StateDir, DefaultStateFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetPortableBrowserPath returns the configured path for a portable browser alias
func (c *Config) GetPortableBrowserPath(alias string) (string, bool) {
	switch alias {
	case domain.PortableFirefox:
		return c.PortableFirefoxPath, true
	case domain.PortableChrome:
		return c.PortableChromePath, true
	default:
		return "", false
	}
}
