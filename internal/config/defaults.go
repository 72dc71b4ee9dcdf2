package config

const (
	// DefaultProjectPath is the editor root the run is resolved against
	DefaultProjectPath = "."
	// DefaultNodePath is the node executable used to launch the runner
	DefaultNodePath = "node"
	// DefaultStateDir holds the persisted run state, relative to the project
	DefaultStateDir = ".tcr"
	// DefaultStateFile is the state file name inside DefaultStateDir
	DefaultStateFile = "state.json"
	// RunnerCLIPath is the runner entry point relative to the working directory
	RunnerCLIPath = "./node_modules/testcafe/lib/cli/index.js"
	// SettingsFile is the editor settings file, relative to the project
	SettingsFile = ".vscode/settings.json"
	// SettingsSection prefixes every recognized editor setting
	SettingsSection = "testcafeTestRunner"
	// EnvPrefix prefixes every recognized environment variable
	EnvPrefix = "TESTCAFE_RUNNER_"
)

// DefaultPathsToIgnore are the directories skipped when scanning for test files
var DefaultPathsToIgnore = []string{
	"node_modules",
	"dist",
	"build",
	"coverage",
}
