package domain

// PartitionResult splits custom arguments between the browser and the runner
type PartitionResult struct {
	BrowserFlags      []string
	RunnerFlags       []string
	HeadlessRequested bool
}

// LaunchRequest is a debug-session launch configuration for the runner CLI
type LaunchRequest struct {
	Name                   string   `json:"name"`
	Request                string   `json:"request"`
	Type                   string   `json:"type"`
	Cwd                    string   `json:"cwd"`
	Program                string   `json:"program"`
	Args                   []string `json:"args"`
	Console                string   `json:"console"`
	InternalConsoleOptions string   `json:"internalConsoleOptions"`
	RuntimeArgs            []string `json:"runtimeArgs"`
}
