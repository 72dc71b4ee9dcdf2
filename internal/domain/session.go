package domain

import "time"

// RunSession remembers the last run start so it can be repeated
type RunSession struct {
	Browser   Browser   `json:"browser"`
	File      string    `json:"file"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name,omitempty"`
	RunID     string    `json:"run_id,omitempty"`
	StartedAt time.Time `json:"started_at,omitempty"`
}

// Complete reports whether the session holds enough to repeat a run
func (s *RunSession) Complete() bool {
	if s == nil || s.Browser.Name == "" || s.File == "" {
		return false
	}
	return s.Kind == KindFile || s.Name != ""
}

// ContextFlags are the UI visibility flags published for the editor
type ContextFlags struct {
	Installed  map[string]bool `json:"installed"`
	CanRerun   bool            `json:"can_rerun"`
	ReadyForUX bool            `json:"ready_for_ux"`
}

// Keys renders the flags under their editor context key names
func (c ContextFlags) Keys() map[string]bool {
	keys := map[string]bool{
		"testcaferunner.canRerun":   c.CanRerun,
		"testcaferunner.readyForUX": c.ReadyForUX,
	}
	for alias, installed := range c.Installed {
		keys["testcaferunner."+alias+"Installed"] = installed
	}
	return keys
}
