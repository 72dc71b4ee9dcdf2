package storage

import (
	"tcr/internal/config"
	"tcr/internal/domain"
)

// State is everything persisted between command invocations
type State struct {
	LastRun *domain.RunSession  `json:"last_run,omitempty"`
	Context domain.ContextFlags `json:"context"`
}

// Storage persists and loads the run state (e.g. for repeat runs).
type Storage interface {
	Load() (*State, error)
	Save(state *State) error
}

// JSONStorage stores state in a JSON file under the project's state directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's state path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Path returns the state file location
func (s *JSONStorage) Path() string {
	return s.cfg.GetStatePath()
}
