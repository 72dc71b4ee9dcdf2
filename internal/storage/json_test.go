package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcr/internal/config"
	"tcr/internal/domain"
)

func newStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	st := newStorage(t)

	state, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, state.LastRun)
	assert.False(t, state.LastRun.Complete())
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st := newStorage(t)

	started := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	state := &State{
		LastRun: &domain.RunSession{
			Browser:   domain.Browser{Name: "portableChrome", IsPortable: true},
			File:      "/project/tests/login.test.js",
			Kind:      domain.KindTest,
			Name:      "submits form",
			RunID:     "0d9c7f0e-4c57-4b43-9d2a-5d2b0f1c3a11",
			StartedAt: started,
		},
		Context: domain.ContextFlags{
			Installed:  map[string]bool{"chrome": true, "safari": false},
			CanRerun:   true,
			ReadyForUX: true,
		},
	}
	require.NoError(t, st.Save(state))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, state.LastRun.Browser, loaded.LastRun.Browser)
	assert.Equal(t, state.LastRun.Name, loaded.LastRun.Name)
	assert.True(t, loaded.LastRun.StartedAt.Equal(started))
	assert.Equal(t, state.Context, loaded.Context)
	assert.True(t, loaded.LastRun.Complete())
}

func TestJSONStorage_LoadCorrupt(t *testing.T) {
	st := newStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0755))

	// A write cut short leaves a truncated document
	require.NoError(t, os.WriteFile(st.Path(), []byte(`{"last_run": {"browser":`), 0644))

	state, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, state.LastRun)

	// The next save replaces the broken file
	require.NoError(t, st.Save(&State{LastRun: &domain.RunSession{Browser: domain.Browser{Name: "chrome"}, File: "/a.js", Kind: domain.KindFile}}))
	loaded, err := st.Load()
	require.NoError(t, err)
	assert.True(t, loaded.LastRun.Complete())
}

func TestJSONStorage_SaveLeavesNoTempFiles(t *testing.T) {
	st := newStorage(t)

	require.NoError(t, st.Save(&State{}))
	require.NoError(t, st.Save(&State{Context: domain.ContextFlags{ReadyForUX: true}}))

	entries, err := os.ReadDir(filepath.Dir(st.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, config.DefaultStateFile, entries[0].Name())
}
