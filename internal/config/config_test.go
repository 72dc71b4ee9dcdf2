package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetWorkingDirectory(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "project path only",
			config: &Config{
				ProjectPath: "/project",
			},
			expected: "/project",
		},
		{
			name: "relative workspace root",
			config: &Config{
				ProjectPath:   "/project",
				WorkspaceRoot: "e2e",
			},
			expected: "/project/e2e",
		},
		{
			name: "absolute workspace root",
			config: &Config{
				ProjectPath:   "/project",
				WorkspaceRoot: "/absolute/path",
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetWorkingDirectory()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetRunnerCLIPath(t *testing.T) {
	cfg := &Config{ProjectPath: "/project", WorkspaceRoot: "web"}
	expected := "/project/web/node_modules/testcafe/lib/cli/index.js"
	if got := cfg.GetRunnerCLIPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestConfig_GetPortableBrowserPath(t *testing.T) {
	cfg := &Config{PortableFirefoxPath: "/opt/ff/firefox", PortableChromePath: "/opt/chrome/chrome"}

	if p, ok := cfg.GetPortableBrowserPath("portableFirefox"); !ok || p != "/opt/ff/firefox" {
		t.Errorf("unexpected firefox path %q (%v)", p, ok)
	}
	if p, ok := cfg.GetPortableBrowserPath("portableChrome"); !ok || p != "/opt/chrome/chrome" {
		t.Errorf("unexpected chrome path %q (%v)", p, ok)
	}
	if _, ok := cfg.GetPortableBrowserPath("chrome"); ok {
		t.Error("chrome is not a portable alias")
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.NodePath != DefaultNodePath {
		t.Errorf("expected NodePath %s, got %s", DefaultNodePath, cfg.NodePath)
	}

	if cfg.CustomArguments != nil {
		t.Errorf("expected no custom arguments, got %q", *cfg.CustomArguments)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads editor settings", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, SettingsFile), `{
  "testcafeTestRunner.workspaceRoot": "e2e",
  "testcafeTestRunner.useLiveRunner": true,
  "testcafeTestRunner.useHeadlessMode": "yes",
  "testcafeTestRunner.customArguments": "--no-sandbox -q",
  "testcafeTestRunner.portableChromePath": "/opt/chrome"
}`)

		cfg, err := Load(Overrides{ProjectPath: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.WorkspaceRoot != "e2e" {
			t.Errorf("expected workspace root e2e, got %q", cfg.WorkspaceRoot)
		}
		if !cfg.UseLiveRunner {
			t.Error("expected live runner")
		}
		if cfg.UseHeadlessMode {
			t.Error("non-boolean headless setting must be ignored")
		}
		if cfg.CustomArguments == nil || *cfg.CustomArguments != "--no-sandbox -q" {
			t.Errorf("unexpected custom arguments %v", cfg.CustomArguments)
		}
		if cfg.PortableChromePath != "/opt/chrome" {
			t.Errorf("unexpected portable chrome path %q", cfg.PortableChromePath)
		}
	})

	t.Run("non-string custom arguments are absent", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, SettingsFile), `{"testcafeTestRunner.customArguments": 42}`)

		cfg, err := Load(Overrides{ProjectPath: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.CustomArguments != nil {
			t.Errorf("expected nil custom arguments, got %q", *cfg.CustomArguments)
		}
	})

	t.Run("malformed settings are ignored", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, SettingsFile), `{ // comment
  "testcafeTestRunner.workspaceRoot": "e2e",
}`)

		cfg, err := Load(Overrides{ProjectPath: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.WorkspaceRoot != "" {
			t.Errorf("expected empty workspace root, got %q", cfg.WorkspaceRoot)
		}
	})

	t.Run("dotenv overrides settings and flags override dotenv", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, SettingsFile), `{"testcafeTestRunner.workspaceRoot": "from-settings"}`)
		writeFile(t, filepath.Join(dir, ".env"), "TESTCAFE_RUNNER_WORKSPACE_ROOT=from-env\nTESTCAFE_RUNNER_USE_HEADLESS_MODE=true\n")

		cfg, err := Load(Overrides{ProjectPath: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.WorkspaceRoot != "from-env" {
			t.Errorf("expected from-env, got %q", cfg.WorkspaceRoot)
		}
		if !cfg.UseHeadlessMode {
			t.Error("expected headless from .env")
		}

		root := "from-flag"
		headless := false
		cfg, err = Load(Overrides{ProjectPath: dir, WorkspaceRoot: &root, UseHeadlessMode: &headless})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.WorkspaceRoot != "from-flag" {
			t.Errorf("expected from-flag, got %q", cfg.WorkspaceRoot)
		}
		if cfg.UseHeadlessMode {
			t.Error("expected headless flag to win")
		}
	})

	t.Run("process environment wins over dotenv", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".env"), "TESTCAFE_RUNNER_CUSTOM_ARGUMENTS=--from-file\n")
		t.Setenv("TESTCAFE_RUNNER_CUSTOM_ARGUMENTS", "--from-env")

		cfg, err := Load(Overrides{ProjectPath: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.CustomArguments == nil || *cfg.CustomArguments != "--from-env" {
			t.Errorf("unexpected custom arguments %v", cfg.CustomArguments)
		}
	})
}
