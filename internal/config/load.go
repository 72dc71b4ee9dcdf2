package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Load creates a config for the project named by the overrides and applies every source in order:
// defaults, editor settings, .env and the process environment, then the overrides themselves.
func Load(o Overrides) (*Config, error) {
	cfg := New()
	if o.ProjectPath != "" {
		cfg.ProjectPath = o.ProjectPath
	}

	if err := cfg.loadSettings(filepath.Join(cfg.ProjectPath, SettingsFile)); err != nil {
		// Unreadable editor settings never block a run
		color.Yellow("Ignoring %s: %v", SettingsFile, err)
	}

	env, err := readDotEnv(filepath.Join(cfg.ProjectPath, ".env"))
	if err != nil {
		return nil, err
	}
	cfg.loadEnv(env)

	cfg.Apply(o)
	return cfg, nil
}

// readDotEnv reads a .env file without touching the process environment. A missing file is not an error.
func readDotEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return env, nil
}

// loadSettings reads testcafeTestRunner.* keys from the editor settings file.
// Values of the wrong type are treated as absent.
func (c *Config) loadSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}

	get := func(key string) any { return settings[SettingsSection+"."+key] }

	if v, ok := get("workspaceRoot").(string); ok && v != "" {
		c.WorkspaceRoot = v
	}
	if v, ok := get("useLiveRunner").(bool); ok {
		c.UseLiveRunner = v
	}
	if v, ok := get("useHeadlessMode").(bool); ok {
		c.UseHeadlessMode = v
	}
	if v, ok := get("customArguments").(string); ok {
		c.CustomArguments = &v
	}
	if v, ok := get("portableFirefoxPath").(string); ok {
		c.PortableFirefoxPath = v
	}
	if v, ok := get("portableChromePath").(string); ok {
		c.PortableChromePath = v
	}
	return nil
}

// loadEnv applies TESTCAFE_RUNNER_* values. The process environment wins over the .env file.
func (c *Config) loadEnv(dotenv map[string]string) {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}
	lookupBool := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	if v, ok := lookup("WORKSPACE_ROOT"); ok && v != "" {
		c.WorkspaceRoot = v
	}
	lookupBool("USE_LIVE_RUNNER", &c.UseLiveRunner)
	lookupBool("USE_HEADLESS_MODE", &c.UseHeadlessMode)
	if v, ok := lookup("CUSTOM_ARGUMENTS"); ok {
		c.CustomArguments = &v
	}
	if v, ok := lookup("PORTABLE_FIREFOX_PATH"); ok {
		c.PortableFirefoxPath = v
	}
	if v, ok := lookup("PORTABLE_CHROME_PATH"); ok {
		c.PortableChromePath = v
	}
	if v, ok := lookup("NODE_PATH"); ok && v != "" {
		c.NodePath = v
	}
}
