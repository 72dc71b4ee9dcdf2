package discovery

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"tcr/internal/domain"
)

// browserLocation lists where an alias may be installed
type browserLocation struct {
	commands []string // Executable names looked up on PATH
	paths    []string // Absolute install paths
}

// BrowserDetector finds which browser aliases are installed on this machine
type BrowserDetector struct {
	locations    map[string]browserLocation
	portablePath func(alias string) (string, bool)
	lookPath     func(file string) (string, error)
	stat         func(name string) (os.FileInfo, error)
}

// NewBrowserDetector creates a detector for the current OS. portablePath resolves the
// configured path of a portable browser alias.
func NewBrowserDetector(portablePath func(alias string) (string, bool)) *BrowserDetector {
	return &BrowserDetector{
		locations:    browserLocations(runtime.GOOS),
		portablePath: portablePath,
		lookPath:     exec.LookPath,
		stat:         os.Stat,
	}
}

// Detect checks every known alias concurrently and reports which are installed.
// Portable aliases count as installed when a path is configured for them.
func (d *BrowserDetector) Detect(ctx context.Context) (map[string]bool, error) {
	var mu sync.Mutex
	installed := make(map[string]bool, len(domain.BrowserAliases)+len(domain.PortableBrowsers))

	g, ctx := errgroup.WithContext(ctx)
	for _, alias := range domain.BrowserAliases {
		alias := alias
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found := d.isInstalled(alias)
			mu.Lock()
			installed[alias] = found
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, alias := range domain.PortableBrowsers {
		path, ok := "", false
		if d.portablePath != nil {
			path, ok = d.portablePath(alias)
		}
		installed[alias] = ok && path != ""
	}
	return installed, nil
}

func (d *BrowserDetector) isInstalled(alias string) bool {
	loc, ok := d.locations[alias]
	if !ok {
		return false
	}
	for _, cmd := range loc.commands {
		if _, err := d.lookPath(cmd); err == nil {
			return true
		}
	}
	for _, p := range loc.paths {
		if _, err := d.stat(p); err == nil {
			return true
		}
	}
	return false
}

// InstalledAliases returns the sorted aliases marked installed
func InstalledAliases(installed map[string]bool) []string {
	aliases := lo.Filter(lo.Keys(installed), func(alias string, _ int) bool {
		return installed[alias]
	})
	sort.Strings(aliases)
	return aliases
}

func browserLocations(goos string) map[string]browserLocation {
	switch goos {
	case "darwin":
		app := func(name, binary string) string {
			return filepath.Join("/Applications", name+".app", "Contents", "MacOS", binary)
		}
		return map[string]browserLocation{
			"firefox":       {paths: []string{app("Firefox", "firefox")}},
			"chrome":        {paths: []string{app("Google Chrome", "Google Chrome")}},
			"chrome-canary": {paths: []string{app("Google Chrome Canary", "Google Chrome Canary")}},
			"chromium":      {paths: []string{app("Chromium", "Chromium")}},
			"opera":         {paths: []string{app("Opera", "Opera")}},
			"safari":        {paths: []string{"/Applications/Safari.app"}},
			"edge":          {paths: []string{app("Microsoft Edge", "Microsoft Edge")}},
		}
	case "windows":
		var roots []string
		for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)", "LOCALAPPDATA"} {
			if dir := os.Getenv(env); dir != "" {
				roots = append(roots, dir)
			}
		}
		under := func(rel ...string) []string {
			return lo.Map(roots, func(root string, _ int) string {
				return filepath.Join(append([]string{root}, rel...)...)
			})
		}
		return map[string]browserLocation{
			"ie":            {paths: under("Internet Explorer", "iexplore.exe")},
			"firefox":       {commands: []string{"firefox.exe"}, paths: under("Mozilla Firefox", "firefox.exe")},
			"chrome":        {commands: []string{"chrome.exe"}, paths: under("Google", "Chrome", "Application", "chrome.exe")},
			"chrome-canary": {paths: under("Google", "Chrome SxS", "Application", "chrome.exe")},
			"chromium":      {paths: under("Chromium", "Application", "chrome.exe")},
			"opera":         {paths: under("Programs", "Opera", "launcher.exe")},
			"edge":          {commands: []string{"msedge.exe"}, paths: under("Microsoft", "Edge", "Application", "msedge.exe")},
		}
	default:
		return map[string]browserLocation{
			"firefox":       {commands: []string{"firefox"}},
			"chrome":        {commands: []string{"google-chrome", "google-chrome-stable"}},
			"chrome-canary": {commands: []string{"google-chrome-unstable", "google-chrome-canary"}},
			"chromium":      {commands: []string{"chromium", "chromium-browser"}},
			"opera":         {commands: []string{"opera"}},
			"edge":          {commands: []string{"microsoft-edge", "microsoft-edge-stable"}},
		}
	}
}
