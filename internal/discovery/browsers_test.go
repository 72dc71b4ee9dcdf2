package discovery

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeDetector(onPath, onDisk map[string]bool, portable map[string]string) *BrowserDetector {
	return &BrowserDetector{
		locations: map[string]browserLocation{
			"chrome":  {commands: []string{"google-chrome"}},
			"firefox": {commands: []string{"firefox"}, paths: []string{"/opt/firefox/firefox"}},
			"safari":  {paths: []string{"/Applications/Safari.app"}},
		},
		portablePath: func(alias string) (string, bool) {
			p, ok := portable[alias]
			return p, ok
		},
		lookPath: func(file string) (string, error) {
			if onPath[file] {
				return "/usr/bin/" + file, nil
			}
			return "", errors.New("not found")
		},
		stat: func(name string) (os.FileInfo, error) {
			if onDisk[name] {
				return nil, nil
			}
			return nil, os.ErrNotExist
		},
	}
}

func TestBrowserDetector_Detect(t *testing.T) {
	d := fakeDetector(
		map[string]bool{"google-chrome": true},
		map[string]bool{"/opt/firefox/firefox": true},
		map[string]string{"portableChrome": "/opt/portable/chrome"},
	)

	installed, err := d.Detect(context.Background())
	require.NoError(t, err)

	assert.True(t, installed["chrome"])
	assert.True(t, installed["firefox"], "found by install path")
	assert.False(t, installed["safari"])
	assert.False(t, installed["opera"], "aliases without locations are not installed")
	assert.True(t, installed["portableChrome"])
	assert.False(t, installed["portableFirefox"])

	assert.Equal(t, []string{"chrome", "firefox", "portableChrome"}, InstalledAliases(installed))
}

func TestBrowserDetector_DetectCancelled(t *testing.T) {
	d := fakeDetector(nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Detect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
