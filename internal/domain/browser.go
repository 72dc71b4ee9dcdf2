package domain

import "strings"

// Browser identifies which browser profile to launch
type Browser struct {
	Name       string `json:"name"`
	IsPortable bool   `json:"is_portable,omitempty"`
}

// Known browser aliases understood by the runner
var BrowserAliases = []string{"ie", "firefox", "chrome", "chrome-canary", "chromium", "opera", "safari", "edge"}

const (
	PortableFirefox = "portableFirefox"
	PortableChrome  = "portableChrome"
)

// PortableBrowsers are aliases whose executable path comes from configuration
var PortableBrowsers = []string{PortableFirefox, PortableChrome}

// ParseBrowser maps a command-line alias to a Browser. Portable aliases are matched case-insensitively.
func ParseBrowser(alias string) (Browser, bool) {
	for _, p := range PortableBrowsers {
		if strings.EqualFold(alias, p) {
			return Browser{Name: p, IsPortable: true}, true
		}
	}
	for _, a := range BrowserAliases {
		if alias == a {
			return Browser{Name: a}, true
		}
	}
	return Browser{}, false
}
