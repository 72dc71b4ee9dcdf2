package domain

import "testing"

func TestRunSession_Complete(t *testing.T) {
	tests := []struct {
		name     string
		session  *RunSession
		expected bool
	}{
		{name: "nil session", session: nil, expected: false},
		{name: "empty session", session: &RunSession{}, expected: false},
		{name: "file run without name", session: &RunSession{Browser: Browser{Name: "chrome"}, File: "a.js", Kind: KindFile}, expected: true},
		{name: "test run without name", session: &RunSession{Browser: Browser{Name: "chrome"}, File: "a.js", Kind: KindTest}, expected: false},
		{name: "test run", session: &RunSession{Browser: Browser{Name: "chrome"}, File: "a.js", Kind: KindTest, Name: "x"}, expected: true},
		{name: "missing file", session: &RunSession{Browser: Browser{Name: "chrome"}, Kind: KindFixture, Name: "x"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Complete(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		alias    string
		expected Browser
		ok       bool
	}{
		{alias: "chrome", expected: Browser{Name: "chrome"}, ok: true},
		{alias: "chrome-canary", expected: Browser{Name: "chrome-canary"}, ok: true},
		{alias: "portableFirefox", expected: Browser{Name: PortableFirefox, IsPortable: true}, ok: true},
		{alias: "portablechrome", expected: Browser{Name: PortableChrome, IsPortable: true}, ok: true},
		{alias: "netscape", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, ok := ParseBrowser(tt.alias)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("ParseBrowser(%q) = %+v, %v; expected %+v, %v", tt.alias, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestKind_Flag(t *testing.T) {
	if KindTest.Flag() != "--test" || KindFixture.Flag() != "--fixture" {
		t.Errorf("unexpected flags %q %q", KindTest.Flag(), KindFixture.Flag())
	}
	if KindNone.Valid() {
		t.Error("empty kind must not be valid")
	}
}
