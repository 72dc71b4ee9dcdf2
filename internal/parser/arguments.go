package parser

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"tcr/internal/domain"
)

// HeadlessPostfix switches a browser alias to headless mode
const HeadlessPostfix = ":headless"

// argTokenPattern matches a bare run of non-space, non-quote characters or a "quoted span".
// There is no escape processing; an unbalanced quote is skipped.
var argTokenPattern = regexp.MustCompile(`[^\s"]+|"([^"]*)"`)

// browserFlagPrefixes are flags handed to the browser instead of the runner.
// A token is a browser flag when it starts with one of these (case-sensitive).
var browserFlagPrefixes = []string{
	"--ignore-certificate-errors",
	"--allow-insecure-localhost",
	"--disable-web-security",
	"--disable-dev-shm-usage",
	"--no-sandbox",
	"--disable-gpu",
	"--disable-setuid-sandbox",
	"--disable-software-rasterizer",
	"--disable-extensions",
	"--disable-background-networking",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-breakpad",
	"--disable-component-extensions-with-background-pages",
	"--disable-features",
	"--disable-ipc-flooding-protection",
	"--disable-renderer-backgrounding",
	"--force-color-profile",
	"--metrics-recording-only",
	"--mute-audio",
	"--use-fake-ui-for-media-stream",
	"--use-fake-device-for-media-stream",
	"--autoplay-policy",
	"--window-size",
	"--window-position",
	"--user-agent",
	"--lang",
	"--proxy-server",
	"--proxy-bypass-list",
}

// Tokenize splits a custom-arguments string with shell-like quoting
func Tokenize(customArguments string) []string {
	var tokens []string
	for _, m := range argTokenPattern.FindAllStringSubmatch(customArguments, -1) {
		// An empty quoted span keeps its quotes, as there is nothing to unwrap
		if m[1] != "" {
			tokens = append(tokens, m[1])
		} else {
			tokens = append(tokens, m[0])
		}
	}
	return tokens
}

// IsBrowserFlag reports whether arg is passed to the browser rather than the runner
func IsBrowserFlag(arg string) bool {
	return lo.SomeBy(browserFlagPrefixes, func(prefix string) bool {
		return strings.HasPrefix(arg, prefix)
	})
}

// Partition splits custom arguments into browser flags and runner flags.
// A nil customArguments means the setting is absent or not a string.
func Partition(customArguments *string, headlessSetting bool) domain.PartitionResult {
	result := domain.PartitionResult{HeadlessRequested: headlessSetting}
	if customArguments == nil {
		return result
	}

	tokens := Tokenize(*customArguments)
	result.HeadlessRequested = headlessSetting || lo.Contains(tokens, HeadlessPostfix)

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		// Already folded into the browser alias
		if token == HeadlessPostfix {
			continue
		}

		if !IsBrowserFlag(token) {
			result.RunnerFlags = append(result.RunnerFlags, token)
			continue
		}

		result.BrowserFlags = append(result.BrowserFlags, token)
		if strings.Contains(token, "=") {
			continue
		}
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
			result.BrowserFlags = append(result.BrowserFlags, tokens[i+1])
			i++
		}
	}

	return result
}

// QuoteBrowserFlags wraps flag values that contain a space in double quotes
func QuoteBrowserFlags(flags []string) []string {
	return lo.Map(flags, func(flag string, _ int) string {
		if strings.Contains(flag, " ") && !strings.HasPrefix(flag, "--") {
			return `"` + flag + `"`
		}
		return flag
	})
}

// BrowserArg builds the runner's browser argument: the alias (or a path: spec for a
// portable browser), the headless postfix and the quoted browser flags.
func BrowserArg(browser domain.Browser, portablePath string, result domain.PartitionResult) string {
	arg := browser.Name
	if browser.IsPortable {
		arg = "path:`" + portablePath + "`"
	}
	if result.HeadlessRequested {
		arg += HeadlessPostfix
	}
	if len(result.BrowserFlags) > 0 {
		arg += " " + strings.Join(QuoteBrowserFlags(result.BrowserFlags), " ")
	}
	return arg
}
