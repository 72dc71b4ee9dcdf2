package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"tcr/internal/domain"
)

// Formatter formats and displays command output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: color.Output}
}

// NewFormatterTo creates a Formatter writing to w
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintDeclarations prints the fixture/test outline of a file.
// Tests are indented under the nearest preceding fixture, the same grouping the locator uses.
func (f *Formatter) PrintDeclarations(path string, text string, decls []domain.Declaration) {
	color.New(color.FgCyan, color.Bold).Fprintf(f.out, "%s\n", path)
	if len(decls) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "  (no fixtures or tests)")
		return
	}

	for _, d := range decls {
		line, col := position(text, d.Offset)
		loc := color.HiBlackString("%d:%d", line+1, col+1)
		switch d.Kind {
		case domain.KindFixture:
			fmt.Fprintf(f.out, "  %s %s %s\n", color.MagentaString("fixture"), d.Name, loc)
		default:
			fmt.Fprintf(f.out, "    %s %s %s\n", color.GreenString("test"), d.Name, loc)
		}
	}
}

// position converts a byte offset into a zero-based line and character column
func position(text string, offset int) (int, int) {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n")
	start := strings.LastIndexByte(before, '\n') + 1
	return line, len([]rune(before[start:]))
}

// PrintBrowsers prints a table of browser aliases and whether each is installed
func (f *Formatter) PrintBrowsers(installed map[string]bool) {
	aliases := make([]string, 0, len(installed))
	for alias := range installed {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	fmt.Fprintln(f.out, "┌──────────────────────┬─────────────┐")
	fmt.Fprintf(f.out, "│ %-20s │ %-11s │\n", "Browser", "Status")
	fmt.Fprintln(f.out, "├──────────────────────┼─────────────┤")
	for _, alias := range aliases {
		status := color.RedString("%-11s", "missing")
		if installed[alias] {
			status = color.GreenString("%-11s", "installed")
		}
		fmt.Fprintf(f.out, "│ %-20s │ %s │\n", alias, status)
	}
	fmt.Fprintln(f.out, "└──────────────────────┴─────────────┘")
}

// PrintSession prints the last recorded run
func (f *Formatter) PrintSession(s *domain.RunSession) {
	if !s.Complete() {
		color.New(color.FgYellow).Fprintln(f.out, "No previous run")
		return
	}
	target := string(s.Kind)
	if s.Kind != domain.KindFile {
		target = fmt.Sprintf("%s %q", s.Kind, s.Name)
	}
	fmt.Fprintf(f.out, "Last run: %s in %s (%s)\n", target, s.Browser.Name, s.File)
}

// PrintJSON writes v as indented JSON
func (f *Formatter) PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}

