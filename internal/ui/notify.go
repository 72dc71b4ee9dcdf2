package ui

import (
	"io"

	"github.com/fatih/color"
)

// Notifier shows user-facing messages
type Notifier struct {
	err     io.Writer
	verbose bool
}

// NewNotifier creates a Notifier writing to stderr
func NewNotifier(verbose bool) *Notifier {
	return &Notifier{err: color.Error, verbose: verbose}
}

// Error reports a failed command
func (n *Notifier) Error(err error) {
	color.New(color.FgRed).Fprintf(n.err, "✗ %v\n", err)
}

// Warn reports something the user may want to fix
func (n *Notifier) Warn(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(n.err, format+"\n", args...)
}

// Debug prints only in verbose mode
func (n *Notifier) Debug(format string, args ...any) {
	if !n.verbose {
		return
	}
	color.New(color.FgHiBlack).Fprintf(n.err, "· "+format+"\n", args...)
}

// SetVerbose toggles Debug output once flags are parsed
func (n *Notifier) SetVerbose(verbose bool) {
	n.verbose = verbose
}
