package execution

import (
	"errors"
	"fmt"

	"tcr/internal/config"
)

var (
	// ErrNoTarget is returned when no test or fixture encloses the cursor
	ErrNoTarget = errors.New("no tests found. Position the cursor inside a test() function or fixture")
	// ErrNoPreviousRun is returned by a repeat when nothing complete was run before
	ErrNoPreviousRun = errors.New("previous test is not found")
	// ErrUnsupportedDocument is returned for documents that are not JavaScript or TypeScript
	ErrUnsupportedDocument = errors.New("only JavaScript and TypeScript files can be run")
	// ErrPortablePathNotSet is returned when a portable browser has no configured path
	ErrPortablePathNotSet = errors.New("portable browser path is not set")
)

// MissingCLIError reports that the runner entry point does not exist
type MissingCLIError struct {
	Path string
}

func (e *MissingCLIError) Error() string {
	return fmt.Sprintf("TestCafe package is not found at path %s. Install the testcafe package in your working directory or set the %q property",
		e.Path, config.SettingsSection+".workspaceRoot")
}
