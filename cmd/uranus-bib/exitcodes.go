package main

import (
	"errors"

	"github.com/uranus-web/uranus-bib/internal/bib"
	"github.com/uranus-web/uranus-bib/internal/paper"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, unknown format, I/O failure)
	ExitConfigError = 2 // Config file missing or malformed
	ExitDataError   = 3 // Malformed bibliography, entry missing a required field, or check found issues
)

// errConfig marks errors from loading the config file.
var errConfig = errors.New("config error")

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, paper.ErrMissingField), errors.Is(err, bib.ErrSyntax):
		return ExitDataError
	default:
		return ExitError
	}
}
