package mimeglob

import "github.com/arthur-debert/mimeglob/pkg/errors"

// Exit statuses of the mimeglob binary
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an Execute error to a process status. Invalid arguments and
// invalid configuration are usage errors; a probe without a match is a
// plain failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidInput, errors.ErrConfigValid, errors.ErrOutputFormat:
		return ExitUsage
	}
	return ExitFailure
}

// Silent reports whether err was already reported on stdout
func Silent(err error) bool {
	return errors.IsErrorCode(err, errors.ErrNoMatch)
}
