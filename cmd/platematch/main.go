package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // Matches were ranked and written
	ExitNoMatches = 1 // Run completed but the catalog had no records
	ExitError     = 2 // Configuration or runtime error
)

// NoMatchesError indicates that the run completed successfully but the
// result set is empty (an empty catalog).
type NoMatchesError struct {
	Message string
}

func (e *NoMatchesError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var noMatchesErr *NoMatchesError
		if errors.As(err, &noMatchesErr) {
			os.Exit(ExitNoMatches)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
