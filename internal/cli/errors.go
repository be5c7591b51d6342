package cli

import (
	"errors"
	"fmt"
	"strings"
)

// PreflightError is a user-facing error with a hint and suggested next step.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
	Err      error
}

func (e *PreflightError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

func formatError(err error) string {
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		return "Error: " + err.Error()
	}

	lines := []string{"Error: " + preflight.Error()}
	if preflight.Hint != "" {
		lines = append(lines, "Hint: "+preflight.Hint)
	}
	if preflight.NextStep != "" {
		lines = append(lines, "Next: "+preflight.NextStep)
	}
	return strings.Join(lines, "\n")
}
