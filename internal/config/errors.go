// Package config provides configuration loading and validation for the CLI.
package config

import "fmt"

// Error represents a configuration problem: an unreadable config file, an
// invalid value, or a missing external tool.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
