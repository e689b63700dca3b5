// Package sys wraps interactions with the host system.
package sys

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	ErrCopyToClipboard   = errors.New("copy to clipboard")
	ErrOpenInBrowser     = errors.New("open in browser")
	ErrInvalidInvocation = errors.New("invalid command")
)

// Env retrieves an environment variable.
//
// If the environment variable is not set, returns the default value.
func Env(s, def string) string {
	if v, ok := os.LookupEnv(s); ok {
		return v
	}

	return def
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidInvocation):
		return ExitUsage
	default:
		return ExitError
	}
}

// ErrAndExit prints the error to stderr and exits with the matching code.
func ErrAndExit(name string, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
	os.Exit(ExitCode(err))
}

// OpenInBrowser opens a URL in the default browser.
func OpenInBrowser(s string) error {
	if err := browser.OpenURL(s); err != nil {
		return fmt.Errorf("%w: %w", ErrOpenInBrowser, err)
	}

	return nil
}

// CopyClipboard copies a string to the clipboard.
func CopyClipboard(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyToClipboard, err)
	}

	slog.Debug("text copied to clipboard", "text", s)

	return nil
}
