// Package terminal reports properties of the attached terminal.
package terminal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/mateconpizza/dejavu/internal/sys"
)

var ErrNotTTY = errors.New("not a terminal")

// NoColorEnv reports whether the environment variable e, NO_COLOR by
// convention (https://no-color.org), is set to a non-empty value.
func NoColorEnv(e string) bool {
	if c := sys.Env(e, ""); c != "" {
		slog.Debug("no color environment variable found", "name", e)
		return true
	}

	return false
}

// IsPiped returns true if stdout is not a terminal.
func IsPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the terminal's width.
func Width() (int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, ErrNotTTY
	}

	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0, fmt.Errorf("getting console width: %w", err)
	}

	return w, nil
}
