// Package txt provides text formatting helpers.
package txt

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/mateconpizza/dejavu/internal/ui/color"
)

const (
	UnicodeBulletPoint = "•"
	UnicodeCheckMark   = "✓"
	UnicodeBallotX     = "✗"
	UnicodeMiddleDot   = "·"
)

const ellipsis = "..."

// spaces returns a string with n spaces.
func spaces(n int) string {
	return fmt.Sprintf("%*s", n, "")
}

// PaddedLine formats a label and value into a left-aligned line with fixed
// padding.
func PaddedLine(s, v any) string {
	const pad = 12

	str := fmt.Sprint(s)
	visibleLen := runewidth.StringWidth(color.RemoveANSICodes(str))
	padding := max(pad-visibleLen, 0)

	return fmt.Sprintf("%s%s %v", str, spaces(padding), v)
}

// Oneline collapses every run of whitespace, newlines included, into a
// single space.
func Oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Shorten shortens a string to a maximum display width.
//
//	string...
func Shorten(s string, maxWidth int) string {
	s = Oneline(s)
	if maxWidth <= 0 {
		return s
	}

	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// Age returns a human readable age for t relative to now.
func Age(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return humanize.Time(t)
}

// Plural returns singular or plural depending on n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}

	return plural
}
