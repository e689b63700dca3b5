// Package color provides utilities for formatting and coloring text
// output in the terminal
package color

import (
	"fmt"
	"regexp"
	"strings"
)

type ColorFn func(arg ...any) *Color

const (
	// normal colors.
	blue    = "\x1b[34m"
	gray    = "\x1b[90m"
	magenta = "\x1b[95m"

	// bright colors.
	brightBlue  = "\x1b[94m"
	brightGreen = "\x1b[92m"
	brightRed   = "\x1b[91m"
	brightWhite = "\x1b[97m"

	// styles.
	bold   = "\x1b[1m"
	italic = "\x1b[3m"

	// reset colors.
	reset = "\x1b[0m"
)

var enabled = false

var ansiCodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Enable turns color output on or off.
func Enable(b bool) {
	enabled = b
}

// Color represents styled text with a specific color and formatting styles.
type Color struct {
	text   string
	color  string
	styles []string
}

func (c *Color) applyStyle(styles ...string) *Color {
	c.styles = append(c.styles, styles...)
	return c
}

func (c *Color) Bold() *Color {
	return c.applyStyle(bold)
}

func (c *Color) Italic() *Color {
	return c.applyStyle(italic)
}

func (c *Color) String() string {
	if !enabled {
		return c.text
	}
	styles := strings.Join(c.styles, "")

	return fmt.Sprintf("%s%s%s%s", styles, c.color, c.text, reset)
}

func Blue(arg ...any) *Color {
	return addColor(blue, arg...)
}

func Gray(arg ...any) *Color {
	return addColor(gray, arg...)
}

func Magenta(arg ...any) *Color {
	return addColor(magenta, arg...)
}

func BrightBlue(arg ...any) *Color {
	return addColor(brightBlue, arg...)
}

func BrightGreen(arg ...any) *Color {
	return addColor(brightGreen, arg...)
}

func BrightRed(arg ...any) *Color {
	return addColor(brightRed, arg...)
}

func Default(arg ...any) *Color {
	return addColor(brightWhite, arg...)
}

func addColor(c string, arg ...any) *Color {
	return &Color{text: join(arg...), color: c}
}

func join(text ...any) string {
	str := make([]string, 0, len(text))
	for _, t := range text {
		str = append(str, fmt.Sprint(t))
	}

	return strings.Join(str, " ")
}

// RemoveANSICodes removes ANSI codes from a given string.
func RemoveANSICodes(s string) string {
	return ansiCodes.ReplaceAllString(s, "")
}
