// Package frame provides a small text framing utility for console output,
// with borders and status icons.
package frame

import (
	"fmt"
	"io"
	"strings"

	"github.com/mateconpizza/dejavu/internal/ui/color"
)

var defaultBorders = &FrameBorders{
	Header: "+ ",
	Row:    "| ",
	Footer: "+ ",
}

// OptFn is an option function for the frame.
type OptFn func(*Options)

type FrameBorders struct {
	Header, Row, Footer string
}

type Options struct {
	Border *FrameBorders
	color  color.ColorFn
	text   []string
	icon   *icon
}

type Frame struct {
	Options
}

type icon struct {
	error   string
	info    string
	success string
}

// defaultOpts returns the default frame options.
func defaultOpts() Options {
	return Options{
		Border: defaultBorders,
		text:   make([]string, 0),
		icon: &icon{
			error:   "✗",
			info:    "i",
			success: "✓",
		},
	}
}

func WithColorBorder(c color.ColorFn) OptFn {
	return func(o *Options) {
		o.color = c
	}
}

func (f *Frame) Text(t ...string) *Frame {
	f.text = append(f.text, t...)
	return f
}

// Ln adds a new line.
func (f *Frame) Ln() *Frame {
	return f.Text("\n")
}

func (f *Frame) applyStyle(s string) string {
	if f.color != nil {
		return f.color(s).String()
	}

	return s
}

// applyBorder applies the border to the first element. The rest elements are
// Row.
func (f *Frame) applyBorder(border string, s []string) *Frame {
	if len(s) == 0 {
		return f.Text(border)
	}

	f.Text(border, s[0])
	for _, line := range s[1:] {
		f.Ln().Row(line)
	}

	return f
}

func (f *Frame) Row(s ...string) *Frame {
	return f.applyBorder(f.applyStyle(f.Border.Row), s)
}

func (f *Frame) Rowln(s ...string) *Frame {
	return f.Row(s...).Ln()
}

func (f *Frame) Footerln(s ...string) *Frame {
	return f.applyBorder(f.applyStyle(f.Border.Footer), s).Ln()
}

func (f *Frame) Error(s ...string) *Frame {
	e := color.BrightRed(f.icon.error).Bold().String()
	return f.applyBorder(f.applyStyle(f.Border.Header)+e+" ", s)
}

func (f *Frame) Success(s ...string) *Frame {
	e := color.BrightGreen(f.icon.success).Bold().String()
	return f.applyBorder(f.applyStyle(f.Border.Header)+e+" ", s)
}

func (f *Frame) Info(s ...string) *Frame {
	e := color.BrightBlue(f.icon.info).Bold().String()
	return f.applyBorder(f.applyStyle(f.Border.Header)+e+" ", s)
}

// Flush writes the frame to w and clears it.
func (f *Frame) Flush(w io.Writer) error {
	_, err := io.WriteString(w, f.String())
	f.Reset()

	if err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}

	return nil
}

// Reset clears the frame.
func (f *Frame) Reset() *Frame {
	f.text = make([]string, 0)
	return f
}

func (f *Frame) String() string {
	return strings.Join(f.text, "")
}

func New(opts ...OptFn) *Frame {
	o := defaultOpts()
	for _, fn := range opts {
		fn(&o)
	}

	return &Frame{Options: o}
}
