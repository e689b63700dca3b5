// Package printer renders stored solutions for the terminal.
package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mateconpizza/dejavu/internal/solution"
	"github.com/mateconpizza/dejavu/internal/ui/color"
	"github.com/mateconpizza/dejavu/internal/ui/txt"
)

// Preview widths.
var (
	AddTitleWidth  = 50
	FindTitleWidth = 60
	BodyWidth      = 80
	ListTitleWidth = 50
)

// minPreview keeps previews readable on narrow terminals.
const minPreview = 20

// FitWidth shrinks the preview widths so a line fits in a terminal of w
// columns. Widths never grow.
func FitWidth(w int) {
	// room for the entry number and the padded label
	const indent = 16
	fit := func(n int) int {
		return max(min(n, w-indent), minPreview)
	}

	AddTitleWidth = fit(AddTitleWidth)
	FindTitleWidth = fit(FindTitleWidth)
	BodyWidth = fit(BodyWidth)
	ListTitleWidth = fit(ListTitleWidth)
}

var (
	ErrNilResult      = errors.New("nil add result")
	ErrUnknownOutcome = errors.New("unknown outcome")
)

// AddResult prints the outcome of saving a solution.
func AddResult(w io.Writer, res *solution.AddResult) error {
	if res == nil || res.Record == nil {
		return ErrNilResult
	}

	var s string
	switch res.Outcome {
	case solution.Added:
		mark := color.BrightGreen(txt.UnicodeCheckMark).Bold()
		s = fmt.Sprintf("%s Saved: %s\n", mark, txt.Shorten(res.Record.Title, AddTitleWidth))
	case solution.Duplicate:
		mark := color.BrightRed(txt.UnicodeBallotX).Bold()
		s = fmt.Sprintf("%s Already saved (you've been here before)\n", mark)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOutcome, res.Outcome)
	}

	_, err := io.WriteString(w, s)

	return err
}

// Found prints the result of a search, showing at most limit entries. A
// limit of zero or less shows every match.
func Found(w io.Writer, term string, rows []solution.Solution, limit int) error {
	var sb strings.Builder
	if len(rows) == 0 {
		fmt.Fprintf(&sb, "No déjà vu for '%s' (this time it's new!)\n", term)
		_, err := io.WriteString(w, sb.String())

		return err
	}

	n := len(rows)
	if limit > 0 {
		n = min(n, limit)
	}

	header := color.BrightBlue(fmt.Sprintf("Found %d déjà vu(s):", len(rows))).Bold()
	fmt.Fprintf(&sb, "%s\n\n", header)

	pad := strings.Repeat(" ", len(strconv.Itoa(n))+2)
	for i, s := range rows[:n] {
		title := color.Default(txt.Shorten(s.Title, FindTitleWidth)).Bold()
		used := color.Gray(fmt.Sprintf("(used %d times)", s.UseCount)).Italic()
		fmt.Fprintf(&sb, "%d. %s %s\n", i+1, title, used)
		fmt.Fprintf(&sb, "%s%s\n", pad, txt.PaddedLine("URL:", color.Blue(s.URL)))
		fmt.Fprintf(&sb, "%s%s\n\n", pad, txt.PaddedLine("Solution:", txt.Shorten(s.Body, BodyWidth)))
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// List prints every stored solution as a bullet list.
func List(w io.Writer, rows []solution.Solution) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, "Memory empty (like after reading complex regex)\n")
		return err
	}

	var sb strings.Builder
	items := txt.Plural(len(rows), "item", "items")
	header := color.BrightBlue(fmt.Sprintf("Your StackOverflow Memory (%d %s):", len(rows), items)).Bold()
	fmt.Fprintf(&sb, "%s\n", header)

	bullet := color.Magenta(txt.UnicodeBulletPoint)
	for _, s := range rows {
		fmt.Fprintf(&sb, "%s %s (used %dx)", bullet, txt.Shorten(s.Title, ListTitleWidth), s.UseCount)
		if age := txt.Age(s.AddedAt); age != "" {
			fmt.Fprintf(&sb, " %s", color.Gray(txt.UnicodeMiddleDot, age).Italic())
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
