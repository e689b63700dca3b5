// Package solution holds the record saved for every remembered fix.
package solution

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// New creates a new solution stamped with the current time and a zero
// use count.
func New(u, title, body string) *Solution {
	return &Solution{
		URL:     strings.TrimSpace(u),
		Title:   strings.TrimSpace(title),
		Body:    strings.TrimSpace(body),
		AddedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Validate checks that every text field has content.
func Validate(s *Solution) error {
	var err error

	switch {
	case s.URL == "":
		err = ErrURLEmpty
	case s.Title == "":
		err = ErrTitleEmpty
	case s.Body == "":
		err = ErrSolutionEmpty
	}

	if err != nil {
		slog.Debug("solution is invalid", "url", s.URL, "error", err)
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// JoinWords joins the words of a solution given as separate arguments with a
// single space.
func JoinWords(words []string) string {
	return strings.Join(words, " ")
}
