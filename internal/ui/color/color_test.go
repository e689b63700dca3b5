//nolint:paralleltest //global state
package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorDisabled(t *testing.T) {
	Enable(false)
	assert.Equal(t, "hello world", BrightGreen("hello", "world").Bold().String())
	assert.Equal(t, "42", BrightRed(42).String())
}

func TestColorEnabled(t *testing.T) {
	Enable(true)
	defer Enable(false)

	s := Gray("note").Bold().Italic().String()
	assert.Equal(t, bold+italic+gray+"note"+reset, s)
	assert.Equal(t, "note", RemoveANSICodes(s))
}

func TestColorFnAssignable(t *testing.T) {
	Enable(false)
	fns := []ColorFn{Blue, Gray, Magenta, BrightBlue, BrightGreen, BrightRed, Default}
	for _, fn := range fns {
		assert.Equal(t, "a 1", fn("a", 1).String())
	}
}
