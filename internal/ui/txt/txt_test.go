package txt

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "Null pointer", 50, "Null pointer"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdefghij", 8, "abcde..."},
		{"newlines", "line one\nline   two", 50, "line one line two"},
		{"no limit", "keep everything", 0, "keep everything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Shorten(tt.in, tt.max))
		})
	}
}

func TestShortenWideRunes(t *testing.T) {
	t.Parallel()
	s := strings.Repeat("日本", 20)
	got := Shorten(s, 11)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 11)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestPaddedLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "URL:         https://x/1", PaddedLine("URL:", "https://x/1"))
	long := strings.Repeat("x", 20)
	assert.Equal(t, long+" v", PaddedLine(long, "v"))
}

func TestOneline(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b c", Oneline("  a\n\tb  c \n"))
}

func TestAge(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Age(time.Time{}))
	assert.Equal(t, "2 hours ago", Age(time.Now().Add(-2*time.Hour)))
}

func TestPlural(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "item", Plural(1, "item", "items"))
	assert.Equal(t, "items", Plural(0, "item", "items"))
	assert.Equal(t, "items", Plural(3, "item", "items"))
}
