package sys

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		def   string
		set   bool
	}{
		{name: "EnvSet", key: "DEJAVU_TEST_KEY", value: "testValue", set: true},
		{name: "EnvSetEmpty", key: "DEJAVU_TEST_KEY", value: "", def: "fallback", set: true},
		{name: "EnvNotSet", key: "DEJAVU_TEST_UNSET", value: "fallback", def: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(tt.key, tt.value)
			}
			assert.Equal(t, tt.value, Env(tt.key, tt.def))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{ErrInvalidInvocation, ExitUsage},
		{fmt.Errorf("%w: unknown command %q", ErrInvalidInvocation, "foo"), ExitUsage},
		{errors.New("storage unavailable"), ExitError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "error: %v", tt.err)
	}
}
