package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"sentinel", NewExitError(ErrNotFound, ExitUser), "resource not found"},
		{"stdlib wrap", NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser), "loading config: invalid configuration"},
		{"cockroach wrap", NewUserError(Wrap(ErrValidationFailed, "delegate.yaml"), ""), "delegate.yaml: validation failed"},
		{"nil error", NewExitError(nil, ExitSystem), "exit code 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitError_Chain(t *testing.T) {
	err := NewUserError(Wrapf(ErrUnknownCategory, "%q", "Sports"), "Valid categories: All, Political")

	assert.True(t, Is(err, ErrUnknownCategory))
	assert.False(t, Is(err, ErrNotFound))
	assert.True(t, stderrors.Is(err, ErrUnknownCategory), "stdlib errors.Is must see through ExitError")

	var exitErr *ExitError
	require.True(t, As(fmt.Errorf("running committees: %w", err), &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "Valid categories: All, Political", exitErr.Suggestion)
}

func TestConstructors(t *testing.T) {
	cause := New("boom")

	user := NewUserError(cause, "try again")
	assert.Equal(t, ExitUser, user.Code)
	assert.Equal(t, "try again", user.Suggestion)

	sys := NewSystemError(cause, "check permissions")
	assert.Equal(t, ExitSystem, sys.Code)
	assert.Equal(t, "check permissions", sys.Suggestion)

	cfg := NewConfigError(cause)
	assert.Equal(t, ExitUser, cfg.Code)
	assert.Equal(t, "Run: munconf config show", cfg.Suggestion)
	assert.Same(t, cause, cfg.Err)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", New("disk on fire"), ExitSystem},
		{"user error", NewUserError(ErrUnsupportedFormat, ""), ExitUser},
		{"wrapped user error", Wrap(NewUserError(ErrNotFound, ""), "register validate"), ExitUser},
		{"system error", NewSystemError(New("io"), ""), ExitSystem},
		{"explicit code", NewExitError(ErrValidationFailed, ExitUser), ExitUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestSuggestionOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"none", New("plain"), ""},
		{"exit error", NewUserError(ErrNotFound, "Check the path"), "Check the path"},
		{"hint", WithHint(New("too big"), "Split the file"), "Split the file"},
		{"wrapped hint", Wrap(WithHint(ErrNotFound, "Create it"), "watching"), "Create it"},
		{"suggestion wins over hint", NewUserError(WithHint(ErrNotFound, "hint"), "suggestion"), "suggestion"},
		{"empty suggestion falls back to hint", NewSystemError(WithHint(New("x"), "hint"), ""), "hint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestionOf(tt.err))
		})
	}
}

func TestReported(t *testing.T) {
	assert.True(t, Reported(NewExitError(ErrValidationFailed, ExitUser)))
	assert.True(t, Reported(Wrap(ErrValidationFailed, "delegate.yaml")))
	assert.False(t, Reported(NewUserError(New("Please enter a valid email address"), "")))
	assert.False(t, Reported(nil))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidConfig, ErrUnsupportedFormat, ErrValidationFailed, ErrUnknownCategory}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, Is(a, b), "Is(%v, %v)", a, b)
		}
	}
}
