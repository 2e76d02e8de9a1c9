package styles

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleErrorFormat(t *testing.T) {
	err := NewError(ErrUnknownProperty, "no table-level property \"bold\"")
	assert.Equal(t, `[UNKNOWN_PROPERTY] no table-level property "bold"`, err.Error())

	wrapped := WrapError(errors.New("boom"), ErrInvalidStyle, "check failed")
	assert.Equal(t, "[INVALID_STYLE] check failed: boom", wrapped.Error())
}

func TestStyleErrorMatching(t *testing.T) {
	err := NewErrorf(ErrUnknownProperty, "no table-level property %q", "sep")

	assert.True(t, errors.Is(err, NewError(ErrUnknownProperty, "different message")))
	assert.False(t, errors.Is(err, NewError(ErrInvalidStyle, "different code")))

	assert.True(t, IsErrorCode(err, ErrUnknownProperty))
	assert.False(t, IsErrorCode(err, ErrInvalidStyle))
	assert.Equal(t, ErrUnknownProperty, GetErrorCode(err))
}

func TestStyleErrorThroughWrapping(t *testing.T) {
	inner := NewError(ErrInvalidStyle, "bad document")
	outer := fmt.Errorf("loading styles: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrInvalidStyle))
	assert.Equal(t, ErrInvalidStyle, GetErrorCode(outer))

	var styleErr *StyleError
	require.True(t, errors.As(outer, &styleErr))
	assert.Equal(t, "bad document", styleErr.Message)
}

func TestGetErrorCodeFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrInvalidStyle))
}

func TestWrapErrorNil(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrInvalidStyle, "ignored"))
}

func TestWrappedErrorUnwraps(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapError(cause, ErrUnknown, "context")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}
