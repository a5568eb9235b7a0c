package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrTableEmpty, "parameter table is empty")

	assert.Equal(t, ErrTableEmpty, err.Code)
	assert.Equal(t, "[TABLE_EMPTY] parameter table is empty", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrMissingTokens, "missing parameters for tokens: %s", "A, B")
	assert.Equal(t, "[MISSING_TOKENS] missing parameters for tokens: A, B", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(cause, ErrFileWrite, "failed to write job file")

	assert.Equal(t, "[FILE_WRITE] failed to write job file: permission denied", err.Error())
	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileWrite, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrFileWrite, "ignored %d", 1))
}

func TestIsByCode(t *testing.T) {
	err := New(ErrTableEmpty, "empty")

	assert.True(t, errors.Is(err, New(ErrTableEmpty, "other message")))
	assert.False(t, errors.Is(err, New(ErrTableRead, "empty")))
}

func TestGetCode(t *testing.T) {
	code, ok := GetCode(New(ErrMissingTokens, "missing"))
	assert.True(t, ok)
	assert.Equal(t, ErrMissingTokens, code)

	// Wrapped in a plain error chain, the code is still found.
	wrapped := fmt.Errorf("context: %w", New(ErrDirCreate, "mkdir failed"))
	code, ok = GetCode(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrDirCreate, code)

	_, ok = GetCode(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestIsCode(t *testing.T) {
	err := New(ErrTemplateRead, "read failed")

	assert.True(t, IsCode(err, ErrTemplateRead))
	assert.False(t, IsCode(err, ErrTemplateDecode))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrTemplateRead))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrMissingTokens, "missing").WithDetail("tokens", []string{"A"})

	require.NotNil(t, err.Details)
	assert.Equal(t, []string{"A"}, err.Details["tokens"])
}
