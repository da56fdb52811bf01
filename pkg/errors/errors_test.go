package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapMessage(t *testing.T) {
	cause := errors.New("no clock")
	err := Wrap(CodeClockUnavailable, "clock reading failed", cause)

	require.EqualError(t, err, "clock reading failed: no clock")
	require.ErrorIs(t, err, cause)
	require.EqualError(t, Wrap(CodeInvalidInput, "bad format", nil), "bad format")
}

func TestIsCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeClockUnavailable, "clock reading failed", nil))

	require.True(t, IsCode(err, CodeClockUnavailable))
	require.False(t, IsCode(err, CodeInvalidInput))
	require.Equal(t, CodeClockUnavailable, CodeOf(err))
}

func TestCodeOfPlainError(t *testing.T) {
	err := errors.New("boom")
	require.Empty(t, CodeOf(err))
	require.False(t, IsCode(err, ""))
	require.Empty(t, CodeOf(nil))
}
