package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_CarriesCode(t *testing.T) {
	err := New(CodeTooManyArguments, nil)
	require.Equal(t, CodeTooManyArguments, err.Code())
}

func TestNewf_WrapsFormattedDetail(t *testing.T) {
	err := Newf(CodeAddressPatternTooLong, "got %d bytes", 128)
	require.Equal(t, CodeAddressPatternTooLong, err.Code())
	require.Contains(t, err.Error(), "128 bytes")
}

func TestCodeOf(t *testing.T) {
	t.Run("direct error", func(t *testing.T) {
		require.Equal(t, CodeBundleFull, CodeOf(New(CodeBundleFull, nil)))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := errors.New("some context")
		err := New(CodeInvalidContents, wrapped)
		wrappedAgain := errors.New("outer: " + err.Error())
		require.Equal(t, CodeNone, CodeOf(wrappedAgain))
		require.Equal(t, CodeInvalidContents, CodeOf(err))
	})

	t.Run("nil error", func(t *testing.T) {
		require.Equal(t, CodeNone, CodeOf(nil))
	})

	t.Run("non-Error", func(t *testing.T) {
		require.Equal(t, CodeNone, CodeOf(errors.New("plain")))
	})
}

func TestError_NilReceiver(t *testing.T) {
	var err *Error
	require.Equal(t, CodeNone, err.Code())
	require.Equal(t, "", err.Error())
	require.NoError(t, err.Unwrap())
}

func TestSetVerboseMessages(t *testing.T) {
	defer SetVerboseMessages(true)

	err := New(CodeBundleSizeTooSmall, nil)
	SetVerboseMessages(true)
	require.Contains(t, err.Error(), "too small")

	SetVerboseMessages(false)
	require.Equal(t, "osc99 error", err.Error())
}

func TestErrorsIs_ThroughDetailChain(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := New(CodeUnexpectedArgumentType, sentinel)
	require.True(t, errors.Is(err, sentinel))
}
