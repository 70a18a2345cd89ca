package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("picker.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "picker.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "picker.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("swatches[1]", "must be a valid color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "swatches[1]", validationErr.Field)
	require.Contains(t, err.Error(), "swatches[1]: must be a valid color")
}

func TestColorErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewColorError("#GG0000", "hex", "invalid hex digits")

	var colorErr *ColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "hex", colorErr.Mode)
	require.True(t, stdErrors.Is(err, ErrMalformedColor))
	require.Contains(t, err.Error(), `"#GG0000"`)
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var colorErr *ColorError
	var parseErr *ParseError
	require.Empty(t, colorErr.Error())
	require.Empty(t, parseErr.Error())
	require.Nil(t, colorErr.Unwrap())
}
