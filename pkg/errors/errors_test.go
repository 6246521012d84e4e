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
	err := NewParseError("calendar.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "calendar.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "calendar.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("calendar.yaml", 0, stdErrors.New("missing"))
	require.Equal(t, "parse error: calendar.yaml: missing", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("calendar.minimum_date", "must not be after maximum_date", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "calendar.minimum_date", validationErr.Field)
	require.Contains(t, validationErr.Message, "maximum_date")
	require.Equal(t, "validation error: calendar.minimum_date: must not be after maximum_date", err.Error())
}

func TestImportErrorIncludesSource(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no VCALENDAR")
	err := NewImportError("holidays.ics", underlying)

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	require.Equal(t, "holidays.ics", importErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[holidays.ics]")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var importErr *ImportError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, importErr.Error())
	require.Nil(t, importErr.Unwrap())
}
