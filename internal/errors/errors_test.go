package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratorError_WrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write page")

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "filesystem (fatal)")
	require.Contains(t, err.Error(), "disk full")
}

func TestIsCategory(t *testing.T) {
	err := New(CategoryTheme, SeverityFatal, "theme not found")
	require.True(t, IsCategory(err, CategoryTheme))
	require.False(t, IsCategory(err, CategoryConfig))
	require.False(t, IsCategory(errors.New("plain"), CategoryTheme))
}

func TestGetCategory_DefaultsToInternal(t *testing.T) {
	require.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
	require.Equal(t, CategoryRender, GetCategory(New(CategoryRender, SeverityError, "boom")))
}

func TestWithContext(t *testing.T) {
	err := New(CategoryValidation, SeverityWarning, "bad value").
		WithContext("parameter", "accentColor")
	require.Equal(t, "accentColor", err.Context["parameter"])
}

func TestValidationErrors_AggregatesViolations(t *testing.T) {
	ve := NewValidationErrors("theme.json")
	require.True(t, ve.Empty())

	ve.Add("scripts.targetPath", "required when source globs are declared")
	ve.Addf("parameters.x", "unknown type %q", "Blob")

	require.False(t, ve.Empty())
	require.Len(t, ve.Violations, 2)
	require.Contains(t, ve.Error(), "theme.json: 2 validation error(s)")
	require.Contains(t, ve.Error(), `unknown type "Blob"`)
}
