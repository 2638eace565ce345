package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateValue_String_AcceptsOnlyStrings(t *testing.T) {
	v, err := ValidateValue("hello", TypeString, nil)
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	_, err = ValidateValue(42, TypeString, nil)
	require.Error(t, err)
}

func TestValidateValue_Number_CoercesToFloat64(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{42, 42},
		{int64(7), 7},
		{3.5, 3.5},
		{float32(2), 2},
	}
	for _, c := range cases {
		v, err := ValidateValue(c.in, TypeNumber, nil)
		require.NoError(t, err)
		require.Equal(t, c.want, v)
	}

	_, err := ValidateValue("42", TypeNumber, nil)
	require.Error(t, err)
}

func TestValidateValue_Boolean(t *testing.T) {
	v, err := ValidateValue(true, TypeBoolean, nil)
	require.NoError(t, err)
	require.Equal(t, true, v)

	_, err = ValidateValue("true", TypeBoolean, nil)
	require.Error(t, err)
}

func TestValidateValue_Markdown_StoresTransformedOutput(t *testing.T) {
	transform := func(s string) (string, error) { return "<p>" + s + "</p>", nil }

	v, err := ValidateValue("hello", TypeMarkdown, transform)
	require.NoError(t, err)
	require.Equal(t, "<p>hello</p>", v)

	_, err = ValidateValue(1.0, TypeMarkdown, transform)
	require.Error(t, err)
}

func TestValidateValue_Uri(t *testing.T) {
	v, err := ValidateValue("https://example.com/docs", TypeUri, nil)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/docs", v)

	// Relative URIs are fine.
	_, err = ValidateValue("../relative/path", TypeUri, nil)
	require.NoError(t, err)

	// Control characters make a URI unparseable.
	_, err = ValidateValue("http://exa mple.com/\x7f", TypeUri, nil)
	require.Error(t, err)

	_, err = ValidateValue(42, TypeUri, nil)
	require.Error(t, err)
}

func TestValidateValue_ArrayAndObject(t *testing.T) {
	v, err := ValidateValue([]any{"a", 1}, TypeArray, nil)
	require.NoError(t, err)
	require.Equal(t, []any{"a", 1}, v)

	_, err = ValidateValue("not-a-list", TypeArray, nil)
	require.Error(t, err)

	m, err := ValidateValue(map[string]any{"k": "v"}, TypeObject, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"k": "v"}, m)

	_, err = ValidateValue([]any{}, TypeObject, nil)
	require.Error(t, err)
}

func TestParseParameterType(t *testing.T) {
	for _, s := range []string{"String", "Number", "Boolean", "Markdown", "Uri", "Array", "Object"} {
		typ, err := ParseParameterType(s)
		if err != nil {
			t.Fatalf("ParseParameterType(%q) failed: %v", s, err)
		}
		if string(typ) != s {
			t.Errorf("ParseParameterType(%q) = %q", s, typ)
		}
	}
	if _, err := ParseParameterType("Integer"); err == nil {
		t.Error("expected error for unknown type")
	}
}
