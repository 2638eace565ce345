package theme

import (
	"encoding/json"
	"fmt"
	"net/url"

	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
)

// ParameterType is the closed set of value shapes a theme parameter may
// declare. Validation dispatches on the declared type, never on the value.
type ParameterType string

const (
	TypeString   ParameterType = "String"
	TypeNumber   ParameterType = "Number"
	TypeBoolean  ParameterType = "Boolean"
	TypeMarkdown ParameterType = "Markdown"
	TypeUri      ParameterType = "Uri"
	TypeArray    ParameterType = "Array"
	TypeObject   ParameterType = "Object"
)

// ParseParameterType maps a declaration string onto a ParameterType.
func ParseParameterType(s string) (ParameterType, error) {
	switch ParameterType(s) {
	case TypeString, TypeNumber, TypeBoolean, TypeMarkdown, TypeUri, TypeArray, TypeObject:
		return ParameterType(s), nil
	}
	return "", fmt.Errorf("unknown parameter type %q", s)
}

// Parameter is one resolved theme parameter. Default, once set, has already
// been validated against Type; for Markdown it holds the transformed output.
type Parameter struct {
	Name        string
	Type        ParameterType
	Description string
	Default     any
}

// ValidateValue type-checks raw against the declared type and returns the
// value to store. Markdown values are passed through transform so the stored
// value is ready to render without re-transformation.
func ValidateValue(raw any, typ ParameterType, transform markdown.Transform) (any, error) {
	switch typ {
	case TypeString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case TypeMarkdown:
		if s, ok := raw.(string); ok {
			if transform == nil {
				return s, nil
			}
			out, err := transform(s)
			if err != nil {
				return nil, apierrors.Wrap(err, apierrors.CategoryValidation, apierrors.SeverityError,
					"markdown transform failed")
			}
			return out, nil
		}
	case TypeNumber:
		switch n := raw.(type) {
		case int:
			return float64(n), nil
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		case float32:
			return float64(n), nil
		case float64:
			return n, nil
		case json.Number:
			f, err := n.Float64()
			if err == nil {
				return f, nil
			}
		}
	case TypeBoolean:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case TypeUri:
		if s, ok := raw.(string); ok {
			if _, err := url.Parse(s); err != nil {
				return nil, formatError(typ, raw)
			}
			return s, nil
		}
	case TypeArray:
		if a, ok := raw.([]any); ok {
			return a, nil
		}
	case TypeObject:
		if m, ok := raw.(map[string]any); ok {
			return m, nil
		}
	}
	return nil, formatError(typ, raw)
}

func formatError(typ ParameterType, raw any) error {
	return apierrors.New(apierrors.CategoryValidation, apierrors.SeverityError,
		fmt.Sprintf("value of Go kind %T does not match parameter type %s", raw, typ))
}
