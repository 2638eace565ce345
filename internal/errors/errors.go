// Package errors provides the structured error type used across the
// generator for category-based classification in CLI exit handling.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory classifies a generator error for reporting.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Theme resolution and authoring errors
	CategoryTheme ErrorCategory = "theme"

	// Consumed model errors
	CategoryMetadata ErrorCategory = "metadata"
	CategoryContent  ErrorCategory = "content"

	// Build and output errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// GeneratorError is a structured error with category, severity, and context.
type GeneratorError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for GeneratorError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *GeneratorError) WithContext(key string, value any) *GeneratorError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new GeneratorError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *GeneratorError {
	return &GeneratorError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new GeneratorError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *GeneratorError {
	return &GeneratorError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	if ge, ok := err.(*GeneratorError); ok {
		return ge.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal
// if the error is not a GeneratorError.
func GetCategory(err error) ErrorCategory {
	if ge, ok := err.(*GeneratorError); ok {
		return ge.Category
	}
	return CategoryInternal
}

// Violation is a single validation failure inside a declaration or config.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (v Violation) Error() string {
	if v.Field != "" {
		return fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return v.Message
}

// ValidationErrors aggregates every violation detected in one document so
// authors see the full list instead of fixing one problem per run.
type ValidationErrors struct {
	Subject    string      `json:"subject"`
	Violations []Violation `json:"violations"`
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d validation error(s)", e.Subject, len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.Error())
	}
	return b.String()
}

// Add records a violation.
func (e *ValidationErrors) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

// Addf records a violation with a formatted message.
func (e *ValidationErrors) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Empty reports whether no violations were recorded.
func (e *ValidationErrors) Empty() bool {
	return len(e.Violations) == 0
}

// NewValidationErrors creates an empty aggregate for the given subject.
func NewValidationErrors(subject string) *ValidationErrors {
	return &ValidationErrors{Subject: subject}
}
