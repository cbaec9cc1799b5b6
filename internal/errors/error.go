package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-go/tagkit/pkg/factory"
	"github.com/vango-go/tagkit/pkg/resolve"
	"github.com/vango-go/tagkit/pkg/tag"
)

// Category groups error codes.
type Category string

const (
	CategoryResolve Category = "resolve"
	CategoryTag     Category = "tag"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// TagkitError is a coded error with an optional hint.
type TagkitError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, usually the wrapped error's text.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TagkitError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TagkitError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion sets the hint.
func (e *TagkitError) WithSuggestion(s string) *TagkitError {
	e.Suggestion = s
	return e
}

// WithDetail sets the detail text.
func (e *TagkitError) WithDetail(d string) *TagkitError {
	e.Detail = d
	return e
}

// Wrap records err as the cause and uses its text as the detail.
func (e *TagkitError) Wrap(err error) *TagkitError {
	e.Wrapped = err
	if err != nil && e.Detail == "" {
		e.Detail = err.Error()
	}
	return e
}

// New creates a TagkitError from a registered code.
func New(code string) *TagkitError {
	template, ok := registry[code]
	if !ok {
		return &TagkitError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TagkitError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates an uncoded error with a formatted message.
func Newf(category Category, format string, args ...any) *TagkitError {
	return &TagkitError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError maps err onto a registered code. A *TagkitError is returned
// unchanged; unrecognized errors get CodeInternal.
func FromError(err error) *TagkitError {
	if err == nil {
		return nil
	}
	var te *TagkitError
	if stderrors.As(err, &te) {
		return te
	}
	return New(codeFor(err)).Wrap(err)
}

func codeFor(err error) string {
	switch {
	case stderrors.Is(err, resolve.ErrMalformedClassValue):
		return CodeMalformedClass
	case stderrors.Is(err, resolve.ErrInvalidPropertyAssignment):
		return CodeInvalidAssignment
	case stderrors.Is(err, tag.ErrUnknownTag):
		return CodeUnknownTag
	case stderrors.Is(err, factory.ErrUnsupportedKind):
		return CodeUnsupportedKind
	case stderrors.Is(err, ErrConfig):
		return CodeConfig
	default:
		return CodeInternal
	}
}

// ErrConfig marks configuration and build-file failures. internal/config
// wraps its errors with it.
var ErrConfig = stderrors.New("config error")
