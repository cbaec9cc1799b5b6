// Package dom defines the document environment the factory and resolver
// drive.
//
// A Document creates elements; an Element exposes the handful of mutation
// primitives the resolver needs (identifier, class set, attributes,
// properties and markup content) plus readers for inspecting the result.
// Implementations live in subpackages: htmldoc backs elements with a real
// golang.org/x/net/html tree, domtest records calls for tests.
package dom

import "errors"

// Errors an environment returns when it rejects a write. Implementations wrap
// these so callers can match them with errors.Is.
var (
	// ErrReadOnlyProperty is returned when assigning to a property the
	// environment does not allow to be written (tagName, nodeType, ...).
	ErrReadOnlyProperty = errors.New("dom: property is read-only")

	// ErrInvalidToken is returned when a class token is empty or contains
	// whitespace.
	ErrInvalidToken = errors.New("dom: invalid class token")

	// ErrInvalidAttributeName is returned when an attribute name is empty or
	// contains characters not allowed in attribute names.
	ErrInvalidAttributeName = errors.New("dom: invalid attribute name")

	// ErrInvalidMarkup is returned when markup content cannot be parsed.
	ErrInvalidMarkup = errors.New("dom: invalid markup")

	// ErrTypeMismatch is returned when a property value has a type the
	// property cannot hold.
	ErrTypeMismatch = errors.New("dom: value type not accepted by property")
)

// Document creates elements. CreateElement never fails for names in the
// supported tag set.
type Document interface {
	CreateElement(name string) Element
}

// ClassList is an element's set of class tokens. Add is idempotent.
type ClassList interface {
	Add(tokens ...string) error
	Contains(token string) bool
	Tokens() []string
}

// Element is a mutable document node.
type Element interface {
	// TagName returns the lower-case element name.
	TagName() string

	ID() string
	SetID(id string)

	ClassList() ClassList

	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string) error

	// Property returns a directly assigned property value.
	Property(name string) (any, bool)
	SetProperty(name string, value any) error

	// InnerHTML serializes the element's children.
	InnerHTML() string
	// SetInnerHTML replaces all children with the parsed markup.
	SetInnerHTML(markup string) error
}
