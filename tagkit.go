// Package tagkit builds configured HTML elements in one call.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-go/tagkit"
//
// Usage:
//
//	b := tagkit.New()
//	label, err := b.Make(tagkit.Label,
//	    tagkit.For("email"),
//	    tagkit.Class("field", "required"),
//	    tagkit.Content("Email <em>*</em>"),
//	    tagkit.Prop("title", "Your address"),
//	)
//
// Elements are backed by golang.org/x/net/html nodes; use Element.Node to
// place them in a larger tree or Element.OuterHTML to serialize them.
// Lower-level packages live under pkg/: tag (kinds), resolve (the
// key-interpretation rules), factory (construction) and dom (the document
// contract with its htmldoc and domtest implementations).
package tagkit

import (
	"github.com/vango-go/tagkit/pkg/dom/htmldoc"
	"github.com/vango-go/tagkit/pkg/factory"
	"github.com/vango-go/tagkit/pkg/resolve"
	"github.com/vango-go/tagkit/pkg/tag"
)

// =============================================================================
// Types
// =============================================================================

// Kind is a supported element kind.
type Kind = tag.Kind

// Entry is one key/value configuration entry.
type Entry = resolve.Entry

// Entries is an ordered configuration.
type Entries = resolve.Entries

// Config is the structured configuration form.
type Config = resolve.Config

// Element is a constructed element.
type Element = htmldoc.Element

// =============================================================================
// Entry constructors
// =============================================================================

// ID returns an id entry.
func ID(id string) Entry { return resolve.ID(id) }

// Class returns a class entry. Each argument is one token; a value holding
// whitespace is rejected rather than split.
func Class(tokens ...string) Entry { return resolve.Class(tokens...) }

// Content returns a content entry. The markup is not escaped.
func Content(markup string) Entry { return resolve.Content(markup) }

// For returns a for entry.
func For(id string) Entry { return resolve.For(id) }

// Prop returns a pass-through entry.
func Prop(key string, value any) Entry { return resolve.Prop(key, value) }

// String returns a pointer to s, for Config fields.
func String(s string) *string { return resolve.String(s) }

// =============================================================================
// Builder
// =============================================================================

// Builder creates elements in its own document.
type Builder struct {
	doc     *htmldoc.Document
	factory *factory.Factory
}

// New returns a Builder over a fresh document. Options are passed to
// factory.New.
func New(opts ...factory.Option) *Builder {
	doc := htmldoc.New()
	return &Builder{
		doc:     doc,
		factory: factory.New(doc, opts...),
	}
}

// NewDocument returns an empty document for use with factory.New.
func NewDocument() *htmldoc.Document {
	return htmldoc.New()
}

// Factory returns the underlying factory.
func (b *Builder) Factory() *factory.Factory {
	return b.factory
}

// Make creates an element of kind configured by entries.
func (b *Builder) Make(kind Kind, entries ...Entry) (*Element, error) {
	el, err := b.factory.Make(kind, entries...)
	if err != nil {
		return nil, err
	}
	return el.(*Element), nil
}

// MakeConfig creates an element of kind configured by cfg.
func (b *Builder) MakeConfig(kind Kind, cfg Config) (*Element, error) {
	el, err := b.factory.MakeConfig(kind, cfg)
	if err != nil {
		return nil, err
	}
	return el.(*Element), nil
}

// MakeNamed creates an element by tag name.
func (b *Builder) MakeNamed(name string, entries ...Entry) (*Element, error) {
	el, err := b.factory.MakeNamed(name, entries...)
	if err != nil {
		return nil, err
	}
	return el.(*Element), nil
}
