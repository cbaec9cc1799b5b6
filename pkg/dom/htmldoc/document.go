// Package htmldoc implements the dom environment on top of
// golang.org/x/net/html.
//
// Elements are plain *html.Node values. Attributes live on the node;
// properties either reflect an attribute (title, href, className, hidden,
// tabIndex, ...) or, for names with no reflection, are kept as expando
// values on the Element wrapper. Markup content is parsed with
// html.ParseFragment using the element itself as the parsing context.
package htmldoc

import (
	"strings"

	"github.com/vango-go/tagkit/pkg/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document creates detached elements. It holds no per-element state and is
// safe for concurrent use.
type Document struct{}

// New returns a Document.
func New() *Document {
	return &Document{}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(name string) dom.Element {
	return d.Create(name)
}

// Create returns a new element with the given tag name. The name is
// lower-cased; unknown names produce an element with no atom.
func (d *Document) Create(name string) *Element {
	name = strings.ToLower(name)
	return &Element{
		node: &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Lookup([]byte(name)),
			Data:     name,
		},
	}
}

// Wrap adopts an existing element node.
func Wrap(n *html.Node) *Element {
	return &Element{node: n}
}

var _ dom.Document = (*Document)(nil)
