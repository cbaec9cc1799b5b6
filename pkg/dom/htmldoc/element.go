package htmldoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vango-go/tagkit/pkg/dom"
	"golang.org/x/net/html"
)

// Element is a dom.Element backed by an *html.Node.
type Element struct {
	node  *html.Node
	props map[string]any
}

var _ dom.Element = (*Element)(nil)

// Node returns the underlying node.
func (e *Element) Node() *html.Node {
	return e.node
}

// TagName implements dom.Element.
func (e *Element) TagName() string {
	return e.node.Data
}

// ID implements dom.Element.
func (e *Element) ID() string {
	id, _ := e.GetAttribute("id")
	return id
}

// SetID implements dom.Element.
func (e *Element) SetID(id string) {
	e.setAttr("id", id)
}

// ClassList implements dom.Element.
func (e *Element) ClassList() dom.ClassList {
	return &classList{el: e}
}

// GetAttribute implements dom.Element.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute implements dom.Element. Names are lower-cased as in an HTML
// document.
func (e *Element) SetAttribute(name, value string) error {
	if !validAttributeName(name) {
		return fmt.Errorf("%w: %q", dom.ErrInvalidAttributeName, name)
	}
	e.setAttr(strings.ToLower(name), value)
	return nil
}

// RemoveAttribute deletes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

func (e *Element) setAttr(key, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// validAttributeName rejects names an HTML serializer could not emit.
func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<':
			return false
		}
	}
	return true
}

// InnerHTML implements dom.Element. Children that fail to render are
// skipped; use OuterHTML to observe render errors.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// SetInnerHTML implements dom.Element.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("%w: %v", dom.ErrInvalidMarkup, err)
	}
	e.replaceChildren(nodes...)
	return nil
}

// TextContent returns the concatenated text of all descendants.
func (e *Element) TextContent() string {
	return e.Selection().Text()
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	if text == "" {
		e.replaceChildren()
		return
	}
	e.replaceChildren(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) replaceChildren(nodes ...*html.Node) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// AppendChild attaches child as the last child of e. The child must be
// detached.
func (e *Element) AppendChild(child *Element) {
	e.node.AppendChild(child.node)
}

// OuterHTML serializes the element itself.
func (e *Element) OuterHTML() (string, error) {
	var b strings.Builder
	if err := html.Render(&b, e.node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Selection returns a goquery selection containing only this element.
func (e *Element) Selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

// Find returns the descendants matching a CSS selector.
func (e *Element) Find(selector string) *goquery.Selection {
	return e.Selection().Find(selector)
}
