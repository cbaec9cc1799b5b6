// Package domtest provides an in-memory dom.Document that records every
// mutation, for testing code that drives a document without a real tree.
package domtest

import (
	"fmt"
	"strings"

	"github.com/vango-go/tagkit/pkg/dom"
)

// Op names a recorded mutation.
type Op string

const (
	OpSetID        Op = "setID"
	OpAddClass     Op = "addClass"
	OpSetAttribute Op = "setAttribute"
	OpSetProperty  Op = "setProperty"
	OpSetInnerHTML Op = "setInnerHTML"
)

// Call is one recorded mutation.
type Call struct {
	Op    Op
	Name  string
	Value any
}

// Document is a fake dom.Document. Failures registered with FailOn are
// returned by the matching element operation.
type Document struct {
	Created  []*Element
	failures map[failKey]error
}

type failKey struct {
	op   Op
	name string
}

// NewDocument returns an empty fake document.
func NewDocument() *Document {
	return &Document{failures: make(map[failKey]error)}
}

// FailOn makes every element created afterwards (and every existing one)
// return err for op on name. For OpAddClass name is the class token; for
// OpSetInnerHTML name is ignored and should be "".
func (d *Document) FailOn(op Op, name string, err error) {
	d.failures[failKey{op, name}] = err
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(name string) dom.Element {
	el := &Element{
		doc:   d,
		tag:   strings.ToLower(name),
		attrs: make(map[string]string),
		props: make(map[string]any),
	}
	d.Created = append(d.Created, el)
	return el
}

func (d *Document) failure(op Op, name string) error {
	if err, ok := d.failures[failKey{op, name}]; ok {
		return fmt.Errorf("domtest: %s %q: %w", op, name, err)
	}
	return nil
}

// Element is a fake dom.Element.
type Element struct {
	doc     *Document
	tag     string
	id      string
	classes []string
	attrs   map[string]string
	props   map[string]any
	inner   string

	// Calls lists every successful mutation in order.
	Calls []Call
}

var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

func (e *Element) record(op Op, name string, value any) {
	e.Calls = append(e.Calls, Call{Op: op, Name: name, Value: value})
}

func (e *Element) TagName() string { return e.tag }

func (e *Element) ID() string { return e.id }

func (e *Element) SetID(id string) {
	e.id = id
	e.record(OpSetID, "id", id)
}

func (e *Element) ClassList() dom.ClassList { return (*classList)(e) }

func (e *Element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

func (e *Element) SetAttribute(name, value string) error {
	if err := e.doc.failure(OpSetAttribute, name); err != nil {
		return err
	}
	e.attrs[strings.ToLower(name)] = value
	e.record(OpSetAttribute, name, value)
	return nil
}

func (e *Element) Property(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

func (e *Element) SetProperty(name string, value any) error {
	if err := e.doc.failure(OpSetProperty, name); err != nil {
		return err
	}
	e.props[name] = value
	e.record(OpSetProperty, name, value)
	return nil
}

func (e *Element) InnerHTML() string { return e.inner }

func (e *Element) SetInnerHTML(markup string) error {
	if err := e.doc.failure(OpSetInnerHTML, ""); err != nil {
		return err
	}
	e.inner = markup
	e.record(OpSetInnerHTML, "", markup)
	return nil
}

// Ops returns the recorded operations without values, in order.
func (e *Element) Ops() []Op {
	ops := make([]Op, len(e.Calls))
	for i, c := range e.Calls {
		ops[i] = c.Op
	}
	return ops
}

type classList Element

func (c *classList) Add(tokens ...string) error {
	e := (*Element)(c)
	for _, tok := range tokens {
		if err := e.doc.failure(OpAddClass, tok); err != nil {
			return err
		}
	}
	for _, tok := range tokens {
		if c.Contains(tok) {
			continue
		}
		e.classes = append(e.classes, tok)
		e.record(OpAddClass, tok, tok)
	}
	return nil
}

func (c *classList) Contains(token string) bool {
	for _, tok := range c.classes {
		if tok == token {
			return true
		}
	}
	return false
}

func (c *classList) Tokens() []string {
	return append([]string(nil), c.classes...)
}
