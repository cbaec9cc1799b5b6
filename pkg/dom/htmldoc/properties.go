package htmldoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vango-go/tagkit/pkg/dom"
)

type reflectKind uint8

const (
	reflectString reflectKind = iota
	reflectBool
	reflectInt
)

// reflected maps a property name to the attribute it mirrors.
type reflected struct {
	attr string
	kind reflectKind
}

var reflectedProps = map[string]reflected{
	"id":           {"id", reflectString},
	"className":    {"class", reflectString},
	"htmlFor":      {"for", reflectString},
	"title":        {"title", reflectString},
	"lang":         {"lang", reflectString},
	"dir":          {"dir", reflectString},
	"accessKey":    {"accesskey", reflectString},
	"slot":         {"slot", reflectString},
	"role":         {"role", reflectString},
	"style":        {"style", reflectString},
	"href":         {"href", reflectString},
	"src":          {"src", reflectString},
	"srcset":       {"srcset", reflectString},
	"alt":          {"alt", reflectString},
	"name":         {"name", reflectString},
	"type":         {"type", reflectString},
	"placeholder":  {"placeholder", reflectString},
	"rel":          {"rel", reflectString},
	"target":       {"target", reflectString},
	"action":       {"action", reflectString},
	"method":       {"method", reflectString},
	"poster":       {"poster", reflectString},
	"download":     {"download", reflectString},
	"pattern":      {"pattern", reflectString},
	"autocomplete": {"autocomplete", reflectString},

	"hidden":     {"hidden", reflectBool},
	"disabled":   {"disabled", reflectBool},
	"checked":    {"checked", reflectBool},
	"selected":   {"selected", reflectBool},
	"readOnly":   {"readonly", reflectBool},
	"required":   {"required", reflectBool},
	"multiple":   {"multiple", reflectBool},
	"autofocus":  {"autofocus", reflectBool},
	"autoplay":   {"autoplay", reflectBool},
	"controls":   {"controls", reflectBool},
	"loop":       {"loop", reflectBool},
	"open":       {"open", reflectBool},
	"defer":      {"defer", reflectBool},
	"async":      {"async", reflectBool},
	"noValidate": {"novalidate", reflectBool},

	"tabIndex":  {"tabindex", reflectInt},
	"colSpan":   {"colspan", reflectInt},
	"rowSpan":   {"rowspan", reflectInt},
	"width":     {"width", reflectInt},
	"height":    {"height", reflectInt},
	"rows":      {"rows", reflectInt},
	"cols":      {"cols", reflectInt},
	"maxLength": {"maxlength", reflectInt},
	"minLength": {"minlength", reflectInt},
}

// readOnlyProps cannot be assigned.
var readOnlyProps = map[string]bool{
	"tagName":                true,
	"nodeName":               true,
	"nodeType":               true,
	"localName":              true,
	"namespaceURI":           true,
	"classList":              true,
	"attributes":             true,
	"dataset":                true,
	"children":               true,
	"childNodes":             true,
	"childElementCount":      true,
	"firstChild":             true,
	"lastChild":              true,
	"firstElementChild":      true,
	"lastElementChild":       true,
	"parentNode":             true,
	"parentElement":          true,
	"nextSibling":            true,
	"previousSibling":        true,
	"nextElementSibling":     true,
	"previousElementSibling": true,
	"ownerDocument":          true,
	"isConnected":            true,
	"outerHTML":              true,
}

// Property implements dom.Element.
func (e *Element) Property(name string) (any, bool) {
	if r, ok := reflectedProps[name]; ok {
		val, present := e.GetAttribute(r.attr)
		switch r.kind {
		case reflectBool:
			return present, true
		case reflectInt:
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return 0, true
			}
			return n, true
		default:
			return val, true
		}
	}

	switch name {
	case "tagName", "nodeName":
		return strings.ToUpper(e.node.Data), true
	case "localName":
		return e.node.Data, true
	case "innerHTML":
		return e.InnerHTML(), true
	case "textContent", "innerText":
		return e.TextContent(), true
	case "classList":
		return e.ClassList(), true
	}

	v, ok := e.props[name]
	return v, ok
}

// SetProperty implements dom.Element.
func (e *Element) SetProperty(name string, value any) error {
	if readOnlyProps[name] {
		return fmt.Errorf("%w: %s", dom.ErrReadOnlyProperty, name)
	}

	if r, ok := reflectedProps[name]; ok {
		return e.setReflected(name, r, value)
	}

	switch name {
	case "innerHTML":
		s, ok := dom.Stringify(value)
		if !ok {
			return typeMismatch(name, value)
		}
		return e.SetInnerHTML(s)
	case "textContent", "innerText":
		s, ok := dom.Stringify(value)
		if !ok {
			return typeMismatch(name, value)
		}
		e.SetTextContent(s)
		return nil
	}

	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
	return nil
}

func (e *Element) setReflected(name string, r reflected, value any) error {
	switch r.kind {
	case reflectBool:
		if dom.Truthy(value) {
			e.setAttr(r.attr, "")
		} else {
			e.RemoveAttribute(r.attr)
		}
		return nil
	case reflectInt:
		s, ok := dom.Stringify(value)
		if !ok {
			return typeMismatch(name, value)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return typeMismatch(name, value)
		}
		e.setAttr(r.attr, strconv.Itoa(int(f)))
		return nil
	default:
		s, ok := dom.Stringify(value)
		if !ok {
			return typeMismatch(name, value)
		}
		e.setAttr(r.attr, s)
		return nil
	}
}

func typeMismatch(name string, value any) error {
	return fmt.Errorf("%w: %s cannot hold %T", dom.ErrTypeMismatch, name, value)
}
