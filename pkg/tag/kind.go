package tag

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the supported element names.
// The zero value is not a valid kind.
type Kind uint8

// Supported element kinds, in alphabetical order of their tag names.
const (
	Invalid Kind = iota
	A
	Abbr
	Acronym
	Address
	Applet
	Area
	Article
	Aside
	Audio
	B
	Base
	Basefont
	Bdi
	Bdo
	Big
	Blockquote
	Body
	Br
	Button
	Canvas
	Caption
	Center
	Cite
	Code
	Col
	Colgroup
	Data
	Datalist
	Dd
	Del
	Details
	Dfn
	Dialog
	Dir
	Div
	Dl
	Dt
	Em
	Embed
	Fieldset
	Figcaption
	Figure
	Font
	Footer
	Form
	Frame
	Frameset
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	Hr
	Html
	I
	Iframe
	Img
	Input
	Ins
	Isindex
	Kbd
	Label
	Legend
	Li
	Link
	Main
	Map
	Mark
	Marquee
	Menu
	Meta
	Meter
	Nav
	Noframes
	Noscript
	Object
	Ol
	Optgroup
	Option
	Output
	P
	Param
	Picture
	Pre
	Progress
	Q
	Rp
	Rt
	Ruby
	S
	Samp
	Script
	Section
	Select
	Small
	Source
	Span
	Strike
	Strong
	Style
	Sub
	Summary
	Sup
	Svg
	Table
	Tbody
	Td
	Template
	Textarea
	Tfoot
	Th
	Thead
	Time
	Title
	Tr
	Track
	Tt
	U
	Ul
	Var
	Video
	Wbr

	numKinds
)

// ErrUnknownTag is returned by Lookup for names outside the supported set.
var ErrUnknownTag = errors.New("tag: unknown element name")

var names = [numKinds]string{
	A:          "a",
	Abbr:       "abbr",
	Acronym:    "acronym",
	Address:    "address",
	Applet:     "applet",
	Area:       "area",
	Article:    "article",
	Aside:      "aside",
	Audio:      "audio",
	B:          "b",
	Base:       "base",
	Basefont:   "basefont",
	Bdi:        "bdi",
	Bdo:        "bdo",
	Big:        "big",
	Blockquote: "blockquote",
	Body:       "body",
	Br:         "br",
	Button:     "button",
	Canvas:     "canvas",
	Caption:    "caption",
	Center:     "center",
	Cite:       "cite",
	Code:       "code",
	Col:        "col",
	Colgroup:   "colgroup",
	Data:       "data",
	Datalist:   "datalist",
	Dd:         "dd",
	Del:        "del",
	Details:    "details",
	Dfn:        "dfn",
	Dialog:     "dialog",
	Dir:        "dir",
	Div:        "div",
	Dl:         "dl",
	Dt:         "dt",
	Em:         "em",
	Embed:      "embed",
	Fieldset:   "fieldset",
	Figcaption: "figcaption",
	Figure:     "figure",
	Font:       "font",
	Footer:     "footer",
	Form:       "form",
	Frame:      "frame",
	Frameset:   "frameset",
	H1:         "h1",
	H2:         "h2",
	H3:         "h3",
	H4:         "h4",
	H5:         "h5",
	H6:         "h6",
	Head:       "head",
	Header:     "header",
	Hr:         "hr",
	Html:       "html",
	I:          "i",
	Iframe:     "iframe",
	Img:        "img",
	Input:      "input",
	Ins:        "ins",
	Isindex:    "isindex",
	Kbd:        "kbd",
	Label:      "label",
	Legend:     "legend",
	Li:         "li",
	Link:       "link",
	Main:       "main",
	Map:        "map",
	Mark:       "mark",
	Marquee:    "marquee",
	Menu:       "menu",
	Meta:       "meta",
	Meter:      "meter",
	Nav:        "nav",
	Noframes:   "noframes",
	Noscript:   "noscript",
	Object:     "object",
	Ol:         "ol",
	Optgroup:   "optgroup",
	Option:     "option",
	Output:     "output",
	P:          "p",
	Param:      "param",
	Picture:    "picture",
	Pre:        "pre",
	Progress:   "progress",
	Q:          "q",
	Rp:         "rp",
	Rt:         "rt",
	Ruby:       "ruby",
	S:          "s",
	Samp:       "samp",
	Script:     "script",
	Section:    "section",
	Select:     "select",
	Small:      "small",
	Source:     "source",
	Span:       "span",
	Strike:     "strike",
	Strong:     "strong",
	Style:      "style",
	Sub:        "sub",
	Summary:    "summary",
	Sup:        "sup",
	Svg:        "svg",
	Table:      "table",
	Tbody:      "tbody",
	Td:         "td",
	Template:   "template",
	Textarea:   "textarea",
	Tfoot:      "tfoot",
	Th:         "th",
	Thead:      "thead",
	Time:       "time",
	Title:      "title",
	Tr:         "tr",
	Track:      "track",
	Tt:         "tt",
	U:          "u",
	Ul:         "ul",
	Var:        "var",
	Video:      "video",
	Wbr:        "wbr",
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k := A; k < numKinds; k++ {
		m[names[k]] = k
	}
	return m
}()

// voidKinds are kinds that cannot have children.
var voidKinds = map[Kind]bool{
	Area:   true,
	Base:   true,
	Br:     true,
	Col:    true,
	Embed:  true,
	Hr:     true,
	Img:    true,
	Input:  true,
	Link:   true,
	Meta:   true,
	Param:  true,
	Source: true,
	Track:  true,
	Wbr:    true,
}

// String returns the lower-case tag name, or "invalid" for kinds outside the set.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return names[k]
}

// Valid reports whether k is a member of the supported set.
func (k Kind) Valid() bool {
	return k > Invalid && k < numKinds
}

// IsVoid reports whether elements of this kind cannot have children.
func (k Kind) IsVoid() bool {
	return voidKinds[k]
}

// Lookup returns the kind for a tag name. Matching is case-insensitive.
func Lookup(name string) (Kind, error) {
	if k, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownTag, name)
}

// All returns every supported kind in declaration order.
func All() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := A; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Count is the number of supported kinds.
const Count = int(numKinds) - 1
