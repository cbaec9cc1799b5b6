// Package tag enumerates the element names the factory can construct.
//
// The set is closed and fixed at build time. Each Kind maps to exactly one
// lower-case tag name and every name maps back to exactly one Kind:
//
//	tag.Div.String()    // "div"
//	k, _ := tag.Lookup("DIV")
//	k == tag.Div        // true
//
// The list includes legacy names (acronym, applet, center, font, marquee, ...)
// so that documents using them can still be built.
package tag
