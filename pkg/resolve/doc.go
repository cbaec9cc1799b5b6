// Package resolve applies a configuration to a document element.
//
// A configuration is an ordered list of key/value entries. Each key is
// classified case-insensitively into one of five actions:
//
//	id       set the element identifier
//	class    add class tokens (a whitespace-separated string or a []string)
//	content  replace the element's children with parsed markup
//	for      set the "for" attribute
//	*        assign a property of the same name, keeping the key's casing
//
// Entries are applied in order, so a later id overwrites an earlier one
// while class entries accumulate. The first write the environment rejects
// stops processing; entries applied before it stay applied.
//
//	err := resolve.Apply(el,
//	    resolve.ID("email"),
//	    resolve.Class("field", "wide"),
//	    resolve.Prop("placeholder", "you@example.com"),
//	)
//
// Config is the structured alternative: the four special keys are named
// fields and Props holds pass-through properties that are never
// reinterpreted, even when a prop is named "id" or "for".
package resolve
