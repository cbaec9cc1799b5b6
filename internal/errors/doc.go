// Package errors gives tagkit's command-line failures a code, a category
// and a hint, and formats them for the terminal.
//
// Library errors (resolver sentinels, unknown tag names, config load
// failures) are mapped onto registered codes with FromError:
//
//	err := errors.FromError(buildErr)
//	errors.Print(os.Stderr, err)
//	// ERROR E101: Property assignment rejected
//	//
//	//   resolve: entry 2 "tagName" (property): invalid property assignment: ...
//	//
//	//   Hint: Read-only properties such as tagName cannot be set.
package errors
