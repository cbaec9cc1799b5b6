package errors

import "sort"

// Registered codes.
const (
	CodeInvalidAssignment = "E101"
	CodeMalformedClass    = "E102"
	CodeUnknownTag        = "E110"
	CodeUnsupportedKind   = "E111"
	CodeConfig            = "E120"
	CodeUsage             = "E130"
	CodeInternal          = "E199"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

var registry = map[string]ErrorTemplate{
	CodeInvalidAssignment: {
		Category:   CategoryResolve,
		Message:    "Property assignment rejected",
		Suggestion: "Read-only properties such as tagName cannot be set. Use id, class, content or for for those targets, or set a plain attribute name.",
	},
	CodeMalformedClass: {
		Category:   CategoryResolve,
		Message:    "Malformed class value",
		Suggestion: "Pass class as a whitespace-separated string or a list of strings.",
	},
	CodeUnknownTag: {
		Category:   CategoryTag,
		Message:    "Unknown element name",
		Suggestion: "Run `tagkit tags` to list the supported names.",
	},
	CodeUnsupportedKind: {
		Category: CategoryTag,
		Message:  "Unsupported element kind",
	},
	CodeConfig: {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Check the YAML file: each element needs a tag and an ordered attrs mapping.",
	},
	CodeUsage: {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
	},
	CodeInternal: {
		Category: CategoryCLI,
		Message:  "Unexpected error",
	},
}

// GetAllCodes returns all registered codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
