// Package config loads tagkit's YAML files.
//
// tagkit.yaml holds CLI defaults (logging, metrics). Build files list the
// elements `tagkit build` constructs; their attrs mappings keep the order
// written in the file, so a later key wins over an earlier one exactly as
// it would in code.
package config
