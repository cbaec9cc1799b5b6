package htmldoc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vango-go/tagkit/pkg/dom"
)

// classList is a live view over an element's class attribute.
type classList struct {
	el *Element
}

// Add appends every token not already present. Tokens are validated before
// any are added, so a bad token leaves the set unchanged.
func (c *classList) Add(tokens ...string) error {
	for _, tok := range tokens {
		if tok == "" || strings.IndexFunc(tok, unicode.IsSpace) >= 0 {
			return fmt.Errorf("%w: %q", dom.ErrInvalidToken, tok)
		}
	}

	current := c.Tokens()
	seen := make(map[string]bool, len(current)+len(tokens))
	for _, tok := range current {
		seen[tok] = true
	}
	changed := false
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		current = append(current, tok)
		changed = true
	}
	if changed {
		c.el.setAttr("class", strings.Join(current, " "))
	}
	return nil
}

// Contains reports whether token is in the set.
func (c *classList) Contains(token string) bool {
	for _, tok := range c.Tokens() {
		if tok == token {
			return true
		}
	}
	return false
}

// Tokens returns the de-duplicated tokens in attribute order.
func (c *classList) Tokens() []string {
	raw, ok := c.el.GetAttribute("class")
	if !ok {
		return nil
	}
	fields := strings.Fields(raw)
	out := fields[:0]
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
