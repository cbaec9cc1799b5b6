package resolve

import "github.com/vango-go/tagkit/pkg/dom"

// Config is the structured form of a configuration. Nil pointer fields are
// left untouched.
type Config struct {
	ID      *string
	Class   []string
	Content *string
	For     *string

	// Props are assigned as properties under their exact key, without
	// classification.
	Props Entries
}

// String returns a pointer to s, for filling optional Config fields.
func String(s string) *string {
	return &s
}

// IsZero reports whether c sets nothing.
func (c Config) IsZero() bool {
	return c.ID == nil && len(c.Class) == 0 && c.Content == nil && c.For == nil && len(c.Props) == 0
}

// ApplyConfig assigns c to el: ID, Class, Content and For first, then Props
// in order. Failures are reported as by Apply, with Index counting the
// steps taken.
func ApplyConfig(el dom.Element, c Config) error {
	type step struct {
		action Action
		key    string
		value  any
	}

	steps := make([]step, 0, 4+len(c.Props))
	if c.ID != nil {
		steps = append(steps, step{ActionID, "id", *c.ID})
	}
	if len(c.Class) > 0 {
		steps = append(steps, step{ActionClass, "class", c.Class})
	}
	if c.Content != nil {
		steps = append(steps, step{ActionContent, "content", *c.Content})
	}
	if c.For != nil {
		steps = append(steps, step{ActionFor, "for", *c.For})
	}
	for _, p := range c.Props {
		steps = append(steps, step{ActionProperty, p.Key, p.Value})
	}

	for i, s := range steps {
		if err := assign(el, s.action, s.key, s.value); err != nil {
			err.Index = i
			return err
		}
	}
	return nil
}
