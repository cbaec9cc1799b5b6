package resolve

import (
	"fmt"
	"strings"

	"github.com/vango-go/tagkit/pkg/dom"
)

// Apply assigns each entry to el in order. A nil or empty entry list is a
// no-op. The first failure is returned as an *AssignmentError; entries
// before it remain applied and entries after it are not attempted.
func Apply(el dom.Element, entries ...Entry) error {
	for i, e := range entries {
		action := Classify(e.Key)
		if err := assign(el, action, e.Key, e.Value); err != nil {
			err.Index = i
			return err
		}
	}
	return nil
}

// ApplyEntries is Apply for a prebuilt Entries value.
func ApplyEntries(el dom.Element, entries Entries) error {
	return Apply(el, entries...)
}

func assign(el dom.Element, action Action, key string, value any) *AssignmentError {
	fail := func(kind, cause error) *AssignmentError {
		return &AssignmentError{Key: key, Action: action, Kind: kind, Err: cause}
	}

	switch action {
	case ActionID:
		s, err := text(value)
		if err != nil {
			return fail(ErrInvalidPropertyAssignment, err)
		}
		el.SetID(s)

	case ActionClass:
		tokens, ok := classTokens(value)
		if !ok {
			return fail(ErrMalformedClassValue, fmt.Errorf("got %T", value))
		}
		list := el.ClassList()
		for _, tok := range tokens {
			if err := list.Add(tok); err != nil {
				return fail(ErrInvalidPropertyAssignment, err)
			}
		}

	case ActionContent:
		s, err := text(value)
		if err != nil {
			return fail(ErrInvalidPropertyAssignment, err)
		}
		if err := el.SetInnerHTML(s); err != nil {
			return fail(ErrInvalidPropertyAssignment, err)
		}

	case ActionFor:
		s, err := text(value)
		if err != nil {
			return fail(ErrInvalidPropertyAssignment, err)
		}
		if err := el.SetAttribute("for", s); err != nil {
			return fail(ErrInvalidPropertyAssignment, err)
		}

	default:
		if err := el.SetProperty(key, value); err != nil {
			return fail(ErrInvalidPropertyAssignment, err)
		}
	}
	return nil
}

// text converts an id, content or for value to its string form.
func text(value any) (string, error) {
	s, ok := dom.Stringify(value)
	if !ok {
		return "", fmt.Errorf("%T has no text form", value)
	}
	return s, nil
}

// classTokens splits a string on whitespace or passes a sequence through in
// order. A []any is accepted when every element is a string, which is what
// decoded YAML and JSON lists look like.
func classTokens(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return strings.Fields(v), true
	case []string:
		return v, true
	case []any:
		tokens := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			tokens[i] = s
		}
		return tokens, true
	default:
		return nil, false
	}
}
