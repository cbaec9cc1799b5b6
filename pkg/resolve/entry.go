package resolve

import (
	"sort"
	"strings"
)

// Entry is one key/value pair of a configuration.
type Entry struct {
	Key   string
	Value any
}

// Entries is an ordered configuration.
type Entries []Entry

// Set appends an entry and returns the extended list.
func (es Entries) Set(key string, value any) Entries {
	return append(es, Entry{Key: key, Value: value})
}

// FromMap converts a map to Entries. Go maps are unordered, so entries are
// sorted by key to keep application deterministic.
func FromMap(m map[string]any) Entries {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	es := make(Entries, 0, len(keys))
	for _, k := range keys {
		es = append(es, Entry{Key: k, Value: m[k]})
	}
	return es
}

// ID returns an id entry.
func ID(id string) Entry { return Entry{Key: "id", Value: id} }

// Class returns a class entry for the given tokens. Each argument must be a
// single token: the sequence is not split, so Class("a b") fails with
// dom.ErrInvalidToken. Use Prop("class", "a b") to pass a whitespace
// separated string.
func Class(tokens ...string) Entry { return Entry{Key: "class", Value: tokens} }

// Content returns a content entry. The markup is not escaped.
func Content(markup string) Entry { return Entry{Key: "content", Value: markup} }

// For returns a for entry.
func For(id string) Entry { return Entry{Key: "for", Value: id} }

// Prop returns a pass-through entry. A key that matches one of the special
// keys is still classified as that key; use Config.Props to force a literal
// property.
func Prop(key string, value any) Entry { return Entry{Key: key, Value: value} }

// Action is the assignment strategy chosen for a key.
type Action uint8

const (
	ActionProperty Action = iota
	ActionID
	ActionClass
	ActionContent
	ActionFor
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionID:
		return "id"
	case ActionClass:
		return "class"
	case ActionContent:
		return "content"
	case ActionFor:
		return "for"
	default:
		return "property"
	}
}

// Classify returns the action for key. Only id, class, content and for are
// special; matching ignores case.
func Classify(key string) Action {
	switch strings.ToLower(key) {
	case "id":
		return ActionID
	case "class":
		return ActionClass
	case "content":
		return ActionContent
	case "for":
		return ActionFor
	default:
		return ActionProperty
	}
}
