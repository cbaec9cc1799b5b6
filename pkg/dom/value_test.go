package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"string", "x", "x", true},
		{"empty string", "", "", true},
		{"stringer", label("a"), "label:a", true},
		{"bool", true, "true", true},
		{"int", 42, "42", true},
		{"negative int64", int64(-7), "-7", true},
		{"uint8", uint8(255), "255", true},
		{"float", 1.5, "1.5", true},
		{"float32", float32(0.25), "0.25", true},
		{"nil", nil, "", false},
		{"slice", []string{"a"}, "", false},
		{"map", map[string]int{}, "", false},
		{"func", func() {}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Stringify(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(0.0))
	assert.True(t, Truthy(true))
	assert.True(t, Truthy("false"))
	assert.True(t, Truthy(1))
	assert.True(t, Truthy([]string{}))
	assert.True(t, Truthy(func() {}))
}
