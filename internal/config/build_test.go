package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-go/tagkit/internal/errors"
	"github.com/vango-go/tagkit/pkg/resolve"
)

const sampleBuild = `
elements:
  - tag: label
    attrs:
      for: email
      class: [field, required]
      title: Email address
      id: first
      ID: second
  - tag: ul
    children:
      - tag: li
        attrs:
          content: "<b>one</b>"
      - tag: li
  - tag: br
`

func TestParseBuild(t *testing.T) {
	bf, err := ParseBuild([]byte(sampleBuild), "sample.yaml")
	require.NoError(t, err)
	require.Len(t, bf.Elements, 3)

	label := bf.Elements[0]
	assert.Equal(t, "label", label.Tag)
	require.Len(t, label.Attrs, 5)

	keys := make([]string, len(label.Attrs))
	for i, e := range label.Attrs {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"for", "class", "title", "id", "ID"}, keys, "attr order follows the file")
	assert.Equal(t, []any{"field", "required"}, label.Attrs[1].Value)

	ul := bf.Elements[1]
	assert.Empty(t, ul.Attrs)
	require.Len(t, ul.Children, 2)
	assert.Equal(t, resolve.Entries{{Key: "content", Value: "<b>one</b>"}}, ul.Children[0].Attrs)

	assert.Equal(t, "br", bf.Elements[2].Tag)
	assert.Nil(t, bf.Elements[2].Attrs)
}

func TestParseBuildValues(t *testing.T) {
	bf, err := ParseBuild([]byte(`
elements:
  - tag: td
    attrs:
      colSpan: 2
      hidden: true
      placeholder: null
`), "values.yaml")
	require.NoError(t, err)

	attrs := bf.Elements[0].Attrs
	assert.Equal(t, 2, attrs[0].Value)
	assert.Equal(t, true, attrs[1].Value)
	assert.Nil(t, attrs[2].Value)
}

func TestParseBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no elements", "elements: []", "no elements"},
		{"missing tag", "elements:\n  - attrs: {id: x}\n", "elements[0]: missing tag"},
		{"nested missing tag", "elements:\n  - tag: ul\n    children:\n      - attrs: {}\n", "elements[0].children[0]: missing tag"},
		{"attrs not mapping", "elements:\n  - tag: p\n    attrs: [a, b]\n", "attrs must be a mapping"},
		{"invalid yaml", "elements: [", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBuild([]byte(tt.data), "x.yaml")
			require.Error(t, err)
			te := errors.FromError(err)
			assert.Equal(t, errors.CodeConfig, te.Code)
			assert.Contains(t, te.Detail, tt.want)
		})
	}
}

func TestLoadBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleBuild), 0o644))

	bf, err := LoadBuild(path)
	require.NoError(t, err)
	assert.Len(t, bf.Elements, 3)

	_, err = LoadBuild(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
