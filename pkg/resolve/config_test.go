package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-go/tagkit/pkg/dom/domtest"
	"github.com/vango-go/tagkit/pkg/dom/htmldoc"
)

func TestApplyConfig(t *testing.T) {
	el := htmldoc.New().Create("label")
	cfg := Config{
		ID:      String("l1"),
		Class:   []string{"a", "b"},
		Content: String("<b>Name</b>"),
		For:     String("name"),
		Props:   Entries{}.Set("title", "tip"),
	}

	require.NoError(t, ApplyConfig(el, cfg))
	assert.Equal(t, "l1", el.ID())
	assert.Equal(t, []string{"a", "b"}, el.ClassList().Tokens())
	assert.Equal(t, 1, el.Find("b").Length())
	v, _ := el.GetAttribute("for")
	assert.Equal(t, "name", v)
	title, _ := el.Property("title")
	assert.Equal(t, "tip", title)
}

func TestApplyConfigPropsAreLiteral(t *testing.T) {
	el := domtest.NewDocument().CreateElement("div").(*domtest.Element)
	cfg := Config{Props: Entries{}.Set("for", "x").Set("ID", "y")}

	require.NoError(t, ApplyConfig(el, cfg))
	assert.Equal(t, []domtest.Op{domtest.OpSetProperty, domtest.OpSetProperty}, el.Ops())
	assert.Empty(t, el.ID())
	_, ok := el.GetAttribute("for")
	assert.False(t, ok)
}

func TestApplyConfigZero(t *testing.T) {
	assert.True(t, Config{}.IsZero())
	assert.False(t, Config{ID: String("")}.IsZero())

	el := domtest.NewDocument().CreateElement("div").(*domtest.Element)
	require.NoError(t, ApplyConfig(el, Config{}))
	assert.Empty(t, el.Calls)
}

func TestApplyConfigEmptyID(t *testing.T) {
	el := domtest.NewDocument().CreateElement("div").(*domtest.Element)
	require.NoError(t, ApplyConfig(el, Config{ID: String("")}))
	assert.Equal(t, []domtest.Op{domtest.OpSetID}, el.Ops())
}

func TestApplyConfigFailure(t *testing.T) {
	boom := errors.New("nope")
	doc := domtest.NewDocument()
	doc.FailOn(domtest.OpSetAttribute, "for", boom)
	el := doc.CreateElement("label").(*domtest.Element)

	err := ApplyConfig(el, Config{
		ID:    String("a"),
		For:   String("f"),
		Props: Entries{}.Set("title", "t"),
	})

	var ae *AssignmentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ActionFor, ae.Action)
	assert.Equal(t, 1, ae.Index)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "a", el.ID())
	_, ok := el.Property("title")
	assert.False(t, ok)
}
