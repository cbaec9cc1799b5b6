package domtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecording(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("DIV").(*Element)

	el.SetID("a")
	require.NoError(t, el.ClassList().Add("x", "y", "x"))
	require.NoError(t, el.SetAttribute("for", "f"))
	require.NoError(t, el.SetProperty("title", "t"))
	require.NoError(t, el.SetInnerHTML("<b>1</b>"))

	assert.Equal(t, "div", el.TagName())
	assert.Equal(t, []Op{OpSetID, OpAddClass, OpAddClass, OpSetAttribute, OpSetProperty, OpSetInnerHTML}, el.Ops())
	assert.Equal(t, []string{"x", "y"}, el.ClassList().Tokens())
	assert.Len(t, doc.Created, 1)
}

func TestFailOn(t *testing.T) {
	boom := errors.New("boom")
	doc := NewDocument()
	doc.FailOn(OpSetProperty, "value", boom)
	doc.FailOn(OpAddClass, "bad", boom)

	el := doc.CreateElement("input")

	err := el.SetProperty("value", "x")
	assert.ErrorIs(t, err, boom)
	_, ok := el.Property("value")
	assert.False(t, ok)

	assert.ErrorIs(t, el.ClassList().Add("ok", "bad"), boom)
	assert.Empty(t, el.ClassList().Tokens())

	assert.NoError(t, el.SetProperty("name", "n"))
}
