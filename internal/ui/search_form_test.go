package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchForm_SubmitsTypedQuery(t *testing.T) {
	f := NewSearchForm(DefaultKeyMap())
	f.Update(keyMsg("Mew"))
	assert.Equal(t, "Mew", f.Query())

	_, cmd := f.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SearchSubmittedMsg{Query: "Mew"}, cmd())
	assert.Equal(t, "Mew", f.Query(), "submitting keeps the input")
}

func TestSearchForm_BlankQueryIgnored(t *testing.T) {
	f := NewSearchForm(DefaultKeyMap())

	_, cmd := f.Update(keyMsg("enter"))
	assert.Nil(t, cmd)

	f.Update(keyMsg("  "))
	_, cmd = f.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
}

func TestSearchForm_SetWidthClamps(t *testing.T) {
	f := NewSearchForm(DefaultKeyMap())

	f.SetWidth(0)
	assert.Equal(t, 10, f.input.Width)
	f.SetWidth(50)
	assert.Equal(t, 34, f.input.Width)
	f.SetWidth(500)
	assert.Equal(t, 60, f.input.Width)
}
