package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleItemFilterValue(t *testing.T) {
	assert.Equal(t, "ls", NewSimpleItem("ls", "desc").FilterValue())
	assert.Equal(t, "for f\ndone", NewFilterableItem("for f ...", "desc", "for f\ndone").FilterValue())
}

func TestNewList(t *testing.T) {
	l := NewList(StringsToItems([]string{"a", "b"}), "History", 80, 20)
	assert.Equal(t, "History", l.Title)
	assert.Len(t, l.Items(), 2)
	assert.True(t, l.FilteringEnabled())
}
