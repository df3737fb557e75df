package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("LOGIN", "first\nsecond", "enter: submit")
	lines := strings.Split(page, "\n")

	assert.Equal(t, "LOGIN", lines[0])
	assert.Contains(t, page, "\n  first\n  second\n")
	assert.Equal(t, "  enter: submit", lines[len(lines)-2])
	assert.Equal(t, "  ctrl+c: quit", lines[len(lines)-1])
}

func TestRenderPage_EmptyBody(t *testing.T) {
	page := renderPage("ABOUT", "  ", "")

	assert.Contains(t, page, "\n  -\n")
	assert.NotContains(t, page, "\n  \n  ctrl+c")
}
