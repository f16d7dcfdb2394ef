package log

import (
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
)

func TestPanelHeight(t *testing.T) {
	assert.Equal(t, 4, PanelHeight(12))
	assert.Equal(t, 10, PanelHeight(30))
	assert.Equal(t, 15, PanelHeight(100))
}

func TestRender(t *testing.T) {
	vp := viewport.New(40, 5)
	assert.Contains(t, Render(60, 30, false, "*", vp), "initializing")

	vp.SetContent("INFO hello")
	assert.Contains(t, Render(60, 30, true, "", vp), "hello")
}
