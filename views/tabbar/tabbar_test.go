package tabbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBar(calls *[]string) Model {
	return New([]Tab{
		{Key: "tokens", Content: "Tokens"},
		{Key: "history", Content: "Sent"},
	}, "tokens", func(key string) { *calls = append(*calls, key) })
}

func TestDefaultTab(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)
	assert.Equal(t, "tokens", m.Selected())
	assert.Empty(t, calls)
}

func TestSelectInvokesCallbackOnce(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)

	m = m.Select("history")

	assert.Equal(t, "history", m.Selected())
	assert.Equal(t, []string{"history"}, calls)
}

func TestSelectUnknownKeyIsIgnored(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)

	m = m.Select("settings")

	assert.Equal(t, "tokens", m.Selected())
	assert.Empty(t, calls)
}

func TestClickSelectsTabUnderColumn(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)
	m.View(0)
	require.Len(t, m.areas, 2)

	second := m.areas[1]
	m, ok := m.Click(second.x + 1)

	require.True(t, ok)
	assert.Equal(t, "history", m.Selected())
	assert.Equal(t, []string{"history"}, calls)
}

func TestClickBetweenTabsMisses(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)
	m.View(0)

	gap := m.areas[0].x + m.areas[0].width
	m, ok := m.Click(gap)

	assert.False(t, ok)
	assert.Equal(t, "tokens", m.Selected())
	assert.Empty(t, calls)
}

func TestCenteredViewShiftsAreas(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)
	m.View(0)
	left := m.areas[0].x

	m.View(80)
	assert.Greater(t, m.areas[0].x, left)

	m, ok := m.Click(m.areas[1].x)
	require.True(t, ok)
	assert.Equal(t, "history", m.Selected())
}

func TestNextPrevWrap(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)

	m = m.Next()
	assert.Equal(t, "history", m.Selected())
	m = m.Next()
	assert.Equal(t, "tokens", m.Selected())
	m = m.Prev()
	assert.Equal(t, "history", m.Selected())
	assert.Equal(t, []string{"history", "tokens", "history"}, calls)
}

func TestViewMarksActiveTab(t *testing.T) {
	var calls []string
	m := newTestBar(&calls)
	out := m.View(0)
	assert.Contains(t, out, "Tokens")
	assert.Contains(t, out, "Sent")
}
