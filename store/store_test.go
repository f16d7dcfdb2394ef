package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchNotifiesSubscribers(t *testing.T) {
	st := New(NewState())

	var seen []string
	st.Subscribe(func(s State) { seen = append(seen, s.Warning) })

	st.Dispatch(DisplayWarning("one"))
	st.Dispatch(nil, DisplayWarning("two"), HideWarning())

	assert.Equal(t, []string{"one", ""}, seen)
	assert.Empty(t, st.State().Warning)
}

func TestDispatchReturnsNewState(t *testing.T) {
	st := New(NewState())
	s := st.Dispatch(ShowConfigPage())
	assert.Equal(t, ViewConfig, s.CurrentView.Name)
	assert.Equal(t, s, st.State())
}
