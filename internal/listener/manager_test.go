package listener

import (
	"testing"

	"github.com/atinylittleshell/strpath/internal/headless"
	"github.com/atinylittleshell/strpath/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	s := NewSettings(true)
	assert.True(t, s.Enabled())
	assert.False(t, s.Toggle())
	assert.False(t, s.Enabled())
	assert.True(t, s.Toggle())

	s.SetEnabled(false)
	assert.False(t, s.Enabled())
}

func TestManager_AttachDetach(t *testing.T) {
	m := newTestManager(t, nil)
	v1 := headless.New(1, "", "")
	v2 := headless.New(2, "", "")

	l1 := m.Attach(v1)
	m.Attach(v2)
	assert.Same(t, l1, m.Attach(v1))
	assert.Equal(t, []host.ViewID{1, 2}, m.Views())

	got, ok := m.Get(1)
	require.True(t, ok)
	assert.Same(t, l1, got)
	assert.Same(t, v1, got.View())

	m.Detach(1)
	_, ok = m.Get(1)
	assert.False(t, ok)
	assert.Equal(t, []host.ViewID{2}, m.Views())

	m.Detach(42)
	assert.Equal(t, []host.ViewID{2}, m.Views())
}

func TestManager_DefaultSettings(t *testing.T) {
	m := NewManager(Options{})
	assert.True(t, m.Settings().Enabled())
}

func TestManager_ToggleTwiceRestoresState(t *testing.T) {
	m := newTestManager(t, nil)
	view := headless.New(1, `"/tmp/`, "")
	m.Attach(view)

	assert.False(t, m.Toggle(view))
	assert.True(t, m.Toggle(view))
	assert.True(t, m.Settings().Enabled())

	cmds := view.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, cmds[0], cmds[1])
	assert.Equal(t, host.CommandAutoComplete, cmds[0].Name)
	assert.Equal(t, host.AutoCompleteArgs(), cmds[0].Args)
}

func TestManager_ToggleDisablesEveryView(t *testing.T) {
	m := newTestManager(t, nil)

	views := []*headless.View{
		headless.New(1, `"/tmp/`, ""),
		headless.New(2, `'/etc/`, ""),
		headless.New(3, `plain`, ""),
	}
	var listeners []*Listener
	for _, v := range views {
		l := m.Attach(v)
		l.OnActivated()
		listeners = append(listeners, l)
	}
	require.True(t, listeners[0].IsActive())
	require.True(t, listeners[1].IsActive())

	assert.False(t, m.Toggle(views[0]))

	for _, l := range listeners {
		assert.False(t, l.IsActive())
		assert.NotPanics(t, l.OnSelectionModified)
		assert.False(t, l.IsActive())
	}

	assert.True(t, m.Toggle(nil))
	listeners[1].OnTextCommand(host.CommandAutoComplete, nil)
	assert.True(t, listeners[1].IsActive())
}
