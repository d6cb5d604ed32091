package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/articlequest/internal/router"
)

func TestNewAppModel_StartsHome(t *testing.T) {
	m := newAppModel(Options{})
	require.NotNil(t, m.router.Active())
	assert.Equal(t, "Home", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
	assert.NotNil(t, m.Init(), "home loads its dashboard on init")
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestAppModel_EscPopsPushedScreen(t *testing.T) {
	m := newAppModel(Options{})

	// Enter on the first menu item starts a quiz.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)

	model, _ := m.Update(push)
	m = model.(AppModel)
	assert.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Quiz", m.router.Active().Title())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok = cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestAppModel_ViewTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	v := model.(AppModel).View()
	assert.True(t, v.AltScreen)
}

func TestAppModel_FooterHints(t *testing.T) {
	m := newAppModel(Options{})
	hints := m.footerHints(m.router.Active())
	require.NotEmpty(t, hints)
	assert.Equal(t, "Quit", hints[len(hints)-1].Description)
}
