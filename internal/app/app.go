package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/router"
	"github.com/abhisek/articlequest/internal/screen"
	"github.com/abhisek/articlequest/internal/screens/home"
	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/store"
	"github.com/abhisek/articlequest/internal/ui/components"
	"github.com/abhisek/articlequest/internal/ui/layout"
)

// Options holds the dependencies the screens need.
type Options struct {
	// Bank is the question bank; nil means bank.Default().
	Bank bank.Bank

	Config session.Config

	// EventRepo receives game events; nil disables the results log.
	EventRepo store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	b := opts.Bank
	if b == nil {
		b = bank.Default()
	}
	homeScreen := home.New(b, opts.Config, opts.EventRepo)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.KeyQuit):
			return m, tea.Quit
		case key.Matches(msg, components.KeyBack):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), components.Hints(components.KeyQuit)...)
	}
	if m.router.Depth() > 1 {
		return components.Hints(components.KeyBack, components.KeyQuit)
	}
	return append([]layout.KeyHint{{Key: "↑↓", Description: "Navigate"}},
		components.Hints(components.KeySelect, components.KeyQuit)...)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
