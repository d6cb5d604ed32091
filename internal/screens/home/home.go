// Package home implements the landing screen with the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/router"
	"github.com/abhisek/articlequest/internal/screen"
	"github.com/abhisek/articlequest/internal/screens/history"
	"github.com/abhisek/articlequest/internal/screens/quiz"
	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/store"
	"github.com/abhisek/articlequest/internal/ui/components"
	"github.com/abhisek/articlequest/internal/ui/layout"
	"github.com/abhisek/articlequest/internal/ui/theme"
)

const tagline = "Help your grammar hero pick the perfect article!"

// Stats is the home dashboard, read from the results log.
type Stats struct {
	GamesPlayed int
	BestScore   int
	LastScore   int
	Attempted   int
	Correct     int
}

// Accuracy returns Correct / Attempted, or 0 before any answers.
func (s Stats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

type statsLoadedMsg struct {
	Stats Stats
	Err   error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu      components.Menu
	eventRepo store.EventRepo
	stats     Stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. Games use b and cfg; eventRepo receives
// their events and feeds the dashboard.
func New(b bank.Bank, cfg session.Config, eventRepo store.EventRepo) *HomeScreen {
	if eventRepo == nil {
		eventRepo = store.NopEventRepo{}
	}

	newQuiz := func() screen.Screen { return quiz.New(b, cfg, eventRepo) }

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newQuiz()}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo, newQuiz)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		eventRepo: eventRepo,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the dashboard after a game or the history screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		acc, err := repo.ArticleAccuracy(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		var st Stats
		st.GamesPlayed = len(sessions)
		if len(sessions) > 0 {
			// Newest first.
			st.LastScore = sessions[0].Score
		}
		for _, rec := range sessions {
			st.BestScore = max(st.BestScore, rec.Score)
		}
		for _, a := range acc {
			st.Attempted += a.Attempted
			st.Correct += a.Correct
		}
		return statsLoadedMsg{Stats: st}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		// A broken log leaves the dashboard empty.
		if msg.Err == nil {
			h.stats = msg.Stats
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; the hero is dropped on short terminals.
	compact := height < 24

	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Render(theme.Title.Render(strings.ToUpper(layout.AppName))))
	sections = append(sections, center.Render(theme.Subtitle.Render(tagline)))

	if !compact {
		hero := HeroFor(h.stats.LastScore, h.stats.GamesPlayed > 0)
		sections = append(sections, center.Render(RenderHero(hero)))
	}

	sections = append(sections, renderStats(h.stats, cw))
	sections = append(sections, h.menu.View(22))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.Center(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStats renders the dashboard line in a bordered box.
func renderStats(st Stats, cw int) string {
	var text string
	if st.GamesPlayed == 0 {
		text = lipgloss.NewStyle().Foreground(theme.TextDim).Render("No games yet")
	} else {
		games := lipgloss.NewStyle().Foreground(theme.ArticleA).Bold(true).
			Render(fmt.Sprintf("%d PLAYED", st.GamesPlayed))
		best := lipgloss.NewStyle().Foreground(theme.ArticleThe).Bold(true).
			Render(fmt.Sprintf("BEST %d", st.BestScore))
		acc := lipgloss.NewStyle().Foreground(theme.ArticleAn).Bold(true).
			Render(fmt.Sprintf("%.0f%% ACCURATE", st.Accuracy()*100))
		text = games + "  " + best + "  " + acc
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}
