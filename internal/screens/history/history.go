package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/router"
	"github.com/abhisek/articlequest/internal/screen"
	"github.com/abhisek/articlequest/internal/store"
	"github.com/abhisek/articlequest/internal/ui/components"
	"github.com/abhisek/articlequest/internal/ui/layout"
	"github.com/abhisek/articlequest/internal/ui/theme"
)

// sessionLimit caps how many past games are listed.
const sessionLimit = 50

var keyPlay = key.NewBinding(
	key.WithKeys("p"),
	key.WithHelp("P", "Play"),
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Accuracy map[articles.Article]store.AccuracyStat
	Err      error
}

// HistoryScreen displays finished games and per-article accuracy.
type HistoryScreen struct {
	eventRepo store.EventRepo
	play      func() screen.Screen
	sessions  []store.SessionSummaryRecord
	accuracy  map[articles.Article]store.AccuracyStat
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. play builds the quiz screen started by
// the play key; nil disables it.
func New(eventRepo store.EventRepo, play func() screen.Screen) *HistoryScreen {
	if eventRepo == nil {
		eventRepo = store.NopEventRepo{}
	}
	return &HistoryScreen{
		eventRepo: eventRepo,
		play:      play,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		acc, err := repo.ArticleAccuracy(ctx)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions, Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Accuracy: acc}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	play := keyPlay
	play.SetEnabled(s.play != nil)
	return components.Hints(
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Navigate")),
		play,
		components.KeyBack,
	)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.sessions = msg.Sessions
		s.accuracy = msg.Accuracy
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.KeyBack):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keyPlay):
			if s.play == nil {
				return s, nil
			}
			next := s.play()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case key.Matches(msg, components.KeyUp):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, components.KeyDown):
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Press P to play!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderAccuracy(s.accuracy)))
	b.WriteString("\n\n")

	for i, rec := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		style := theme.Unselected
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+SessionLine(rec))))
		b.WriteString("\n")
	}

	return b.String()
}

// SessionLine formats one finished game.
func SessionLine(rec store.SessionSummaryRecord) string {
	dateStr := rec.Timestamp.Local().Format("Jan 02, 2006 15:04")
	mins := rec.DurationSecs / 60
	secs := rec.DurationSecs % 60
	return fmt.Sprintf("%s  %d:%02d  %d/%d  %.0f%% accuracy",
		dateStr, mins, secs, rec.Score, rec.RoundsPlanned, rec.Accuracy()*100)
}

// AccuracyLine formats the record for one article, e.g. "AN 3/4 (75%)".
func AccuracyLine(a articles.Article, stat store.AccuracyStat) string {
	if stat.Attempted == 0 {
		return fmt.Sprintf("%s -", a.Label())
	}
	return fmt.Sprintf("%s %d/%d (%.0f%%)", a.Label(), stat.Correct, stat.Attempted, stat.Accuracy()*100)
}

// RenderAccuracy renders one colored cell per article, in option order.
func RenderAccuracy(acc map[articles.Article]store.AccuracyStat) string {
	cells := make([]string, 0, len(articles.All()))
	for _, a := range articles.All() {
		cell := lipgloss.NewStyle().
			Foreground(theme.ArticleColor(a)).
			Bold(true).
			Padding(0, 2).
			Render(AccuracyLine(a, acc[a]))
		cells = append(cells, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}
