// Package quiz implements the screen that plays one Article Quest game.
package quiz

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/router"
	"github.com/abhisek/articlequest/internal/screen"
	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/store"
	"github.com/abhisek/articlequest/internal/ui/components"
	"github.com/abhisek/articlequest/internal/ui/layout"
)

var (
	keyNext = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Next round"),
	)
	keyRestart = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Restart"),
	)
	keyPlayAgain = key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("R", "Play again"),
	)
)

// QuizScreen implements screen.Screen for a game in progress.
type QuizScreen struct {
	bank      bank.Bank
	cfg       session.Config
	eventRepo store.EventRepo

	ctrl    *session.Controller
	view    session.View
	summary *session.Summary
	picker  components.ArticlePicker
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over b. A nil eventRepo disables logging.
func New(b bank.Bank, cfg session.Config, eventRepo store.EventRepo) *QuizScreen {
	if eventRepo == nil {
		eventRepo = store.NopEventRepo{}
	}
	return &QuizScreen{
		bank:      b,
		cfg:       cfg,
		eventRepo: eventRepo,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	b, cfg, repo := s.bank, s.cfg, s.eventRepo
	return func() tea.Msg {
		ctrl, err := session.Start(b, cfg)
		if err != nil {
			return quizStartedMsg{Err: err}
		}
		_ = repo.AppendSessionEvent(context.Background(), startEvent(ctrl.View()))
		return quizStartedMsg{Ctrl: ctrl}
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	if s.ctrl == nil {
		return ""
	}
	return fmt.Sprintf("Score: %d", s.view.Score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.ctrl == nil {
		return components.Hints(components.KeyBack)
	}
	switch s.view.Phase {
	case session.PhaseFeedback:
		return components.Hints(keyNext, keyRestart, components.KeyBack)
	case session.PhaseFinished:
		return components.Hints(keyPlayAgain, components.KeyBack)
	}
	hints := components.Hints(s.picker.Bindings()...)
	return append(hints, components.Hints(components.KeySelect, keyRestart, components.KeyBack)...)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.ctrl = msg.Ctrl
		s.sync(s.ctrl.View())
		return s, nil

	case eventsLoggedMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.ctrl == nil {
		return s, nil
	}

	switch s.view.Phase {
	case session.PhaseInRound:
		if key.Matches(msg, keyRestart) {
			return s, s.restart()
		}
		picker, a, chosen := s.picker.Update(msg)
		s.picker = picker
		if chosen {
			return s, s.submit(a)
		}

	case session.PhaseFeedback:
		switch {
		case key.Matches(msg, keyNext):
			s.sync(s.ctrl.Advance())
		case key.Matches(msg, keyRestart):
			return s, s.restart()
		}

	case session.PhaseFinished:
		if key.Matches(msg, keyPlayAgain) {
			return s, s.restart()
		}
	}
	return s, nil
}

// submit hands the selection to the controller and logs the answer, plus
// the end of the game when it was the last round.
func (s *QuizScreen) submit(a articles.Article) tea.Cmd {
	before := s.view
	v := s.ctrl.SubmitAnswer(a)
	s.sync(v)

	if before.Phase != session.PhaseInRound || v.LastAnswer == nil {
		return nil
	}

	events := []any{answerEvent(v.SessionID, *v.LastAnswer)}
	if v.Finished {
		s.summary = s.ctrl.Summary()
		events = append(events, endEvent(s.summary))
	}
	return s.record(events...)
}

// restart abandons the current game and starts a new one. An unfinished
// game is logged as restarted.
func (s *QuizScreen) restart() tea.Cmd {
	var events []any
	if !s.view.Finished {
		events = append(events, store.SessionEventData{
			SessionID:      s.view.SessionID,
			Action:         store.ActionRestart,
			RoundsPlanned:  s.view.TotalRounds,
			RoundsAnswered: len(s.view.History),
			Score:          s.view.Score,
			DurationSecs:   int(s.ctrl.Elapsed().Seconds()),
		})
	}

	s.summary = nil
	s.sync(s.ctrl.Restart())
	events = append(events, startEvent(s.view))
	return s.record(events...)
}

// sync stores the latest view and resets the picker for a new round.
func (s *QuizScreen) sync(v session.View) {
	newRound := v.Phase == session.PhaseInRound &&
		(s.view.Phase != session.PhaseInRound || v.Round != s.view.Round || v.SessionID != s.view.SessionID)
	s.view = v
	if newRound || len(s.picker.Options) == 0 {
		s.picker = components.NewArticlePicker(v.Options)
	}
}

// record writes events to the log in order, off the update loop.
func (s *QuizScreen) record(events ...any) tea.Cmd {
	if len(events) == 0 {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()
		var errs []error
		for _, ev := range events {
			var err error
			switch ev := ev.(type) {
			case store.SessionEventData:
				err = repo.AppendSessionEvent(ctx, ev)
			case store.AnswerEventData:
				err = repo.AppendAnswerEvent(ctx, ev)
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
		return eventsLoggedMsg{Err: errors.Join(errs...)}
	}
}

func startEvent(v session.View) store.SessionEventData {
	return store.SessionEventData{
		SessionID:     v.SessionID,
		Action:        store.ActionStart,
		RoundsPlanned: v.TotalRounds,
	}
}

func answerEvent(sessionID string, rec session.AnswerRecord) store.AnswerEventData {
	return store.AnswerEventData{
		SessionID:       sessionID,
		Round:           rec.Round,
		Prompt:          rec.Prompt,
		CorrectArticle:  rec.CorrectArticle,
		SelectedArticle: rec.Selected,
		Correct:         rec.IsCorrect,
	}
}

func endEvent(sum *session.Summary) store.SessionEventData {
	return store.SessionEventData{
		SessionID:      sum.SessionID,
		Action:         store.ActionEnd,
		RoundsPlanned:  sum.TotalRounds,
		RoundsAnswered: len(sum.Answers),
		Score:          sum.Score,
		DurationSecs:   int(sum.Duration.Seconds()),
	}
}
