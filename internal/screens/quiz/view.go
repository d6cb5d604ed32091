package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/screens/summary"
	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/ui/components"
	"github.com/abhisek/articlequest/internal/ui/layout"
	"github.com/abhisek/articlequest/internal/ui/theme"
)

const subtitle = "Help your grammar hero pick the perfect article!"

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.ctrl == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Shuffling questions...")
	}

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Subtitle.Width(cw).Align(lipgloss.Center).Render(subtitle))
	sections = append(sections, renderProgress(s.view, cw))

	if s.view.Finished {
		sections = append(sections, summary.Render(s.summary, cw))
	} else {
		sections = append(sections, components.Card(highlightBlank(s.view.Prompt), cw))
		sections = append(sections, s.renderOptions(cw))
		if s.view.ShowingFeedback && s.view.LastAnswer != nil {
			sections = append(sections, renderFeedback(*s.view.LastAnswer, cw))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+content)
}

// renderProgress draws the "Round x of y" line and the bar below it.
func renderProgress(v session.View, cw int) string {
	left := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Round %d of %d", v.Round, v.TotalRounds))
	right := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Score: %d", v.Score))

	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + strings.Repeat(" ", gap) + right

	bar := components.NewProgressBar("", v.Progress, true, cw)
	return line + "\n" + bar.View()
}

// highlightBlank renders the prompt with the blank marker picked out.
func highlightBlank(prompt string) string {
	text := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	blank := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Underline(true)

	before, after, ok := strings.Cut(prompt, bank.BlankMarker)
	if !ok {
		return text.Render(prompt)
	}
	return text.Render(before) + blank.Render(bank.BlankMarker) + text.Render(after)
}

func (s *QuizScreen) renderOptions(cw int) string {
	var selected, correct articles.Article
	answered := s.view.LastAnswer != nil
	if answered {
		selected = s.view.LastAnswer.Selected
		correct = s.view.LastAnswer.CorrectArticle
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.picker.View(answered, selected, correct))
}

func renderFeedback(rec session.AnswerRecord, cw int) string {
	style, mark := theme.Incorrect, components.MarkIncorrect
	if rec.IsCorrect {
		style, mark = theme.Correct, components.MarkCorrect
	}

	msg := layout.Centered(style, cw, mark+" "+session.FeedbackMessage(rec))
	hint := layout.Centered(theme.Hint, cw, "Press Enter for the next round")
	return msg + "\n\n" + hint
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\nCould not start the quiz: %s\n\nPress any key to go back.", msg))
}
