// Package summary renders the end-of-game report shown by the quiz screen.
package summary

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/ui/components"
	"github.com/abhisek/articlequest/internal/ui/theme"
)

// Heading returns the summary headline for sum.
func Heading(sum *session.Summary) string {
	return fmt.Sprintf("Game complete! You scored %d / %d", sum.Score, sum.TotalRounds)
}

// RoundLine returns the one-line outcome for an answered round.
func RoundLine(rec session.AnswerRecord) string {
	if rec.IsCorrect {
		return fmt.Sprintf("%s Correct. You chose %q.", components.MarkCorrect, string(rec.Selected))
	}
	return fmt.Sprintf("%s Not this time. You chose %q.", components.MarkIncorrect, string(rec.Selected))
}

// Render draws the summary within width columns. A nil summary renders as
// an empty string.
func Render(sum *session.Summary, width int) string {
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(Heading(sum)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Accent).Italic(true).Render(sum.Message))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Time %d:%02d  Accuracy %.0f%%", mins, secs, sum.Accuracy*100)))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(sum.Answers))
	for _, rec := range sum.Answers {
		rows = append(rows, renderRound(rec))
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))

	return b.String()
}

func renderRound(rec session.AnswerRecord) string {
	prompt := strings.Replace(rec.Prompt, bank.BlankMarker, "____", 1)
	title := theme.Body.Bold(true).
		Render(fmt.Sprintf("Round %d: %s", rec.Round+1, prompt))

	outcome := lipgloss.NewStyle().Foreground(theme.Error)
	if rec.IsCorrect {
		outcome = outcome.Foreground(theme.Success)
	}

	detail := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("The best choice was %q. %s", string(rec.CorrectArticle), rec.Explanation))

	return title + "\n  " + outcome.Render(RoundLine(rec)) + "\n  " + detail
}
