package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Play one game in plain text (no TUI, nothing recorded)",
	Long: `Play one game by typing answers on standard input.

Answer with 1, 2 or 3, or with the article itself. Nothing is written to the
results log, which makes this handy for trying out a custom --bank.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank(cmd)
		if err != nil {
			return err
		}
		cfg, err := sessionConfig(cmd, b)
		if err != nil {
			return err
		}
		return runPractice(cmd.InOrStdin(), cmd.OutOrStdout(), b, cfg)
	},
}

// runPractice plays one game over in and out. Closed input ends the game
// early without an error.
func runPractice(in io.Reader, out io.Writer, b bank.Bank, cfg session.Config) error {
	ctrl, err := session.Start(b, cfg)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	scanner := bufio.NewScanner(in)
	v := ctrl.View()

	for !v.Finished {
		fmt.Fprintf(out, "── Round %d/%d ──\n", v.Round, v.TotalRounds)
		fmt.Fprintln(out, v.Prompt)
		for i, a := range v.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, a)
		}

		var choice articles.Article
		for choice == "" {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return nil
			}
			choice = parseChoice(scanner.Text(), v.Options)
			if choice == "" {
				fmt.Fprintln(out, "Pick 1, 2 or 3 (or type a, an, the).")
			}
		}

		v = ctrl.SubmitAnswer(choice)
		if rec := v.LastAnswer; rec != nil {
			mark := "✗"
			if rec.IsCorrect {
				mark = "✓"
			}
			fmt.Fprintf(out, "%s %s\n\n", mark, session.FeedbackMessage(*rec))
		}
		if !v.Finished {
			v = ctrl.Advance()
		}
	}

	fmt.Fprintf(out, "── Game complete! You scored %d / %d ──\n", v.Score, v.TotalRounds)
	fmt.Fprintln(out, v.Summary)
	return nil
}

// parseChoice maps an option number or article name to an article. It
// returns "" for anything else.
func parseChoice(s string, options []articles.Article) articles.Article {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1]
		}
		return ""
	}
	a, err := articles.Parse(s)
	if err != nil {
		return ""
	}
	return a
}
