package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/screens/history"
	"github.com/abhisek/articlequest/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent games and accuracy per article",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		acc, err := repo.ArticleAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}

		printHistory(cmd.OutOrStdout(), sessions, acc)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of games to show (0 for all)")
}

// printHistory writes the plain-text history report.
func printHistory(w io.Writer, sessions []store.SessionSummaryRecord, acc map[articles.Article]store.AccuracyStat) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No games yet.")
		return
	}

	fmt.Fprintf(w, "%-19s  %5s  %6s  %8s\n", "Finished", "Score", "Time", "Accuracy")
	fmt.Fprintln(w, strings.Repeat("─", 45))
	for _, s := range sessions {
		fmt.Fprintf(w, "%-19s  %2d/%-2d  %3d:%02d  %7.0f%%\n",
			s.Timestamp.Local().Format("2006-01-02 15:04:05"),
			s.Score, s.RoundsPlanned,
			s.DurationSecs/60, s.DurationSecs%60,
			s.Accuracy()*100)
	}

	fmt.Fprintln(w)
	parts := make([]string, 0, len(articles.All()))
	for _, a := range articles.All() {
		parts = append(parts, history.AccuracyLine(a, acc[a]))
	}
	fmt.Fprintln(w, "By article: "+strings.Join(parts, "  "))
	fmt.Fprintf(w, "\n%d games\n", len(sessions))
}
