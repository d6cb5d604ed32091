package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "articlequest",
	Short: "Article quiz for the terminal",
	Long:  "Article Quest: pick a, an or the for each sentence and see how many you get right.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGameFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// addGameFlags registers the flags shared by every subcommand.
func addGameFlags(fs *pflag.FlagSet) {
	fs.String("db", "", "Path to SQLite database file (overrides ARTICLEQUEST_DB env var)")
	fs.Bool("no-history", false, "Do not record games in the results log")
	fs.String("bank", "", "Path to a JSON question bank (default: built-in bank)")
	fs.Int("rounds", session.DefaultRoundsPerSession, "Rounds per game")
	fs.Uint64("seed", 0, "Random seed for question order (default: random)")
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ARTICLEQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
