package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/articlequest/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active bank (built-in unless --bank is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank(cmd)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%3s  %-4s  %s\n", "#", "Art.", "Prompt")
		fmt.Fprintln(w, strings.Repeat("─", 72))
		for i, q := range b {
			prompt := q.Prompt
			if len(prompt) > 60 {
				prompt = prompt[:57] + "..."
			}
			fmt.Fprintf(w, "%3d  %-4s  %s\n", i+1, q.Article, prompt)
		}

		fmt.Fprintf(w, "\n%d questions\n", len(b))
		return nil
	},
}

var bankCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a JSON question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d questions\n", args[0], len(b))
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankCheckCmd)
}
