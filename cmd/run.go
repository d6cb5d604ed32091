package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/articlequest/internal/app"
	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/store"
)

// runApp resolves the bank, config and results log, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	b, err := loadBank(cmd)
	if err != nil {
		return err
	}
	cfg, err := sessionConfig(cmd, b)
	if err != nil {
		return err
	}

	opts := app.Options{Bank: b, Config: cfg}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		opts.EventRepo = store.NopEventRepo{}
		return app.Run(opts)
	}

	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Results log unavailable:", err)
		fmt.Fprintln(os.Stderr, "Games will not be recorded.")
		opts.EventRepo = store.NopEventRepo{}
	} else {
		defer st.Close()
		opts.EventRepo = st.EventRepo()
	}

	return app.Run(opts)
}

// openStore opens the results log at the resolved DB path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadBank returns the bank named by --bank, or the built-in one.
func loadBank(cmd *cobra.Command) (bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return bank.Default(), nil
	}
	b, err := bank.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// sessionConfig builds the session config from --rounds and --seed and
// checks it against b up front so a bad flag fails before the TUI starts.
func sessionConfig(cmd *cobra.Command, b bank.Bank) (session.Config, error) {
	cfg := session.DefaultConfig()

	rounds, _ := cmd.Flags().GetInt("rounds")
	if rounds <= 0 || rounds > len(b) {
		return cfg, fmt.Errorf("--rounds must be between 1 and %d: %w", len(b), session.ErrInvalidConfiguration)
	}
	cfg.RoundsPerSession = rounds

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		cfg = cfg.WithSeed(seed)
	}
	return cfg, nil
}
