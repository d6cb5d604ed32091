package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/bank"
	"github.com/abhisek/articlequest/internal/session"
	"github.com/abhisek/articlequest/internal/store"
)

// testCmd returns a fresh command carrying the game flags, parsed from args.
func testCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addGameFlags(c.Flags())
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestParseChoice(t *testing.T) {
	opts := articles.All()
	tests := []struct {
		in   string
		want articles.Article
	}{
		{"1", articles.A},
		{" 2 ", articles.An},
		{"3", articles.The},
		{"THE", articles.The},
		{"an", articles.An},
		{"4", ""},
		{"0", ""},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseChoice(tt.in, opts), "input %q", tt.in)
	}
}

func TestRunPractice_FullGame(t *testing.T) {
	b := bank.Default()
	cfg := session.Config{RoundsPerSession: 3}.WithSeed(5)

	// Work out the right answers from an identically seeded controller.
	probe, err := session.Start(b, cfg)
	require.NoError(t, err)
	var input strings.Builder
	input.WriteString("nope\n")
	for _, r := range probe.Rounds() {
		input.WriteString(string(r.Question.Article) + "\n")
	}

	var out bytes.Buffer
	require.NoError(t, runPractice(strings.NewReader(input.String()), &out, b, cfg))

	got := out.String()
	assert.Contains(t, got, "Pick 1, 2 or 3")
	assert.Contains(t, got, "Round 3/3")
	assert.Equal(t, 3, strings.Count(got, "✓ Nice!"))
	assert.Contains(t, got, "You scored 3 / 3")
	assert.Contains(t, got, session.SummaryMessage(3))
}

func TestRunPractice_InputClosed(t *testing.T) {
	var out bytes.Buffer
	err := runPractice(strings.NewReader("1\n"), &out, bank.Default(), session.Config{RoundsPerSession: 2})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(input closed)")
	assert.NotContains(t, out.String(), "Game complete")
}

func TestRunPractice_InvalidConfig(t *testing.T) {
	err := runPractice(strings.NewReader(""), &bytes.Buffer{}, bank.Default(), session.Config{RoundsPerSession: 50})
	assert.ErrorIs(t, err, session.ErrInvalidConfiguration)
}

func TestSessionConfig(t *testing.T) {
	b := bank.Default()

	cfg, err := sessionConfig(testCmd(t), b)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.RoundsPerSession)
	assert.Nil(t, cfg.RandomSeed)

	cfg, err = sessionConfig(testCmd(t, "--rounds", "4", "--seed", "0"), b)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.RoundsPerSession)
	require.NotNil(t, cfg.RandomSeed, "an explicit zero seed is still a seed")
	assert.Equal(t, uint64(0), *cfg.RandomSeed)

	_, err = sessionConfig(testCmd(t, "--rounds", "13"), b)
	assert.ErrorIs(t, err, session.ErrInvalidConfiguration)

	_, err = sessionConfig(testCmd(t, "--rounds", "0"), b)
	assert.ErrorIs(t, err, session.ErrInvalidConfiguration)
}

func TestLoadBank(t *testing.T) {
	b, err := loadBank(testCmd(t))
	require.NoError(t, err)
	assert.Equal(t, bank.Default(), b)

	path := filepath.Join(t.TempDir(), "bank.json")
	data := `[{"prompt": "I ate ___ apple.", "article": "an", "explanation": "Vowel sound."}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	b, err = loadBank(testCmd(t, "--bank", path))
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, articles.An, b[0].Article)

	_, err = loadBank(testCmd(t, "--bank", filepath.Join(t.TempDir(), "missing.json")))
	var loadErr *bank.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveDBPath_Flag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quest.db")
	got, err := resolveDBPath(testCmd(t, "--db", path))
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.DirExists(t, filepath.Dir(path))
}

func TestResolveDBPath_Env(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("ARTICLEQUEST_DB", path)
	got, err := resolveDBPath(testCmd(t))
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestPrintHistory(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, nil, nil)
	assert.Contains(t, out.String(), "No games yet.")

	out.Reset()
	sessions := []store.SessionSummaryRecord{
		{Timestamp: time.Now(), SessionID: "s1", RoundsPlanned: 10, Score: 7, DurationSecs: 83},
	}
	acc := map[articles.Article]store.AccuracyStat{
		articles.The: {Attempted: 4, Correct: 1},
	}
	printHistory(&out, sessions, acc)

	got := out.String()
	assert.Contains(t, got, " 7/10")
	assert.Contains(t, got, "1:23")
	assert.Contains(t, got, "70%")
	assert.Contains(t, got, "THE 1/4 (25%)")
	assert.Contains(t, got, "A -")
	assert.Contains(t, got, "1 games")
}
