package bank

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestDefault_IsValid(t *testing.T) {
	b := Default()
	require.Len(t, b, 12)
	require.NoError(t, Validate(b))
}

func TestDefault_ReturnsCopy(t *testing.T) {
	b := Default()
	b[0].Prompt = "changed ___"
	assert.NotEqual(t, "changed ___", Default()[0].Prompt)
}

func TestSample_DistinctRounds(t *testing.T) {
	b := Default()
	got, err := Sample(b, 10, seeded(1))
	require.NoError(t, err)
	require.Len(t, got, 10)

	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.Prompt] {
			t.Fatalf("question repeated within one sample: %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func TestSample_DoesNotMutateBank(t *testing.T) {
	b := Default()
	before := b.Clone()
	for i := 0; i < 20; i++ {
		_, err := Sample(b, 10, seeded(uint64(i)))
		require.NoError(t, err)
	}
	assert.Equal(t, before, b)
}

func TestSample_Deterministic(t *testing.T) {
	first, err := Sample(Default(), 10, seeded(42))
	require.NoError(t, err)
	second, err := Sample(Default(), 10, seeded(42))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSample_WholeBank(t *testing.T) {
	b := Default()
	got, err := Sample(b, len(b), seeded(3))
	require.NoError(t, err)
	assert.ElementsMatch(t, []Question(b), got)
}

func TestSample_InvalidCount(t *testing.T) {
	b := Default()
	for _, n := range []int{0, -1, 13} {
		_, err := Sample(b, n, seeded(1))
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Sample(n=%d) err = %v, want ErrInvalidConfiguration", n, err)
		}
	}
}

func TestSample_Unbiased(t *testing.T) {
	const (
		runs  = 12000
		count = 10
	)
	b := Default()
	rng := seeded(7)

	appearances := make(map[string]int)
	firstSlot := make(map[string]int)
	for i := 0; i < runs; i++ {
		got, err := Sample(b, count, rng)
		require.NoError(t, err)
		for _, q := range got {
			appearances[q.Prompt]++
		}
		firstSlot[got[0].Prompt]++
	}

	// Each question is expected in 10/12 of the samples and in the first
	// slot 1/12 of the time. Tolerances are many standard deviations wide.
	wantAppear := runs * count / len(b)
	wantFirst := runs / len(b)
	for _, q := range b {
		assert.InDelta(t, wantAppear, appearances[q.Prompt], 500, "appearances of %q", q.Prompt)
		assert.InDelta(t, wantFirst, firstSlot[q.Prompt], 200, "first-slot count of %q", q.Prompt)
	}
}

func TestValidate(t *testing.T) {
	good := Question{Prompt: "I saw ___ owl.", Article: articles.An, Explanation: "Vowel sound."}

	tests := []struct {
		name    string
		bank    Bank
		wantErr string
	}{
		{"ok", Bank{good}, ""},
		{"empty", Bank{}, "bank is empty"},
		{"no blank", Bank{{Prompt: "I saw owl.", Article: articles.An, Explanation: "x"}}, "exactly one"},
		{"two blanks", Bank{{Prompt: "___ and ___", Article: articles.An, Explanation: "x"}}, "found 2"},
		{"bad article", Bank{{Prompt: "___ owl", Article: "some", Explanation: "x"}}, "unknown article"},
		{"no explanation", Bank{{Prompt: "___ owl", Article: articles.An, Explanation: " "}}, "explanation is empty"},
		{"duplicate", Bank{good, good}, "duplicate of question 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.bank)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Valid(t *testing.T) {
	src := `[
		{"prompt": "___ owl hooted.", "article": "an", "explanation": "Owl starts with a vowel sound."},
		{"prompt": "Pass me ___ salt.", "article": "the", "explanation": "A specific salt shaker."}
	]`
	b, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, b, 2)
	assert.Equal(t, articles.An, b[0].Article)
	assert.Equal(t, "Pass me ___ salt.", b[1].Prompt)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not json", `{"prompt":`},
		{"not an array", `{"prompt": "___ owl", "article": "an", "explanation": "x"}`},
		{"empty array", `[]`},
		{"unknown article", `[{"prompt": "___ owl", "article": "some", "explanation": "x"}]`},
		{"missing explanation", `[{"prompt": "___ owl", "article": "an"}]`},
		{"extra field", `[{"prompt": "___ owl", "article": "an", "explanation": "x", "level": 2}]`},
		{"no blank", `[{"prompt": "an owl", "article": "an", "explanation": "x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			var le *LoadError
			assert.ErrorAs(t, err, &le)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	src := `[{"prompt": "She ate ___ egg.", "article": "an", "explanation": "Egg starts with a vowel."}]`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, b, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, filepath.Join(dir, "missing.json"), le.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
