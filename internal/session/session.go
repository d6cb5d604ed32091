package session

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/bank"
)

// Controller drives one playthrough: it samples rounds from the bank,
// records answers and moves forward through the rounds. Out-of-sequence
// calls are no-ops, so a UI can forward key presses without checking the
// phase first.
//
// A Controller is safe for concurrent use; every operation is applied as a
// single atomic transition.
type Controller struct {
	mu sync.Mutex

	bank   bank.Bank
	rounds int
	rng    *rand.Rand

	now   func() time.Time
	newID func() string

	st *state
}

// Start builds a controller and its first session. The bank is copied, so
// later changes by the caller do not affect sampling.
func Start(b bank.Bank, cfg Config) (*Controller, error) {
	rounds := cfg.rounds()
	if rounds < 0 {
		return nil, fmt.Errorf("%w: rounds per session must be positive, got %d", ErrInvalidConfiguration, rounds)
	}
	if err := bank.Validate(b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	c := &Controller{
		bank:   b.Clone(),
		rounds: rounds,
		rng:    newRand(cfg.RandomSeed),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}

	st, err := c.newState()
	if err != nil {
		return nil, err
	}
	c.st = st
	return c, nil
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (c *Controller) newState() (*state, error) {
	questions, err := bank.Sample(c.bank, c.rounds, c.rng)
	if err != nil {
		return nil, fmt.Errorf("sample rounds: %w", err)
	}
	return newState(c.newID(), questions, c.now()), nil
}

// SubmitAnswer records the learner's choice for the current round.
// Ignored unless the controller is waiting for an answer, and ignored for
// values outside the article enumeration.
func (c *Controller) SubmitAnswer(selected articles.Article) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.st
	if st.phase() != PhaseInRound || !selected.Valid() {
		return c.viewLocked()
	}
	// A round is answered at most once.
	if st.answers[st.current] != nil {
		return c.viewLocked()
	}

	q := st.rounds[st.current].Question
	rec := &AnswerRecord{
		Round:          st.current,
		Prompt:         q.Prompt,
		CorrectArticle: q.Article,
		Selected:       selected,
		Explanation:    q.Explanation,
		IsCorrect:      selected == q.Article,
	}
	st.answers[st.current] = rec
	if rec.IsCorrect {
		st.score++
	}

	st.feedback = true
	if st.isLastRound() {
		st.finished = true
		st.finishedAt = c.now()
	}
	return c.viewLocked()
}

// Advance moves from a round's feedback to the next round. Ignored before
// the current round is answered and after the last round, which ends in
// the finished state instead.
func (c *Controller) Advance() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.st
	if st.phase() != PhaseFeedback || st.isLastRound() {
		return c.viewLocked()
	}
	st.current++
	st.feedback = false
	return c.viewLocked()
}

// Restart discards the current session and starts a new one with a fresh
// sample of rounds. Legal from any phase.
func (c *Controller) Restart() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Sampling was already validated by Start against the same bank and
	// round count, so this cannot fail in practice.
	if st, err := c.newState(); err == nil {
		c.st = st
	}
	return c.viewLocked()
}

// View returns a read-only snapshot of the session.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// CurrentRound returns the round being played or last answered.
func (c *Controller) CurrentRound() Round {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.rounds[c.st.current]
}

// Rounds returns the sampled rounds in play order.
func (c *Controller) Rounds() []Round {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Round, len(c.st.rounds))
	copy(out, c.st.rounds)
	return out
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.phase()
}

// Progress returns the completed fraction of the session in [0, 1].
// A finished session always reports 1.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.progress()
}

// Score returns the number of correctly answered rounds.
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.score
}

// IsFinished reports whether the last round has been answered.
func (c *Controller) IsFinished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.finished
}

// History returns the answer records so far, in round order.
func (c *Controller) History() []AnswerRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.history()
}

// SessionID returns the ID of the current session. Restart assigns a new one.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.id
}

// Elapsed returns the time since the current session started, or its
// total duration once finished.
func (c *Controller) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.finished {
		return c.st.finishedAt.Sub(c.st.startedAt)
	}
	return c.now().Sub(c.st.startedAt)
}

// TotalRounds returns the number of rounds per session.
func (c *Controller) TotalRounds() int {
	return c.rounds
}
