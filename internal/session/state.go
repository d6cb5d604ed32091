package session

import (
	"time"

	"github.com/abhisek/articlequest/internal/articles"
	"github.com/abhisek/articlequest/internal/bank"
)

// Phase is the controller's position in the round cycle.
type Phase int

const (
	PhaseInRound  Phase = iota // Waiting for an answer
	PhaseFeedback              // Answer recorded, feedback on screen
	PhaseFinished              // Last round answered
)

func (p Phase) String() string {
	switch p {
	case PhaseInRound:
		return "in-round"
	case PhaseFeedback:
		return "feedback"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Round is a bank question bound to its position in the session.
type Round struct {
	// Index is the zero-based round number.
	Index    int
	Question bank.Question
}

// AnswerRecord is the outcome of one answered round. Never modified once
// created.
type AnswerRecord struct {
	// Round is the zero-based round number.
	Round          int
	Prompt         string
	CorrectArticle articles.Article
	Selected       articles.Article
	Explanation    string
	IsCorrect      bool
}

// state is the mutable aggregate for one playthrough. Restart swaps it out
// wholesale; nothing carries over.
type state struct {
	id         string
	startedAt  time.Time
	finishedAt time.Time

	rounds  []Round
	current int
	score   int

	// answers is indexed by round and nil until that round is answered.
	answers []*AnswerRecord

	feedback bool
	finished bool
}

func newState(id string, questions []bank.Question, now time.Time) *state {
	rounds := make([]Round, len(questions))
	for i, q := range questions {
		rounds[i] = Round{Index: i, Question: q}
	}
	return &state{
		id:        id,
		startedAt: now,
		rounds:    rounds,
		answers:   make([]*AnswerRecord, len(rounds)),
	}
}

func (s *state) phase() Phase {
	switch {
	case s.finished:
		return PhaseFinished
	case s.feedback:
		return PhaseFeedback
	default:
		return PhaseInRound
	}
}

func (s *state) isLastRound() bool {
	return s.current == len(s.rounds)-1
}

// history returns the answered rounds in order.
func (s *state) history() []AnswerRecord {
	out := make([]AnswerRecord, 0, len(s.answers))
	for _, a := range s.answers {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}

// progress is (round index + feedback shown) / total, or 1 once finished.
func (s *state) progress() float64 {
	total := len(s.rounds)
	if total == 0 || s.finished {
		return 1
	}
	done := s.current
	if s.feedback {
		done++
	}
	return float64(done) / float64(total)
}
