package session

import "github.com/abhisek/articlequest/internal/articles"

// View is a read-only projection of the session for the presentation layer.
// It carries data only; colors, marks and button states are for the
// caller to derive.
type View struct {
	SessionID string
	Phase     Phase

	// Prompt is the sentence for the current round.
	Prompt  string
	Options []articles.Article

	// Round is one-based and never exceeds TotalRounds.
	Round       int
	TotalRounds int
	Score       int

	ShowingFeedback bool

	// LastAnswer is the record for the current round once it has been
	// answered, nil while waiting for an answer.
	LastAnswer *AnswerRecord

	Finished bool
	History  []AnswerRecord

	// Summary is the closing message, set only when Finished.
	Summary string

	Progress float64
}

func (c *Controller) viewLocked() View {
	st := c.st
	v := View{
		SessionID:       st.id,
		Phase:           st.phase(),
		Prompt:          st.rounds[st.current].Question.Prompt,
		Options:         articles.All(),
		Round:           min(st.current+1, len(st.rounds)),
		TotalRounds:     len(st.rounds),
		Score:           st.score,
		ShowingFeedback: st.feedback,
		Finished:        st.finished,
		History:         st.history(),
		Progress:        st.progress(),
	}
	if rec := st.answers[st.current]; rec != nil {
		last := *rec
		v.LastAnswer = &last
	}
	if st.finished {
		v.Summary = SummaryMessage(st.score)
	}
	return v
}
