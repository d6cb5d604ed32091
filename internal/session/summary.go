package session

import "time"

// Tier buckets a final score into a closing message.
type Tier int

const (
	TierEncouragement Tier = iota // below 5
	TierMid                       // 5-6
	TierHigh                      // 7-8
	TierTop                       // 9 and above
)

// TierFor returns the message tier for a score. Thresholds are fixed and do
// not scale with the number of rounds.
func TierFor(score int) Tier {
	switch {
	case score >= 9:
		return TierTop
	case score >= 7:
		return TierHigh
	case score >= 5:
		return TierMid
	default:
		return TierEncouragement
	}
}

// Message returns the closing message for the tier.
func (t Tier) Message() string {
	switch t {
	case TierTop:
		return "You are an article ace! Keep shining!"
	case TierHigh:
		return "Fantastic effort! A little more practice and you'll master every sentence."
	case TierMid:
		return "Great job! Keep practicing those rules and you'll level up fast."
	default:
		return "You're building strong skills, keep going and those tricky articles will feel easy!"
	}
}

// SummaryMessage returns the closing message for a final score.
func SummaryMessage(score int) string {
	return TierFor(score).Message()
}

// fallbackExplanation is used when a question has no explanation.
const fallbackExplanation = "Remember to think about the sound and specificity."

// FeedbackMessage returns the line shown right after a round is answered.
func FeedbackMessage(rec AnswerRecord) string {
	explanation := rec.Explanation
	if explanation == "" {
		explanation = fallbackExplanation
	}
	if rec.IsCorrect {
		return "Nice! " + explanation
	}
	return "Oops! " + explanation
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID   string
	Duration    time.Duration
	TotalRounds int
	Score       int
	Accuracy    float64
	Tier        Tier
	Message     string
	Answers     []AnswerRecord
}

// Summary returns the finished session's summary, or nil while the session
// is still in progress.
func (c *Controller) Summary() *Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.st
	if !st.finished {
		return nil
	}

	var accuracy float64
	if len(st.rounds) > 0 {
		accuracy = float64(st.score) / float64(len(st.rounds))
	}

	tier := TierFor(st.score)
	return &Summary{
		SessionID:   st.id,
		Duration:    st.finishedAt.Sub(st.startedAt),
		TotalRounds: len(st.rounds),
		Score:       st.score,
		Accuracy:    accuracy,
		Tier:        tier,
		Message:     tier.Message(),
		Answers:     st.history(),
	}
}
