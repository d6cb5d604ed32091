package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierEncouragement},
		{4, TierEncouragement},
		{5, TierMid},
		{6, TierMid},
		{7, TierHigh},
		{8, TierHigh},
		{9, TierTop},
		{10, TierTop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score), "score %d", tt.score)
	}
}

func TestSummaryMessage(t *testing.T) {
	assert.Equal(t, "You are an article ace! Keep shining!", SummaryMessage(10))
	assert.True(t, strings.HasPrefix(SummaryMessage(8), "Fantastic effort"))
	assert.True(t, strings.HasPrefix(SummaryMessage(5), "Great job"))
	assert.True(t, strings.HasPrefix(SummaryMessage(2), "You're building strong skills"))
}

func TestFeedbackMessage(t *testing.T) {
	right := AnswerRecord{IsCorrect: true, Explanation: "Vowel sound."}
	wrong := AnswerRecord{IsCorrect: false, Explanation: "Vowel sound."}
	empty := AnswerRecord{IsCorrect: false}

	assert.Equal(t, "Nice! Vowel sound.", FeedbackMessage(right))
	assert.Equal(t, "Oops! Vowel sound.", FeedbackMessage(wrong))
	assert.Equal(t, "Oops! Remember to think about the sound and specificity.", FeedbackMessage(empty))
}
