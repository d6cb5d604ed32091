package bank

import "github.com/abhisek/articlequest/internal/articles"

// BlankMarker is the placeholder in a prompt where the article goes.
const BlankMarker = "___"

// Question is a single fill-in-the-article sentence.
type Question struct {
	// Prompt is the sentence shown to the learner. Contains exactly one
	// BlankMarker.
	Prompt string `json:"prompt"`

	// Article is the correct answer for the blank.
	Article articles.Article `json:"article"`

	// Explanation is shown after the learner answers, right or wrong.
	Explanation string `json:"explanation"`
}

// Bank is the pool of questions a session samples from.
type Bank []Question

// Len returns the number of questions in the bank.
func (b Bank) Len() int {
	return len(b)
}

// Clone returns a copy that shares no backing array with b.
func (b Bank) Clone() Bank {
	out := make(Bank, len(b))
	copy(out, b)
	return out
}

// Default returns a fresh copy of the built-in question bank.
func Default() Bank {
	return defaultQuestions.Clone()
}

var defaultQuestions = Bank{
	{
		Prompt:      "___ apple a day keeps the doctor away.",
		Article:     articles.An,
		Explanation: "Use \"an\" before vowel sounds like the 'a' in apple.",
	},
	{
		Prompt:      "Please hand me ___ salt from the table.",
		Article:     articles.The,
		Explanation: "We use \"the\" when both speaker and listener know the specific thing.",
	},
	{
		Prompt:      "Maya adopted ___ curious kitten from the shelter.",
		Article:     articles.A,
		Explanation: "Use \"a\" to introduce a singular noun that is not specific yet.",
	},
	{
		Prompt:      "___ orange umbrella is hanging by the door.",
		Article:     articles.An,
		Explanation: "Use \"an\" before words that begin with a vowel sound such as orange.",
	},
	{
		Prompt:      "We watched ___ elephants at the watering hole.",
		Article:     articles.The,
		Explanation: "\"The\" points to specific elephants that both people can identify.",
	},
	{
		Prompt:      "Dad parked ___ car in the driveway.",
		Article:     articles.The,
		Explanation: "It refers to the family's known car, so the definite article \"the\" is best.",
	},
	{
		Prompt:      "She wants to be ___ astronaut when she grows up.",
		Article:     articles.An,
		Explanation: "Astronaut begins with a vowel sound (ă), so \"an\" fits smoothly.",
	},
	{
		Prompt:      "I found ___ unique seashell on the beach.",
		Article:     articles.A,
		Explanation: "Unique starts with a \"yoo\" sound, so it takes \"a\" instead of \"an\".",
	},
	{
		Prompt:      "___ hour flew by while we played the game.",
		Article:     articles.An,
		Explanation: "Hour begins with a silent h, so the vowel sound \"our\" needs \"an\".",
	},
	{
		Prompt:      "___ students who studied together aced the quiz!",
		Article:     articles.The,
		Explanation: "The group of students is specific, so use the definite article \"the\".",
	},
	{
		Prompt:      "They rescued ___ injured owl last night.",
		Article:     articles.An,
		Explanation: "Injured starts with a vowel sound, so choose \"an\".",
	},
	{
		Prompt:      "Leo packed ___ sandwich for the picnic.",
		Article:     articles.A,
		Explanation: "Sandwich is a singular consonant sound, so we use \"a\".",
	},
}
