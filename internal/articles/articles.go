package articles

import (
	"fmt"
	"strings"
)

// Article is one of the three determiners a learner chooses between.
type Article string

const (
	A   Article = "a"
	An  Article = "an"
	The Article = "the"
)

// All returns the articles in display order.
func All() []Article {
	return []Article{A, An, The}
}

// Valid reports whether a is one of the three supported articles.
func (a Article) Valid() bool {
	switch a {
	case A, An, The:
		return true
	default:
		return false
	}
}

// Label returns the upper-case form shown on option buttons.
func (a Article) Label() string {
	return strings.ToUpper(string(a))
}

// Shortcut returns the single key that selects the article in the UI.
func (a Article) Shortcut() string {
	switch a {
	case A:
		return "a"
	case An:
		return "n"
	case The:
		return "t"
	default:
		return ""
	}
}

// Parse converts user or file input into an Article.
// Surrounding whitespace and letter case are ignored.
func Parse(s string) (Article, error) {
	a := Article(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown article %q (want a, an or the)", s)
	}
	return a, nil
}
