package bank

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that every question is usable in a session.
// All problems are reported together.
func Validate(b Bank) error {
	if len(b) == 0 {
		return errors.New("bank is empty")
	}

	var errs []error
	seen := make(map[string]int, len(b))
	for i, q := range b {
		if n := strings.Count(q.Prompt, BlankMarker); n != 1 {
			errs = append(errs, fmt.Errorf("question %d: prompt must contain exactly one %q, found %d", i+1, BlankMarker, n))
		}
		if !q.Article.Valid() {
			errs = append(errs, fmt.Errorf("question %d: unknown article %q", i+1, q.Article))
		}
		if strings.TrimSpace(q.Explanation) == "" {
			errs = append(errs, fmt.Errorf("question %d: explanation is empty", i+1))
		}
		key := strings.ToLower(strings.TrimSpace(q.Prompt))
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("question %d: duplicate of question %d", i+1, prev))
		} else {
			seen[key] = i + 1
		}
	}
	return errors.Join(errs...)
}
