package quiz

import "github.com/abhisek/articlequest/internal/session"

// quizStartedMsg is sent once the controller has sampled its rounds.
type quizStartedMsg struct {
	Ctrl *session.Controller
	Err  error
}

// eventsLoggedMsg reports the outcome of writing to the results log.
// Failures are dropped so a broken log never blocks play.
type eventsLoggedMsg struct {
	Err error
}
