package store

import (
	"context"
	"time"

	"github.com/abhisek/articlequest/internal/articles"
)

// Session event actions.
const (
	ActionStart   = "start"
	ActionEnd     = "end"
	ActionRestart = "restart"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
}

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string // start, end or restart
	RoundsPlanned  int
	RoundsAnswered int // end and restart only
	Score          int // end and restart only
	DurationSecs   int // end and restart only
}

// AnswerEventData captures one answered round.
type AnswerEventData struct {
	SessionID       string
	Round           int // zero-based
	Prompt          string
	CorrectArticle  articles.Article
	SelectedArticle articles.Article
	Correct         bool
}

// SessionSummaryRecord is a finished session as read back from the log.
type SessionSummaryRecord struct {
	Sequence      int64
	Timestamp     time.Time
	SessionID     string
	RoundsPlanned int
	Score         int
	DurationSecs  int
}

// Accuracy returns Score / RoundsPlanned, or 0 for an empty session.
func (r SessionSummaryRecord) Accuracy() float64 {
	if r.RoundsPlanned == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.RoundsPlanned)
}

// AccuracyStat aggregates answers for one correct article.
type AccuracyStat struct {
	Attempted int
	Correct   int
}

// Accuracy returns Correct / Attempted, or 0 when nothing was attempted.
func (s AccuracyStat) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// EventRepo provides append and query access to the results log.
type EventRepo interface {
	// AppendSessionEvent records a session start, end or restart.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered round.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// ArticleAccuracy aggregates all answers by their correct article.
	ArticleAccuracy(ctx context.Context) (map[articles.Article]AccuracyStat, error)
}
