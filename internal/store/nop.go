package store

import (
	"context"

	"github.com/abhisek/articlequest/internal/articles"
)

// NopEventRepo discards all events. Used when history is disabled.
type NopEventRepo struct{}

var _ EventRepo = NopEventRepo{}

func (NopEventRepo) AppendSessionEvent(context.Context, SessionEventData) error { return nil }
func (NopEventRepo) AppendAnswerEvent(context.Context, AnswerEventData) error   { return nil }

func (NopEventRepo) QuerySessionSummaries(context.Context, QueryOpts) ([]SessionSummaryRecord, error) {
	return nil, nil
}

func (NopEventRepo) ArticleAccuracy(context.Context) (map[articles.Article]AccuracyStat, error) {
	return map[articles.Article]AccuracyStat{}, nil
}
