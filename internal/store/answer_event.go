package store

import (
	"context"
	"fmt"

	"github.com/abhisek/articlequest/internal/articles"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, timestamp, session_id, round, prompt, correct_article, selected_article, correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, r.timestamp(), data.SessionID, data.Round, data.Prompt,
		string(data.CorrectArticle), string(data.SelectedArticle), data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) ArticleAccuracy(ctx context.Context) (map[articles.Article]AccuracyStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT correct_article, COUNT(*), COALESCE(SUM(correct), 0)
		FROM answer_events GROUP BY correct_article`)
	if err != nil {
		return nil, fmt.Errorf("query article accuracy: %w", err)
	}
	defer rows.Close()

	out := make(map[articles.Article]AccuracyStat)
	for rows.Next() {
		var (
			article string
			stat    AccuracyStat
		)
		if err := rows.Scan(&article, &stat.Attempted, &stat.Correct); err != nil {
			return nil, fmt.Errorf("scan article accuracy: %w", err)
		}
		out[articles.Article(article)] = stat
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate article accuracy: %w", err)
	}
	return out, nil
}
