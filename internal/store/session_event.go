package store

import (
	"context"
	"fmt"
	"strings"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, timestamp, session_id, action, rounds_planned, rounds_answered, score, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, r.timestamp(), data.SessionID, data.Action,
		data.RoundsPlanned, data.RoundsAnswered, data.Score, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	var (
		where = []string{"action = ?"}
		args  = []any{ActionEnd}
	)
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, formatTimestamp(opts.From))
	}

	query := `SELECT sequence, timestamp, session_id, rounds_planned, score, duration_secs
		FROM session_events WHERE ` + strings.Join(where, " AND ") + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var out []SessionSummaryRecord
	for rows.Next() {
		var (
			rec SessionSummaryRecord
			ts  string
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.RoundsPlanned, &rec.Score, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		if rec.Timestamp, err = parseTimestamp(ts); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session summaries: %w", err)
	}
	return out, nil
}
