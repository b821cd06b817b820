package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

// DBReviewLogRepository implements srs.ReviewLogger.
type DBReviewLogRepository struct {
	db *sqlx.DB
}

// NewDBReviewLogRepository creates a new DBReviewLogRepository.
func NewDBReviewLogRepository(db *sqlx.DB) *DBReviewLogRepository {
	return &DBReviewLogRepository{db: db}
}

// Create inserts a review log. The ID is assigned by the caller.
func (r *DBReviewLogRepository) Create(ctx context.Context, log *srs.ReviewLog) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO review_logs (id, card_id, grade, previous_queue, queue, ivl, factor, due, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID, log.CardID, int(log.Grade), int(log.PreviousQueue), int(log.Queue),
		log.Interval, log.Factor, log.Due, log.ReviewedAt.UTC()); err != nil {
		return fmt.Errorf("db.ExecContext(insert review_log) > %w", err)
	}
	return nil
}

// FindByCard returns the review history of a card, oldest first.
func (r *DBReviewLogRepository) FindByCard(ctx context.Context, cardID int64) ([]srs.ReviewLog, error) {
	var logs []srs.ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs WHERE card_id = ? ORDER BY reviewed_at, id", cardID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs by card) > %w", err)
	}
	return logs, nil
}

// FindByCollection returns the review logs of every card in a collection, oldest first.
func (r *DBReviewLogRepository) FindByCollection(ctx context.Context, collectionID int64) ([]srs.ReviewLog, error) {
	var logs []srs.ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		`SELECT l.id, l.card_id, l.grade, l.previous_queue, l.queue, l.ivl, l.factor, l.due, l.reviewed_at
		FROM review_logs l
		JOIN cards c ON c.id = l.card_id
		WHERE c.collection_id = ?
		ORDER BY l.reviewed_at, l.id`, collectionID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs by collection) > %w", err)
	}
	return logs, nil
}
