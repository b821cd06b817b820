// Package storage persists collections, cards and review logs with sqlx.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

// DBCardRepository implements srs.CardStore on MySQL or SQLite.
type DBCardRepository struct {
	db *sqlx.DB
}

// NewDBCardRepository creates a new DBCardRepository.
func NewDBCardRepository(db *sqlx.DB) *DBCardRepository {
	return &DBCardRepository{db: db}
}

// FindByID returns the card with the given ID, or nil if not found.
func (r *DBCardRepository) FindByID(ctx context.Context, id int64) (*srs.Card, error) {
	var card srs.Card
	err := r.db.GetContext(ctx, &card, "SELECT * FROM cards WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card) > %w", err)
	}
	return &card, nil
}

// FindAllByCollection returns the cards of a collection in insertion order.
func (r *DBCardRepository) FindAllByCollection(ctx context.Context, collectionID int64) ([]srs.Card, error) {
	var cards []srs.Card
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT * FROM cards WHERE collection_id = ? ORDER BY id", collectionID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(cards by collection) > %w", err)
	}
	return cards, nil
}

// Create inserts a new card and sets its ID.
func (r *DBCardRepository) Create(ctx context.Context, card *srs.Card) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (collection_id, text, type, queue, due, ivl, factor, reps, lapses, steps_left, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		card.CollectionID, card.Text, int(card.Type), int(card.Queue), card.Due, card.Interval, card.Factor,
		card.Reps, card.Lapses, card.StepsLeft, card.CreatedAt.UTC(), card.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert card) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	card.ID = id
	return nil
}

// Save writes the text and scheduling state of an existing card.
func (r *DBCardRepository) Save(ctx context.Context, card *srs.Card) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE cards SET text = ?, type = ?, queue = ?, due = ?, ivl = ?, factor = ?, reps = ?, lapses = ?, steps_left = ?, updated_at = ?
		WHERE id = ?`,
		card.Text, int(card.Type), int(card.Queue), card.Due, card.Interval, card.Factor,
		card.Reps, card.Lapses, card.StepsLeft, card.UpdatedAt.UTC(), card.ID); err != nil {
		return fmt.Errorf("db.ExecContext(update card %d) > %w", card.ID, err)
	}
	return nil
}
