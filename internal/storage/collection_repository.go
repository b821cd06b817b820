package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

// DBCollectionRepository implements srs.CollectionLookup and stores collections.
type DBCollectionRepository struct {
	db *sqlx.DB
}

// NewDBCollectionRepository creates a new DBCollectionRepository.
func NewDBCollectionRepository(db *sqlx.DB) *DBCollectionRepository {
	return &DBCollectionRepository{db: db}
}

// FindByID returns the collection with the given ID, or nil if not found.
func (r *DBCollectionRepository) FindByID(ctx context.Context, id int64) (*srs.Collection, error) {
	var collection srs.Collection
	err := r.db.GetContext(ctx, &collection, "SELECT * FROM collections WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(collection) > %w", err)
	}
	return &collection, nil
}

// FindAll returns all collections.
func (r *DBCollectionRepository) FindAll(ctx context.Context) ([]srs.Collection, error) {
	var collections []srs.Collection
	if err := r.db.SelectContext(ctx, &collections, "SELECT * FROM collections ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(collections) > %w", err)
	}
	return collections, nil
}

// Create inserts a new collection and sets its ID.
func (r *DBCollectionRepository) Create(ctx context.Context, collection *srs.Collection) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO collections (name, created_at, updated_at) VALUES (?, ?, ?)",
		collection.Name, collection.CreatedAt.UTC(), collection.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert collection) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	collection.ID = id
	return nil
}

// Update writes the name of an existing collection.
func (r *DBCollectionRepository) Update(ctx context.Context, collection *srs.Collection) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE collections SET name = ?, updated_at = ? WHERE id = ?",
		collection.Name, collection.UpdatedAt.UTC(), collection.ID); err != nil {
		return fmt.Errorf("db.ExecContext(update collection %d) > %w", collection.ID, err)
	}
	return nil
}

// Delete removes a collection. Its cards and their review logs go with it
// through the ON DELETE CASCADE foreign keys.
func (r *DBCollectionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete collection %d) > %w", id, err)
	}
	return nil
}
