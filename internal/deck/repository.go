// Package deck manages collections and their cards outside of scheduling.
package deck

import (
	"context"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

//go:generate mockgen -source=repository.go -destination=../mocks/deck/mock_repository.go -package=mock_deck

// CardRepository defines operations for managing cards.
type CardRepository interface {
	FindByID(ctx context.Context, id int64) (*srs.Card, error)
	FindAllByCollection(ctx context.Context, collectionID int64) ([]srs.Card, error)
	Create(ctx context.Context, card *srs.Card) error
	Save(ctx context.Context, card *srs.Card) error
}

// CollectionRepository defines operations for managing collections.
type CollectionRepository interface {
	FindByID(ctx context.Context, id int64) (*srs.Collection, error)
	FindAll(ctx context.Context) ([]srs.Collection, error)
	Create(ctx context.Context, collection *srs.Collection) error
	Update(ctx context.Context, collection *srs.Collection) error
	Delete(ctx context.Context, id int64) error
}
