package srs

import "context"

//go:generate mockgen -source=store.go -destination=../mocks/srs/mock_store.go -package=mock_srs

// CardStore loads and saves cards. FindByID returns nil without an error
// when the card does not exist. FindAllByCollection makes no promise about order.
type CardStore interface {
	FindByID(ctx context.Context, id int64) (*Card, error)
	FindAllByCollection(ctx context.Context, collectionID int64) ([]Card, error)
	Save(ctx context.Context, card *Card) error
}

// CollectionLookup resolves collections. FindByID returns nil without an
// error when the collection does not exist.
type CollectionLookup interface {
	FindByID(ctx context.Context, id int64) (*Collection, error)
}

// ReviewLogger appends review logs.
type ReviewLogger interface {
	Create(ctx context.Context, log *ReviewLog) error
}
