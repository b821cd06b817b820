package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

var (
	ErrEmptyName = errors.New("collection name must not be empty")
	ErrEmptyText = errors.New("card text must not be empty")
)

// Service creates collections and cards. New cards start in the New queue
// with the scheduler's initial factor and step count.
type Service struct {
	cards       CardRepository
	collections CollectionRepository
	config      srs.Config
	clock       srs.Clock
}

// NewService creates a new Service.
func NewService(cards CardRepository, collections CollectionRepository, config srs.Config, clock srs.Clock) *Service {
	return &Service{
		cards:       cards,
		collections: collections,
		config:      config,
		clock:       clock,
	}
}

func (s *Service) CreateCollection(ctx context.Context, name string) (*srs.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := s.clock.Now()
	collection := &srs.Collection{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.collections.Create(ctx, collection); err != nil {
		return nil, fmt.Errorf("collections.Create(%s) > %w", name, err)
	}
	slog.Default().Debug("created a collection", "id", collection.ID, "name", name)
	return collection, nil
}

func (s *Service) Collections(ctx context.Context) ([]srs.Collection, error) {
	collections, err := s.collections.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("collections.FindAll() > %w", err)
	}
	return collections, nil
}

// Collection returns the collection or srs.ErrCollectionNotFound.
func (s *Service) Collection(ctx context.Context, collectionID int64) (*srs.Collection, error) {
	collection, err := s.collections.FindByID(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collections.FindByID(%d) > %w", collectionID, err)
	}
	if collection == nil {
		return nil, fmt.Errorf("%w: %d", srs.ErrCollectionNotFound, collectionID)
	}
	return collection, nil
}

// RenameCollection changes the name of an existing collection.
func (s *Service) RenameCollection(ctx context.Context, collectionID int64, name string) (*srs.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	collection, err := s.Collection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	collection.Name = name
	collection.UpdatedAt = s.clock.Now()
	if err := s.collections.Update(ctx, collection); err != nil {
		return nil, fmt.Errorf("collections.Update(%d) > %w", collectionID, err)
	}
	return collection, nil
}

// DeleteCollection removes a collection with its cards and their review logs.
func (s *Service) DeleteCollection(ctx context.Context, collectionID int64) error {
	if _, err := s.Collection(ctx, collectionID); err != nil {
		return err
	}
	if err := s.collections.Delete(ctx, collectionID); err != nil {
		return fmt.Errorf("collections.Delete(%d) > %w", collectionID, err)
	}
	slog.Default().Info("deleted a collection", "id", collectionID)
	return nil
}

// Card returns the card or srs.ErrCardNotFound.
func (s *Service) Card(ctx context.Context, cardID int64) (*srs.Card, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("cards.FindByID(%d) > %w", cardID, err)
	}
	if card == nil {
		return nil, fmt.Errorf("%w: %d", srs.ErrCardNotFound, cardID)
	}
	return card, nil
}

// Cards returns every card of an existing collection.
func (s *Service) Cards(ctx context.Context, collectionID int64) ([]srs.Card, error) {
	if _, err := s.Collection(ctx, collectionID); err != nil {
		return nil, err
	}
	cards, err := s.cards.FindAllByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("cards.FindAllByCollection(%d) > %w", collectionID, err)
	}
	return cards, nil
}

// AddCard appends a new card to an existing collection.
func (s *Service) AddCard(ctx context.Context, collectionID int64, text string) (*srs.Card, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if _, err := s.Collection(ctx, collectionID); err != nil {
		return nil, err
	}
	return s.createCard(ctx, collectionID, text)
}

func (s *Service) createCard(ctx context.Context, collectionID int64, text string) (*srs.Card, error) {
	card := srs.NewCard(collectionID, text, s.clock.Now(), s.config)
	if err := s.cards.Create(ctx, &card); err != nil {
		return nil, fmt.Errorf("cards.Create() > %w", err)
	}
	return &card, nil
}

// UpdateCardText replaces the text of a card and keeps its scheduling state.
func (s *Service) UpdateCardText(ctx context.Context, cardID int64, text string) (*srs.Card, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	card, err := s.Card(ctx, cardID)
	if err != nil {
		return nil, err
	}

	card.Text = text
	card.UpdatedAt = s.clock.Now()
	if err := s.cards.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("cards.Save(%d) > %w", cardID, err)
	}
	return card, nil
}
