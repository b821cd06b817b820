package deck_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/flashcards/internal/deck"
	mock_deck "github.com/at-ishikawa/flashcards/internal/mocks/deck"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

var (
	now     = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	errBoom = errors.New("boom")
)

func newService(ctrl *gomock.Controller) (*deck.Service, *mock_deck.MockCardRepository, *mock_deck.MockCollectionRepository) {
	cards := mock_deck.NewMockCardRepository(ctrl)
	collections := mock_deck.NewMockCollectionRepository(ctrl)
	return deck.NewService(cards, collections, srs.DefaultConfig(), srs.FixedClock(now)), cards, collections
}

func TestService_CreateCollection(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		setupMock func(collections *mock_deck.MockCollectionRepository)
		want      *srs.Collection
		wantErrIs error
	}{
		{
			name:  "creates collection with trimmed name",
			input: "  verbs ",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *srs.Collection) error {
						c.ID = 3
						return nil
					})
			},
			want: &srs.Collection{ID: 3, Name: "verbs", CreatedAt: now, UpdatedAt: now},
		},
		{
			name:      "empty name",
			input:     "   ",
			setupMock: func(*mock_deck.MockCollectionRepository) {},
			wantErrIs: deck.ErrEmptyName,
		},
		{
			name:  "repository error",
			input: "verbs",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errBoom)
			},
			wantErrIs: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, _, collections := newService(ctrl)
			tt.setupMock(collections)

			got, err := service.CreateCollection(context.Background(), tt.input)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_AddCard(t *testing.T) {
	collection := &srs.Collection{ID: 3, Name: "verbs", CreatedAt: now}

	tests := []struct {
		name      string
		text      string
		setupMock func(cards *mock_deck.MockCardRepository, collections *mock_deck.MockCollectionRepository)
		wantErrIs error
	}{
		{
			name: "creates a new card",
			text: "hablar",
			setupMock: func(cards *mock_deck.MockCardRepository, collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(collection, nil)
				cards.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *srs.Card) error {
						c.ID = 9
						return nil
					})
			},
		},
		{
			name: "unknown collection",
			text: "hablar",
			setupMock: func(_ *mock_deck.MockCardRepository, collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErrIs: srs.ErrCollectionNotFound,
		},
		{
			name:      "empty text",
			text:      " ",
			setupMock: func(*mock_deck.MockCardRepository, *mock_deck.MockCollectionRepository) {},
			wantErrIs: deck.ErrEmptyText,
		},
		{
			name: "create error",
			text: "hablar",
			setupMock: func(cards *mock_deck.MockCardRepository, collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(collection, nil)
				cards.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errBoom)
			},
			wantErrIs: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, cards, collections := newService(ctrl)
			tt.setupMock(cards, collections)

			got, err := service.AddCard(context.Background(), 3, tt.text)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			want := srs.NewCard(3, "hablar", now, srs.DefaultConfig())
			want.ID = 9
			assert.Equal(t, &want, got)
		})
	}
}

func TestService_UpdateCardText(t *testing.T) {
	later := now.Add(48 * time.Hour)

	t.Run("keeps the scheduling state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cards := mock_deck.NewMockCardRepository(ctrl)
		service := deck.NewService(cards, mock_deck.NewMockCollectionRepository(ctrl), srs.DefaultConfig(), srs.FixedClock(later))

		stored := &srs.Card{
			ID:        9,
			Text:      "old",
			Type:      srs.CardTypeReview,
			Queue:     srs.QueueReview,
			Due:       12,
			Interval:  6,
			Factor:    2350,
			Reps:      4,
			CreatedAt: now,
			UpdatedAt: now,
		}
		cards.EXPECT().FindByID(gomock.Any(), int64(9)).Return(stored, nil)
		cards.EXPECT().Save(gomock.Any(), stored).Return(nil)

		got, err := service.UpdateCardText(context.Background(), 9, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", got.Text)
		assert.Equal(t, later, got.UpdatedAt)
		assert.Equal(t, srs.QueueReview, got.Queue)
		assert.Equal(t, int64(12), got.Due)
		assert.Equal(t, 6, got.Interval)
		assert.Equal(t, 2350, got.Factor)
	})

	t.Run("unknown card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, cards, _ := newService(ctrl)
		cards.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := service.UpdateCardText(context.Background(), 9, "new")
		assert.ErrorIs(t, err, srs.ErrCardNotFound)
	})

	t.Run("empty text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _, _ := newService(ctrl)

		_, err := service.UpdateCardText(context.Background(), 9, "")
		assert.ErrorIs(t, err, deck.ErrEmptyText)
	})
}

func TestService_Cards(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, cards, collections := newService(ctrl)

	collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&srs.Collection{ID: 3}, nil)
	cards.EXPECT().FindAllByCollection(gomock.Any(), int64(3)).Return([]srs.Card{{ID: 1}, {ID: 2}}, nil)

	got, err := service.Cards(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	collections.EXPECT().FindAll(gomock.Any()).Return(nil, errBoom)
	_, err = service.Collections(context.Background())
	assert.ErrorIs(t, err, errBoom)
}

func TestService_RenameCollection(t *testing.T) {
	later := now.Add(time.Hour)

	tests := []struct {
		name      string
		input     string
		setupMock func(collections *mock_deck.MockCollectionRepository)
		want      *srs.Collection
		wantErrIs error
	}{
		{
			name:  "renames with trimmed name",
			input: " irregular verbs ",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).
					Return(&srs.Collection{ID: 3, Name: "verbs", CreatedAt: now, UpdatedAt: now}, nil)
				collections.EXPECT().Update(gomock.Any(), &srs.Collection{ID: 3, Name: "irregular verbs", CreatedAt: now, UpdatedAt: later}).
					Return(nil)
			},
			want: &srs.Collection{ID: 3, Name: "irregular verbs", CreatedAt: now, UpdatedAt: later},
		},
		{
			name:      "empty name",
			input:     " ",
			setupMock: func(*mock_deck.MockCollectionRepository) {},
			wantErrIs: deck.ErrEmptyName,
		},
		{
			name:  "unknown collection",
			input: "verbs",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErrIs: srs.ErrCollectionNotFound,
		},
		{
			name:  "update error",
			input: "verbs",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&srs.Collection{ID: 3}, nil)
				collections.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errBoom)
			},
			wantErrIs: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cards := mock_deck.NewMockCardRepository(ctrl)
			collections := mock_deck.NewMockCollectionRepository(ctrl)
			service := deck.NewService(cards, collections, srs.DefaultConfig(), srs.FixedClock(later))
			tt.setupMock(collections)

			got, err := service.RenameCollection(context.Background(), 3, tt.input)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_DeleteCollection(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(collections *mock_deck.MockCollectionRepository)
		wantErrIs error
	}{
		{
			name: "deletes an existing collection",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&srs.Collection{ID: 3}, nil)
				collections.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
			},
		},
		{
			name: "unknown collection",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErrIs: srs.ErrCollectionNotFound,
		},
		{
			name: "delete error",
			setupMock: func(collections *mock_deck.MockCollectionRepository) {
				collections.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&srs.Collection{ID: 3}, nil)
				collections.EXPECT().Delete(gomock.Any(), int64(3)).Return(errBoom)
			},
			wantErrIs: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, _, collections := newService(ctrl)
			tt.setupMock(collections)

			err := service.DeleteCollection(context.Background(), 3)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_Card(t *testing.T) {
	t.Run("returns the card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, cards, _ := newService(ctrl)
		cards.EXPECT().FindByID(gomock.Any(), int64(9)).Return(&srs.Card{ID: 9, Text: "hablar"}, nil)

		got, err := service.Card(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, "hablar", got.Text)
	})

	t.Run("unknown card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, cards, _ := newService(ctrl)
		cards.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := service.Card(context.Background(), 9)
		assert.ErrorIs(t, err, srs.ErrCardNotFound)
	})
}
