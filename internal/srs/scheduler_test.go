package srs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_srs "github.com/at-ishikawa/flashcards/internal/mocks/srs"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

var (
	createdAt = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	// ten calendar days after createdAt
	now = time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC)
)

func newEngine() *srs.Scheduler {
	return srs.NewScheduler(srs.DefaultConfig(), nil, nil, srs.FixedClock(now))
}

func learningCard(queue srs.Queue, stepsLeft int) srs.Card {
	return srs.Card{
		ID:        1,
		Type:      srs.CardTypeLearning,
		Queue:     queue,
		Due:       now.Unix() - 30,
		Factor:    2500,
		StepsLeft: stepsLeft,
		CreatedAt: createdAt,
	}
}

func reviewCard(interval, factor int, due int64) srs.Card {
	return srs.Card{
		ID:        1,
		Type:      srs.CardTypeReview,
		Queue:     srs.QueueReview,
		Due:       due,
		Interval:  interval,
		Factor:    factor,
		Reps:      3,
		CreatedAt: createdAt,
	}
}

func TestScheduler_InitializeLearning(t *testing.T) {
	engine := newEngine()

	card := srs.NewCard(1, "front", createdAt, srs.DefaultConfig())
	require.NoError(t, engine.InitializeLearning(&card, now))

	assert.Equal(t, srs.QueueLearning, card.Queue)
	assert.Equal(t, srs.CardTypeLearning, card.Type)
	assert.Equal(t, 2, card.StepsLeft)
	assert.Equal(t, now.Unix()+60, card.Due)

	err := engine.InitializeLearning(&card, now)
	assert.ErrorIs(t, err, srs.ErrInvalidQueue)
}

func TestScheduler_ProcessReview_Learning(t *testing.T) {
	tests := []struct {
		name  string
		card  srs.Card
		grade srs.Grade
		want  srs.Card
	}{
		{
			name:  "good on the first step moves to the second step",
			card:  learningCard(srs.QueueLearning, 2),
			grade: srs.GradeGood,
			want: func() srs.Card {
				c := learningCard(srs.QueueLearning, 1)
				c.Due = now.Unix() + 10*60
				return c
			}(),
		},
		{
			name:  "good on the last step graduates with a one day interval",
			card:  learningCard(srs.QueueLearning, 1),
			grade: srs.GradeGood,
			want: func() srs.Card {
				c := learningCard(srs.QueueReview, 0)
				c.Type = srs.CardTypeReview
				c.Interval = 1
				c.Reps = 1
				c.Due = 11
				return c
			}(),
		},
		{
			name:  "hard on the first step stretches the current step",
			card:  learningCard(srs.QueueLearning, 2),
			grade: srs.GradeHard,
			want: func() srs.Card {
				c := learningCard(srs.QueueLearning, 2)
				c.Due = now.Unix() + 60
				return c
			}(),
		},
		{
			name:  "hard on the last step stretches the current step",
			card:  learningCard(srs.QueueRelearning, 1),
			grade: srs.GradeHard,
			want: func() srs.Card {
				c := learningCard(srs.QueueRelearning, 1)
				c.Due = now.Unix() + 12*60
				return c
			}(),
		},
		{
			name:  "again restarts the steps in learning",
			card:  learningCard(srs.QueueLearning, 1),
			grade: srs.GradeAgain,
			want: func() srs.Card {
				c := learningCard(srs.QueueLearning, 2)
				c.Lapses = 1
				c.Due = now.Unix() + 60
				return c
			}(),
		},
		{
			name:  "again restarts the steps in relearning",
			card:  learningCard(srs.QueueRelearning, 1),
			grade: srs.GradeAgain,
			want: func() srs.Card {
				c := learningCard(srs.QueueRelearning, 2)
				c.Lapses = 1
				c.Due = now.Unix() + 60
				return c
			}(),
		},
		{
			name:  "easy graduates from the first step",
			card:  learningCard(srs.QueueLearning, 2),
			grade: srs.GradeEasy,
			want: func() srs.Card {
				c := learningCard(srs.QueueReview, 0)
				c.Type = srs.CardTypeReview
				c.Interval = 4
				c.Reps = 1
				c.Due = 14
				return c
			}(),
		},
		{
			name:  "easy graduates a relearning card",
			card:  learningCard(srs.QueueRelearning, 2),
			grade: srs.GradeEasy,
			want: func() srs.Card {
				c := learningCard(srs.QueueReview, 0)
				c.Type = srs.CardTypeReview
				c.Interval = 4
				c.Reps = 1
				c.Due = 14
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := tt.card
			require.NoError(t, newEngine().ProcessReview(&card, tt.grade, now))
			assert.Equal(t, tt.want, card)
		})
	}
}

func TestScheduler_ProcessReview_NewCardScenario(t *testing.T) {
	engine := newEngine()
	card := srs.NewCard(1, "front", createdAt, srs.DefaultConfig())

	require.NoError(t, engine.InitializeLearning(&card, now))
	assert.Equal(t, srs.QueueLearning, card.Queue)
	assert.Equal(t, 2, card.StepsLeft)

	require.NoError(t, engine.ProcessReview(&card, srs.GradeGood, now))
	assert.Equal(t, srs.QueueLearning, card.Queue)
	assert.Equal(t, 1, card.StepsLeft)

	require.NoError(t, engine.ProcessReview(&card, srs.GradeGood, now))
	assert.Equal(t, srs.QueueReview, card.Queue)
	assert.Equal(t, srs.CardTypeReview, card.Type)
	assert.Equal(t, 1, card.Interval)
	assert.Equal(t, 1, card.Reps)
	assert.Equal(t, 0, card.StepsLeft)
	assert.Equal(t, 2500, card.Factor)
}

func TestScheduler_ProcessReview_Review(t *testing.T) {
	tests := []struct {
		name  string
		card  srs.Card
		grade srs.Grade
		want  srs.Card
	}{
		{
			name:  "again lapses into relearning and keeps interval and factor",
			card:  reviewCard(10, 2000, 10),
			grade: srs.GradeAgain,
			want: func() srs.Card {
				c := reviewCard(10, 2000, now.Unix()+60)
				c.Type = srs.CardTypeLearning
				c.Queue = srs.QueueRelearning
				c.StepsLeft = 2
				c.Lapses = 1
				return c
			}(),
		},
		{
			name:  "good keeps the factor",
			card:  reviewCard(10, 2000, 10),
			grade: srs.GradeGood,
			want: func() srs.Card {
				c := reviewCard(20, 2000, 30)
				c.Reps = 4
				return c
			}(),
		},
		{
			name:  "hard lowers the factor",
			card:  reviewCard(10, 2500, 10),
			grade: srs.GradeHard,
			want: func() srs.Card {
				c := reviewCard(12, 2350, 22)
				c.Reps = 4
				return c
			}(),
		},
		{
			name:  "easy raises the factor and clamps the interval",
			card:  reviewCard(300, 2500, 5),
			grade: srs.GradeEasy,
			want: func() srs.Card {
				c := reviewCard(365, 3250, 375)
				c.Reps = 4
				return c
			}(),
		},
		{
			name:  "an early good review is clamped to the minimum interval",
			card:  reviewCard(1, 1300, 20),
			grade: srs.GradeGood,
			want: func() srs.Card {
				c := reviewCard(1, 1300, 11)
				c.Reps = 4
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := tt.card
			require.NoError(t, newEngine().ProcessReview(&card, tt.grade, now))
			assert.Equal(t, tt.want, card)
		})
	}
}

func TestScheduler_ProcessReview_FactorFloor(t *testing.T) {
	for _, start := range []int{2500, 1350, 1300, 1100} {
		card := reviewCard(10, start, 10)
		for i := 0; i < 20; i++ {
			require.NoError(t, newEngine().ProcessReview(&card, srs.GradeHard, now))
			assert.GreaterOrEqual(t, card.Factor, 1300, "start factor %d after %d hard answers", start, i+1)
		}
		assert.Equal(t, 1300, card.Factor)
	}
}

func TestScheduler_ProcessReview_IntervalIsClamped(t *testing.T) {
	intervals := []int{0, 1, 2, 10, 100, 300, 365, 1000}
	factors := []int{1300, 2500, 4000}
	dues := []int64{-30, 0, 10, 40}

	for _, grade := range []srs.Grade{srs.GradeHard, srs.GradeGood, srs.GradeEasy} {
		for _, interval := range intervals {
			for _, factor := range factors {
				for _, due := range dues {
					card := reviewCard(interval, factor, due)
					require.NoError(t, newEngine().ProcessReview(&card, grade, now))
					assert.GreaterOrEqual(t, card.Interval, 1)
					assert.LessOrEqual(t, card.Interval, 365)
				}
			}
		}
	}
}

func TestScheduler_ProcessReview_Errors(t *testing.T) {
	engine := newEngine()

	newCard := srs.NewCard(1, "front", createdAt, srs.DefaultConfig())
	err := engine.ProcessReview(&newCard, srs.GradeGood, now)
	assert.ErrorIs(t, err, srs.ErrInvalidQueue)
	assert.Equal(t, srs.QueueNew, newCard.Queue)

	card := reviewCard(10, 2500, 10)
	err = engine.ProcessReview(&card, srs.Grade(7), now)
	assert.ErrorIs(t, err, srs.ErrInvalidGrade)
	assert.Equal(t, reviewCard(10, 2500, 10), card)
}

func TestScheduler_GetDueCards(t *testing.T) {
	collection := &srs.Collection{ID: 5, Name: "deck", CreatedAt: createdAt}
	cards := []srs.Card{
		{ID: 1, Queue: srs.QueueNew},
		{ID: 2, Queue: srs.QueueLearning, Due: now.Unix() - 1},
		{ID: 3, Queue: srs.QueueLearning, Due: now.Unix() + 1},
		{ID: 4, Queue: srs.QueueReview, Due: 10},
		{ID: 5, Queue: srs.QueueReview, Due: 11},
		{ID: 6, Queue: srs.QueueRelearning, Due: now.Unix()},
		{ID: 7, Queue: srs.Queue(9)},
	}

	tests := []struct {
		name      string
		setupMock func(cards *mock_srs.MockCardStore, collections *mock_srs.MockCollectionLookup)
		wantIDs   []int64
		wantErr   error
	}{
		{
			name: "filters by queue specific due values",
			setupMock: func(cardStore *mock_srs.MockCardStore, collections *mock_srs.MockCollectionLookup) {
				collections.EXPECT().FindByID(gomock.Any(), int64(5)).Return(collection, nil)
				cardStore.EXPECT().FindAllByCollection(gomock.Any(), int64(5)).Return(cards, nil)
			},
			wantIDs: []int64{1, 2, 4, 6},
		},
		{
			name: "unknown collection",
			setupMock: func(_ *mock_srs.MockCardStore, collections *mock_srs.MockCollectionLookup) {
				collections.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, nil)
			},
			wantErr: srs.ErrCollectionNotFound,
		},
		{
			name: "store failure",
			setupMock: func(cardStore *mock_srs.MockCardStore, collections *mock_srs.MockCollectionLookup) {
				collections.EXPECT().FindByID(gomock.Any(), int64(5)).Return(collection, nil)
				cardStore.EXPECT().FindAllByCollection(gomock.Any(), int64(5)).Return(nil, errBoom)
			},
			wantErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cardStore := mock_srs.NewMockCardStore(ctrl)
			collections := mock_srs.NewMockCollectionLookup(ctrl)
			tt.setupMock(cardStore, collections)

			engine := srs.NewScheduler(srs.DefaultConfig(), cardStore, collections, srs.FixedClock(now))
			got, err := engine.GetDueCards(context.Background(), 5, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, cardIDs(got))
		})
	}
}

func TestScheduler_GetDueCards_ReviewMembership(t *testing.T) {
	collection := &srs.Collection{ID: 5, CreatedAt: createdAt}

	for due := int64(7); due <= 13; due++ {
		ctrl := gomock.NewController(t)
		cardStore := mock_srs.NewMockCardStore(ctrl)
		collections := mock_srs.NewMockCollectionLookup(ctrl)
		collections.EXPECT().FindByID(gomock.Any(), int64(5)).Return(collection, nil)
		cardStore.EXPECT().FindAllByCollection(gomock.Any(), int64(5)).
			Return([]srs.Card{{ID: 1, Queue: srs.QueueReview, Due: due}}, nil)

		engine := srs.NewScheduler(srs.DefaultConfig(), cardStore, collections, srs.FixedClock(now))
		got, err := engine.GetDueCards(context.Background(), 5, now)
		require.NoError(t, err)
		assert.Equal(t, due <= 10, len(got) == 1, "due day %d", due)
	}
}

func TestScheduler_StartLearning(t *testing.T) {
	ctrl := gomock.NewController(t)
	cardStore := mock_srs.NewMockCardStore(ctrl)
	collections := mock_srs.NewMockCollectionLookup(ctrl)

	day := func(d int) time.Time { return createdAt.AddDate(0, 0, d) }
	collections.EXPECT().FindByID(gomock.Any(), int64(5)).
		Return(&srs.Collection{ID: 5, CreatedAt: createdAt}, nil)
	cardStore.EXPECT().FindAllByCollection(gomock.Any(), int64(5)).Return([]srs.Card{
		{ID: 1, Type: srs.CardTypeReview, Queue: srs.QueueReview, Due: 9, Interval: 5, Factor: 2500, CreatedAt: day(0)},
		srs.NewCard(5, "second", day(4), srs.DefaultConfig()),
		srs.NewCard(5, "first", day(2), srs.DefaultConfig()),
		{ID: 4, Type: srs.CardTypeLearning, Queue: srs.QueueLearning, Due: now.Unix() - 10, StepsLeft: 1, Factor: 2500, CreatedAt: day(3)},
		srs.NewCard(5, "tie", day(4), srs.DefaultConfig()),
		{ID: 6, Type: srs.CardTypeReview, Queue: srs.QueueReview, Due: 30, Interval: 20, Factor: 2500, CreatedAt: day(0)},
	}, nil)

	var saved []string
	cardStore.EXPECT().Save(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, card *srs.Card) error {
			assert.Equal(t, srs.QueueLearning, card.Queue)
			assert.Equal(t, now.Unix()+60, card.Due)
			assert.Equal(t, now, card.UpdatedAt)
			saved = append(saved, card.Text)
			return nil
		})

	engine := srs.NewScheduler(srs.DefaultConfig(), cardStore, collections, srs.FixedClock(now))
	got, err := engine.StartLearning(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"second", "first", "tie"}, saved)

	var texts []string
	var queues []srs.Queue
	for _, dc := range got {
		texts = append(texts, dc.Card.Text)
		queues = append(queues, dc.Card.Queue)
	}
	assert.Equal(t, []string{"first", "", "second", "tie", ""}, texts)
	assert.Equal(t, []srs.Queue{srs.QueueLearning, srs.QueueLearning, srs.QueueLearning, srs.QueueLearning, srs.QueueReview}, queues)
	assert.Equal(t, int64(4), got[1].Card.ID)
	assert.Equal(t, int64(1), got[4].Card.ID)

	assert.Equal(t, "<10 min", got[0].Intervals[srs.GradeGood].String())
	assert.Equal(t, "1 day", got[1].Intervals[srs.GradeGood].String())
	assert.Equal(t, srs.NextInterval{Value: 10, Unit: srs.UnitMinute}, got[4].Intervals[srs.GradeAgain])
}

func TestScheduler_StartLearning_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cardStore := mock_srs.NewMockCardStore(ctrl)
	collections := mock_srs.NewMockCollectionLookup(ctrl)

	collections.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&srs.Collection{ID: 5, CreatedAt: createdAt}, nil)
	cardStore.EXPECT().FindAllByCollection(gomock.Any(), int64(5)).
		Return([]srs.Card{srs.NewCard(5, "front", createdAt, srs.DefaultConfig())}, nil)
	cardStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errBoom)

	engine := srs.NewScheduler(srs.DefaultConfig(), cardStore, collections, srs.FixedClock(now))
	_, err := engine.StartLearning(context.Background(), 5)
	assert.ErrorIs(t, err, errBoom)
}

func TestScheduler_GradeCard(t *testing.T) {
	tests := []struct {
		name      string
		cardID    int64
		grade     srs.Grade
		setupMock func(cards *mock_srs.MockCardStore, logs *mock_srs.MockReviewLogger)
		wantCard  *srs.Card
		wantErr   error
	}{
		{
			name:   "grades, saves and logs",
			cardID: 1,
			grade:  srs.GradeGood,
			setupMock: func(cards *mock_srs.MockCardStore, logs *mock_srs.MockReviewLogger) {
				card := reviewCard(10, 2000, 10)
				cards.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&card, nil)
				cards.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				logs.EXPECT().Create(gomock.Any(), &srs.ReviewLog{
					ID:            "log-1",
					CardID:        1,
					Grade:         srs.GradeGood,
					PreviousQueue: srs.QueueReview,
					Queue:         srs.QueueReview,
					Interval:      20,
					Factor:        2000,
					Due:           30,
					ReviewedAt:    now,
				}).Return(nil)
			},
			wantCard: func() *srs.Card {
				c := reviewCard(20, 2000, 30)
				c.Reps = 4
				c.UpdatedAt = now
				return &c
			}(),
		},
		{
			name:   "unknown card",
			cardID: 2,
			grade:  srs.GradeGood,
			setupMock: func(cards *mock_srs.MockCardStore, _ *mock_srs.MockReviewLogger) {
				cards.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, nil)
			},
			wantErr: srs.ErrCardNotFound,
		},
		{
			name:      "invalid grade is rejected before loading",
			cardID:    1,
			grade:     srs.Grade(-1),
			setupMock: func(_ *mock_srs.MockCardStore, _ *mock_srs.MockReviewLogger) {},
			wantErr:   srs.ErrInvalidGrade,
		},
		{
			name:   "new cards cannot be graded",
			cardID: 3,
			grade:  srs.GradeEasy,
			setupMock: func(cards *mock_srs.MockCardStore, _ *mock_srs.MockReviewLogger) {
				card := srs.NewCard(5, "front", createdAt, srs.DefaultConfig())
				cards.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&card, nil)
			},
			wantErr: srs.ErrInvalidQueue,
		},
		{
			name:   "save failure is returned",
			cardID: 1,
			grade:  srs.GradeHard,
			setupMock: func(cards *mock_srs.MockCardStore, _ *mock_srs.MockReviewLogger) {
				card := reviewCard(10, 2000, 10)
				cards.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&card, nil)
				cards.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errBoom)
			},
			wantErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cards := mock_srs.NewMockCardStore(ctrl)
			logs := mock_srs.NewMockReviewLogger(ctrl)
			tt.setupMock(cards, logs)

			engine := srs.NewScheduler(srs.DefaultConfig(), cards, nil, srs.FixedClock(now),
				srs.WithReviewLogger(logs),
				srs.WithIDGenerator(func() string { return "log-1" }),
			)
			got, err := engine.GradeCard(context.Background(), tt.cardID, tt.grade)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCard, got)
		})
	}
}

func TestScheduler_CollectionStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := mock_srs.NewMockCardStore(ctrl)
	collections := mock_srs.NewMockCollectionLookup(ctrl)

	collections.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&srs.Collection{ID: 5, CreatedAt: createdAt}, nil)
	cards.EXPECT().FindAllByCollection(gomock.Any(), int64(5)).Return([]srs.Card{
		{ID: 1, Queue: srs.QueueNew},
		{ID: 2, Queue: srs.QueueNew},
		{ID: 3, Queue: srs.QueueLearning, Due: now.Unix() + 600},
		{ID: 4, Queue: srs.QueueRelearning, Due: now.Unix() - 600},
		{ID: 5, Queue: srs.QueueReview, Due: 10},
		{ID: 6, Queue: srs.QueueReview, Due: 12},
	}, nil)

	engine := srs.NewScheduler(srs.DefaultConfig(), cards, collections, srs.FixedClock(now))
	got, err := engine.CollectionStats(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, srs.Stats{Total: 6, New: 2, Learning: 2, Review: 2, DueReview: 1}, got)
}

var errBoom = errors.New("boom")

func cardIDs(cards []srs.Card) []int64 {
	ids := make([]int64, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}
