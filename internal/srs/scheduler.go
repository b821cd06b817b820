package srs

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Scheduler moves cards between queues and decides which of them are due.
//
// It holds no locks. Grading the same card from two goroutines at once is a
// data race that callers have to prevent.
type Scheduler struct {
	config      Config
	cards       CardStore
	collections CollectionLookup
	reviewLogs  ReviewLogger
	clock       Clock
	newID       func() string
}

// Option configures optional collaborators of a Scheduler.
type Option func(*Scheduler)

// WithReviewLogger records a ReviewLog for every graded card.
func WithReviewLogger(logger ReviewLogger) Option {
	return func(s *Scheduler) {
		s.reviewLogs = logger
	}
}

// WithIDGenerator replaces the UUID generator used for review log ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Scheduler) {
		s.newID = newID
	}
}

// NewScheduler creates a Scheduler.
func NewScheduler(config Config, cards CardStore, collections CollectionLookup, clock Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		config:      config,
		cards:       cards,
		collections: collections,
		clock:       clock,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the scheduling constants in use.
func (s *Scheduler) Config() Config {
	return s.config
}

// DueCard is a due card with the outcome each grade would have.
type DueCard struct {
	Card      Card
	Intervals Preview
}

// Stats counts the cards of a collection by queue.
type Stats struct {
	Total     int
	New       int
	Learning  int
	Review    int
	DueReview int
}

// InitializeLearning moves a new card into the first learning step.
// The caller persists the card.
func (s *Scheduler) InitializeLearning(card *Card, now time.Time) error {
	if card.Queue != QueueNew {
		return fmt.Errorf("%w: card %d is in the %s queue, want new", ErrInvalidQueue, card.ID, card.Queue)
	}
	card.Type = CardTypeLearning
	card.Queue = QueueLearning
	card.StepsLeft = s.config.stepCount()
	card.Due = now.Unix() + s.config.stepSeconds(0)
	return nil
}

// ProcessReview applies grade to card in place.
func (s *Scheduler) ProcessReview(card *Card, grade Grade, now time.Time) error {
	if !grade.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidGrade, int(grade))
	}

	switch {
	case card.Queue.IsLearning():
		s.processLearning(card, grade, now)
		return nil
	case card.Queue == QueueReview:
		return s.processReview(card, grade, now)
	default:
		return fmt.Errorf("%w: card %d is in the %s queue", ErrInvalidQueue, card.ID, card.Queue)
	}
}

func (s *Scheduler) processLearning(card *Card, grade Grade, now time.Time) {
	steps := s.config.stepCount()
	nowSec := now.Unix()

	switch grade {
	case GradeAgain:
		card.Lapses++
		card.StepsLeft = steps
		card.Due = nowSec + s.config.stepSeconds(0)
	case GradeHard:
		// repeats the current step, stretched by the hard factor
		minutes := float64(s.config.LearningStepsMinutes[s.stepIndex(card.StepsLeft)]) * s.config.HardFactor
		card.Due = nowSec + int64(math.Round(minutes))*60
	case GradeGood:
		remaining := card.StepsLeft - 1
		if remaining > 0 {
			card.StepsLeft = remaining
			card.Due = nowSec + s.config.stepSeconds(s.stepIndex(remaining))
			return
		}
		s.graduate(card, 1, now)
	case GradeEasy:
		s.graduate(card, s.config.EasyGraduatingInterval, now)
	}
}

// stepIndex maps the number of steps left to the index of the current step.
func (s *Scheduler) stepIndex(stepsLeft int) int {
	idx := s.config.stepCount() - stepsLeft
	if idx < 0 {
		return 0
	}
	if last := s.config.stepCount() - 1; idx > last {
		return last
	}
	return idx
}

func (s *Scheduler) graduate(card *Card, interval int, now time.Time) {
	card.StepsLeft = 0
	card.Type = CardTypeReview
	card.Queue = QueueReview
	card.Interval = interval
	card.Reps++
	card.Due = int64(DaysBetween(card.CreatedAt, now) + interval)
}

func (s *Scheduler) processReview(card *Card, grade Grade, now time.Time) error {
	if grade == GradeAgain {
		card.Lapses++
		card.Type = CardTypeLearning
		card.Queue = QueueRelearning
		card.StepsLeft = s.config.stepCount()
		card.Due = now.Unix() + s.config.stepSeconds(0)
		return nil
	}

	newInterval, err := s.config.reviewInterval(*card, grade, now)
	if err != nil {
		return err
	}
	card.Interval = newInterval
	card.Reps++

	switch grade {
	case GradeHard:
		card.Factor = max(card.Factor-s.config.HardFactorDecrease, s.config.MinFactor)
	case GradeEasy:
		card.Factor = int(float64(card.Factor) * s.config.EasyBonus)
	}

	card.Due = int64(DaysBetween(card.CreatedAt, now) + newInterval)
	return nil
}

// GetDueCards returns the cards of a collection that are due at now, in store order.
// New cards are always due.
func (s *Scheduler) GetDueCards(ctx context.Context, collectionID int64, now time.Time) ([]Card, error) {
	collection, err := s.findCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards.FindAllByCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("cards.FindAllByCollection(%d) > %w", collectionID, err)
	}

	nowSec := now.Unix()
	daysSinceCreation := DaysBetween(collection.CreatedAt, now)

	due := make([]Card, 0, len(cards))
	for _, card := range cards {
		if isDue(card, nowSec, daysSinceCreation) {
			due = append(due, card)
		}
	}
	return due, nil
}

func isDue(card Card, nowSec int64, daysSinceCreation int) bool {
	switch card.Queue {
	case QueueNew:
		return true
	case QueueLearning, QueueRelearning:
		return card.Due <= nowSec
	case QueueReview:
		return card.Due <= int64(daysSinceCreation)
	default:
		return false
	}
}

// StartLearning returns the due cards of a collection ready to be shown.
// New cards are moved into learning and saved first, so they sort ahead of
// review cards. Cards are ordered by queue, then by creation time, keeping
// store order for ties.
func (s *Scheduler) StartLearning(ctx context.Context, collectionID int64) ([]DueCard, error) {
	now := s.clock.Now()

	due, err := s.GetDueCards(ctx, collectionID, now)
	if err != nil {
		return nil, err
	}

	for i := range due {
		if due[i].Queue != QueueNew {
			continue
		}
		if err := s.InitializeLearning(&due[i], now); err != nil {
			return nil, fmt.Errorf("InitializeLearning(%d) > %w", due[i].ID, err)
		}
		due[i].UpdatedAt = now
		if err := s.cards.Save(ctx, &due[i]); err != nil {
			return nil, fmt.Errorf("cards.Save(%d) > %w", due[i].ID, err)
		}
		slog.Default().Debug("started learning a new card",
			"cardID", due[i].ID,
			"collectionID", collectionID,
			"due", due[i].Due,
		)
	}

	result := make([]DueCard, len(due))
	for i, card := range due {
		result[i] = DueCard{
			Card:      card,
			Intervals: s.PreviewIntervals(card, now),
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Card, result[j].Card
		if a.Queue != b.Queue {
			return a.Queue < b.Queue
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return result, nil
}

// GradeCard loads a card, applies grade, and saves it.
func (s *Scheduler) GradeCard(ctx context.Context, cardID int64, grade Grade) (*Card, error) {
	if !grade.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(grade))
	}
	now := s.clock.Now()

	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("cards.FindByID(%d) > %w", cardID, err)
	}
	if card == nil {
		return nil, fmt.Errorf("%w: %d", ErrCardNotFound, cardID)
	}

	previousQueue := card.Queue
	if err := s.ProcessReview(card, grade, now); err != nil {
		return nil, fmt.Errorf("ProcessReview(%d) > %w", cardID, err)
	}
	card.UpdatedAt = now
	if err := s.cards.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("cards.Save(%d) > %w", cardID, err)
	}

	if s.reviewLogs != nil {
		log := &ReviewLog{
			ID:            s.newID(),
			CardID:        card.ID,
			Grade:         grade,
			PreviousQueue: previousQueue,
			Queue:         card.Queue,
			Interval:      card.Interval,
			Factor:        card.Factor,
			Due:           card.Due,
			ReviewedAt:    now,
		}
		if err := s.reviewLogs.Create(ctx, log); err != nil {
			return nil, fmt.Errorf("reviewLogs.Create(%d) > %w", cardID, err)
		}
	}

	slog.Default().Debug("graded a card",
		"cardID", card.ID,
		"grade", grade,
		"previousQueue", previousQueue,
		"queue", card.Queue,
		"interval", card.Interval,
	)
	return card, nil
}

// CollectionStats counts the cards of a collection by queue at the current time.
func (s *Scheduler) CollectionStats(ctx context.Context, collectionID int64) (Stats, error) {
	now := s.clock.Now()

	collection, err := s.findCollection(ctx, collectionID)
	if err != nil {
		return Stats{}, err
	}
	cards, err := s.cards.FindAllByCollection(ctx, collectionID)
	if err != nil {
		return Stats{}, fmt.Errorf("cards.FindAllByCollection(%d) > %w", collectionID, err)
	}

	today := DaysBetween(collection.CreatedAt, now)
	stats := Stats{Total: len(cards)}
	for _, card := range cards {
		switch card.Queue {
		case QueueNew:
			stats.New++
		case QueueLearning, QueueRelearning:
			stats.Learning++
		case QueueReview:
			stats.Review++
			if card.Due <= int64(today) {
				stats.DueReview++
			}
		}
	}
	return stats, nil
}

func (s *Scheduler) findCollection(ctx context.Context, collectionID int64) (*Collection, error) {
	collection, err := s.collections.FindByID(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collections.FindByID(%d) > %w", collectionID, err)
	}
	if collection == nil {
		return nil, fmt.Errorf("%w: %d", ErrCollectionNotFound, collectionID)
	}
	return collection, nil
}
