package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// RetryingCardStore retries transient driver failures of the wrapped store
// with exponential back-off. Other errors are returned after the first attempt.
type RetryingCardStore struct {
	store    srs.CardStore
	attempts uint
	delay    time.Duration
}

// NewRetryingCardStore wraps store. attempts counts the first try.
func NewRetryingCardStore(store srs.CardStore, attempts uint, delay time.Duration) *RetryingCardStore {
	if attempts == 0 {
		attempts = 1
	}
	return &RetryingCardStore{
		store:    store,
		attempts: attempts,
		delay:    delay,
	}
}

func (s *RetryingCardStore) FindByID(ctx context.Context, id int64) (*srs.Card, error) {
	var card *srs.Card
	err := s.do(ctx, "FindByID", func() error {
		found, err := s.store.FindByID(ctx, id)
		if err != nil {
			return err
		}
		card = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *RetryingCardStore) FindAllByCollection(ctx context.Context, collectionID int64) ([]srs.Card, error) {
	var cards []srs.Card
	err := s.do(ctx, "FindAllByCollection", func() error {
		found, err := s.store.FindAllByCollection(ctx, collectionID)
		if err != nil {
			return err
		}
		cards = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *RetryingCardStore) Save(ctx context.Context, card *srs.Card) error {
	return s.do(ctx, "Save", func() error {
		return s.store.Save(ctx, card)
	})
}

func (s *RetryingCardStore) do(ctx context.Context, operation string, fn func() error) error {
	if err := retry.Do(
		func() error {
			err := fn()
			if err != nil && !IsTransient(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Warn("retrying a card store operation",
				"operation", operation,
				"attempt", n+1,
				"error", err,
			)
		}),
	); err != nil {
		return fmt.Errorf("cardStore.%s() > %w", operation, err)
	}
	return nil
}

// IsTransient reports whether err is a driver failure worth retrying.
func IsTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDeadlock || mysqlErr.Number == mysqlErrLockWaitTimeout
	}
	return false
}
