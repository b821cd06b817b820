package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/flashcards/internal/client"
	"github.com/at-ishikawa/flashcards/internal/config"
	"github.com/at-ishikawa/flashcards/internal/database"
	"github.com/at-ishikawa/flashcards/internal/deck"
	"github.com/at-ishikawa/flashcards/internal/srs"
	"github.com/at-ishikawa/flashcards/internal/storage"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// app holds the database and the services built on it for one command.
type app struct {
	cfg        *config.Config
	db         *sqlx.DB
	clock      srs.Clock
	scheduler  *srs.Scheduler
	decks      *deck.Service
	reviewLogs *storage.DBReviewLogRepository
}

// openApp loads the configuration, opens and migrates the database, and wires the services.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if _, err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Migrate() > %w", err)
	}

	schedulerConfig := cfg.Scheduler.SRS()
	clock := srs.SystemClock{}
	cards := storage.NewDBCardRepository(db)
	collections := storage.NewDBCollectionRepository(db)
	reviewLogs := storage.NewDBReviewLogRepository(db)

	return &app{
		cfg:   cfg,
		db:    db,
		clock: clock,
		scheduler: srs.NewScheduler(
			schedulerConfig,
			storage.NewRetryingCardStore(cards, cfg.Store.RetryAttempts, cfg.Store.RetryDelay()),
			collections,
			clock,
			srs.WithReviewLogger(reviewLogs),
		),
		decks:      deck.NewService(cards, collections, schedulerConfig, clock),
		reviewLogs: reviewLogs,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// remoteFlags selects the review server a command talks to instead of the local database.
type remoteFlags struct {
	serverURL string
	remote    bool
}

func (f *remoteFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.serverURL, "server", "", "review server URL")
	flags.BoolVar(&f.remote, "remote", false, "use the review server from client.server_url")
}

// client returns nil when the command should run against the local database.
func (f *remoteFlags) client() (*client.Client, error) {
	serverURL := f.serverURL
	if serverURL == "" {
		if !f.remote {
			return nil, nil
		}
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		serverURL = cfg.Client.ServerURL
	}
	return client.New(serverURL, client.DefaultMaxRetryAttempts), nil
}

func parseID(arg string, name string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, arg)
	}
	return id, nil
}

type QueueFlag string

// Set implements pflag.Value.
func (q *QueueFlag) Set(v string) error {
	for _, queue := range []srs.Queue{srs.QueueNew, srs.QueueLearning, srs.QueueReview, srs.QueueRelearning} {
		if v == queue.String() {
			*q = QueueFlag(v)
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, valid values are new, learning, review or relearning", v)
}

// String implements pflag.Value.
func (q *QueueFlag) String() string {
	if q == nil {
		return ""
	}
	return string(*q)
}

// Type implements pflag.Value.
func (q *QueueFlag) Type() string {
	return "QueueFlag"
}

// Matches reports whether a card in queue passes the filter. An unset filter matches every queue.
func (q QueueFlag) Matches(queue string) bool {
	return q == "" || string(q) == queue
}

var (
	_ pflag.Value = (*QueueFlag)(nil)
)
