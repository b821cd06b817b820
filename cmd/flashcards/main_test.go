package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashcards/internal/config"
	"github.com/at-ishikawa/flashcards/internal/database"
	"github.com/at-ishikawa/flashcards/internal/deck"
	"github.com/at-ishikawa/flashcards/internal/server"
	"github.com/at-ishikawa/flashcards/internal/srs"
	"github.com/at-ishikawa/flashcards/internal/storage"
	"github.com/at-ishikawa/flashcards/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "flashcards", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "collection", "card", "import", "due", "review"})
}

func TestQueueFlag(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "new"},
		{value: "learning"},
		{value: "review"},
		{value: "relearning"},
		{value: "suspended", wantErr: true},
		{value: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var q QueueFlag
			err := q.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, q.Matches("review"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, q.String())
			assert.True(t, q.Matches(tt.value))
			assert.Equal(t, tt.value == "new", q.Matches("new"))
		})
	}

	cmd := newCardListCommand()
	flag := cmd.Flags().Lookup("queue")
	require.NotNil(t, flag)
	assert.Equal(t, "QueueFlag", flag.Value.Type())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: "42", want: 42},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseID(tt.arg, "collection id")
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid collection id")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// execute runs the root command with args against cfgPath and returns its output.
func execute(t *testing.T, cfgPath string, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands_LocalWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	deckPath := testutil.CreateDeckFile(t, tmpDir, "verbs", "hablar", "comer", "hablar", " ")

	out, err := execute(t, cfgPath, "", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied migration 001")

	out, err = execute(t, cfgPath, "", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Database is up to date (1 migrations applied)")

	out, err = execute(t, cfgPath, "", "import", deckPath, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "[DRY RUN] 2 new, 2 skipped")

	out, err = execute(t, cfgPath, "", "collection", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No collections yet.")

	out, err = execute(t, cfgPath, "", "import", deckPath)
	require.NoError(t, err)
	assert.Contains(t, out, `[COLLECTION]  "verbs"`)
	assert.Contains(t, out, "2 new, 2 skipped")

	out, err = execute(t, cfgPath, "", "card", "add", "1", "vivir")
	require.NoError(t, err)
	assert.Contains(t, out, `Added card 3 "vivir"`)

	out, err = execute(t, cfgPath, "", "collection", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "verbs")

	out, err = execute(t, cfgPath, "", "due", "1")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "not scheduled yet"))

	out, err = execute(t, cfgPath, "4\n1\n", "review", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "[learning] hablar")
	assert.Contains(t, out, `easy: "hablar" is review, due in 4 days`)
	assert.Contains(t, out, `again: "comer" is learning`)
	assert.Contains(t, out, "Reviewed 2 cards.")

	out, err = execute(t, cfgPath, "", "card", "list", "1", "--queue", "review")
	require.NoError(t, err)
	assert.Contains(t, out, "hablar")
	assert.NotContains(t, out, "comer")

	out, err = execute(t, cfgPath, "", "card", "history", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "easy")
	assert.Contains(t, out, "learning")

	out, err = execute(t, cfgPath, "", "card", "history", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Card 3 has not been reviewed yet.")

	_, err = execute(t, cfgPath, "", "card", "history", "99")
	assert.ErrorIs(t, err, srs.ErrCardNotFound)

	out, err = execute(t, cfgPath, "", "card", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "QUEUE       review")
	assert.Contains(t, out, "NEXT        due in 4 days")

	_, err = execute(t, cfgPath, "", "card", "show", "99")
	assert.ErrorIs(t, err, srs.ErrCardNotFound)

	out, err = execute(t, cfgPath, "", "card", "edit", "1", "hablar (to speak)")
	require.NoError(t, err)
	assert.Contains(t, out, `Updated card 1 "hablar (to speak)"`)

	out, err = execute(t, cfgPath, "", "collection", "stats", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL  NEW  LEARNING  REVIEW  DUE REVIEW")
	assert.Contains(t, out, "3      0    2         1       0")

	out, err = execute(t, cfgPath, "", "collection", "report", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Review Statistics Report")
	assert.Contains(t, out, "2 / 2")

	out, err = execute(t, cfgPath, "", "collection", "report", "1", "--year", "1999")
	require.NoError(t, err)
	assert.Contains(t, out, "No reviews found for the specified period.")

	_, err = execute(t, cfgPath, "", "collection", "report", "1", "--month", "3")
	assert.ErrorContains(t, err, "--month requires --year")

	_, err = execute(t, cfgPath, "", "collection", "stats", "99")
	assert.ErrorIs(t, err, srs.ErrCollectionNotFound)

	_, err = execute(t, cfgPath, "", "card", "add", "1", "   ")
	assert.ErrorIs(t, err, deck.ErrEmptyText)

	out, err = execute(t, cfgPath, "", "collection", "rename", "1", "spanish verbs")
	require.NoError(t, err)
	assert.Contains(t, out, `Renamed collection 1 to "spanish verbs"`)

	_, err = execute(t, cfgPath, "", "collection", "rename", "99", "nouns")
	assert.ErrorIs(t, err, srs.ErrCollectionNotFound)

	out, err = execute(t, cfgPath, "n\n", "collection", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, cfgPath, "y\n", "collection", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted collection 1")

	_, err = execute(t, cfgPath, "", "card", "show", "1")
	assert.ErrorIs(t, err, srs.ErrCardNotFound)

	out, err = execute(t, cfgPath, "", "collection", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No collections yet.")

	_, err = execute(t, cfgPath, "", "collection", "delete", "1", "--yes")
	assert.ErrorIs(t, err, srs.ErrCollectionNotFound)
}

func TestCommands_Remote(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(tmpDir, "server.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = database.Migrate(ctx, db)
	require.NoError(t, err)

	clock := srs.SystemClock{}
	cards := storage.NewDBCardRepository(db)
	collections := storage.NewDBCollectionRepository(db)
	handler := server.NewReviewHandler(
		srs.NewScheduler(srs.DefaultConfig(), cards, collections, clock),
		deck.NewService(cards, collections, srs.DefaultConfig(), clock),
	)
	srv := httptest.NewServer(server.NewRouter(handler, nil))
	t.Cleanup(srv.Close)

	cfgPath := testutil.SetupTestConfigWithServer(t, tmpDir, srv.URL)

	out, err := execute(t, cfgPath, "", "collection", "create", "nouns", "--remote")
	require.NoError(t, err)
	assert.Contains(t, out, `Created collection 1 "nouns"`)

	out, err = execute(t, cfgPath, "", "card", "add", "1", "casa", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `Added card 1 "casa"`)

	out, err = execute(t, cfgPath, "good\n", "review", "1", "--remote")
	require.NoError(t, err)
	assert.Contains(t, out, `good: "casa" is learning`)
	assert.Contains(t, out, "Reviewed 1 cards.")

	out, err = execute(t, cfgPath, "", "collection", "stats", "1", "--remote")
	require.NoError(t, err)
	assert.Contains(t, out, "1      0    1         0       0")

	out, err = execute(t, cfgPath, "", "card", "show", "1", "--remote")
	require.NoError(t, err)
	assert.Contains(t, out, "TEXT        casa")

	out, err = execute(t, cfgPath, "", "collection", "rename", "1", "home", "--remote")
	require.NoError(t, err)
	assert.Contains(t, out, `Renamed collection 1 to "home"`)

	out, err = execute(t, cfgPath, "", "collection", "delete", "1", "--yes", "--remote")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted collection 1")

	_, err = execute(t, cfgPath, "", "card", "show", "1", "--remote")
	assert.ErrorContains(t, err, "not_found")

	// The local database of the config is untouched.
	out, err = execute(t, cfgPath, "", "collection", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No collections yet.")
}
