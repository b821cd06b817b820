// Package testutil provides shared test helpers for creating config files and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/flashcards/internal/deck"
)

// SetupTestConfig creates a config file that stores cards in a SQLite file under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
store:
  retry_attempts: 1
  retry_delay_millis: 0
`,
		filepath.Join(dataDir, "flashcards.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithServer creates a config file whose client talks to serverURL.
func SetupTestConfigWithServer(t *testing.T, tmpDir string, serverURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("client:\n  server_url: %s\n", serverURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// CreateDeckFile writes a deck named name with one card per text under dir.
// Returns the path to the deck file.
func CreateDeckFile(t *testing.T, dir string, name string, texts ...string) string {
	t.Helper()

	d := deck.Deck{Name: name}
	for _, text := range texts {
		d.Cards = append(d.Cards, deck.DeckCard{Text: text})
	}
	content, err := yaml.Marshal(d)
	require.NoError(t, err)

	path := filepath.Join(dir, name+".yml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}
