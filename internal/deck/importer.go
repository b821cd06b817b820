package deck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Deck is the YAML representation of a collection to import.
//
//	name: Spanish verbs
//	cards:
//	  - text: hablar
//	  - text: comer
type Deck struct {
	Name  string     `yaml:"name"`
	Cards []DeckCard `yaml:"cards"`
}

type DeckCard struct {
	Text string `yaml:"text"`
}

// ReadDeck decodes a deck and rejects unknown keys.
func ReadDeck(r io.Reader) (Deck, error) {
	var deck Deck
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&deck); err != nil {
		if errors.Is(err, io.EOF) {
			return Deck{}, fmt.Errorf("deck is empty")
		}
		return Deck{}, fmt.Errorf("decoder.Decode() > %w", err)
	}
	return deck, nil
}

// LoadDeck reads a deck file.
func LoadDeck(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()

	deck, err := ReadDeck(f)
	if err != nil {
		return Deck{}, fmt.Errorf("ReadDeck(%s) > %w", path, err)
	}
	return deck, nil
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
	// CollectionID appends to an existing collection instead of creating one
	// named after the deck.
	CollectionID int64
}

// ImportResult tracks counts for an import.
type ImportResult struct {
	CollectionID      int64
	CollectionCreated bool
	CardsNew          int
	CardsSkipped      int
}

// Importer writes decks through a Service and reports each card to writer.
type Importer struct {
	service *Service
	writer  io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(service *Service, writer io.Writer) *Importer {
	return &Importer{
		service: service,
		writer:  writer,
	}
}

// Import creates the cards of deck. Cards with empty text, or whose text
// already exists in the target collection or earlier in the deck, are skipped.
func (imp *Importer) Import(ctx context.Context, deck Deck, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	seen := make(map[string]bool)

	if opts.CollectionID != 0 {
		existing, err := imp.service.Cards(ctx, opts.CollectionID)
		if err != nil {
			return nil, fmt.Errorf("Cards(%d) > %w", opts.CollectionID, err)
		}
		for _, card := range existing {
			seen[card.Text] = true
		}
		result.CollectionID = opts.CollectionID
	} else {
		name := strings.TrimSpace(deck.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if !opts.DryRun {
			collection, err := imp.service.CreateCollection(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("CreateCollection(%s) > %w", name, err)
			}
			result.CollectionID = collection.ID
		}
		result.CollectionCreated = true
		fmt.Fprintf(imp.writer, "[COLLECTION]  %q\n", name)
	}

	for _, deckCard := range deck.Cards {
		text := strings.TrimSpace(deckCard.Text)
		if text == "" {
			fmt.Fprintf(imp.writer, "  [WARN]  empty card skipped\n")
			result.CardsSkipped++
			continue
		}
		if seen[text] {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", text)
			result.CardsSkipped++
			continue
		}
		seen[text] = true

		if !opts.DryRun {
			if _, err := imp.service.createCard(ctx, result.CollectionID, text); err != nil {
				if result.CollectionCreated {
					// The cards created so far stay; rerunning against the collection skips them.
					return nil, fmt.Errorf("createCard(%q) > %w (collection %d was created, resume with --collection %d)",
						text, err, result.CollectionID, result.CollectionID)
				}
				return nil, fmt.Errorf("createCard(%q) > %w", text, err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q\n", text)
		result.CardsNew++
	}

	slog.Default().Info("imported a deck",
		"collectionID", result.CollectionID,
		"new", result.CardsNew,
		"skipped", result.CardsSkipped,
		"dryRun", opts.DryRun,
	)
	return &result, nil
}
