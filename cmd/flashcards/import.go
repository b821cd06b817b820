package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashcards/internal/deck"
)

func newImportCommand() *cobra.Command {
	var dryRun bool
	var collectionID int64

	command := &cobra.Command{
		Use:   "import <deck.yml>",
		Short: "Import cards from a YAML deck file",
		Long: `Import cards from a YAML deck file.

A new collection named after the deck is created unless --collection is given.
Cards whose text already exists in the target collection are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := deck.LoadDeck(args[0])
			if err != nil {
				return fmt.Errorf("deck.LoadDeck(%s) > %w", args[0], err)
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			out := cmd.OutOrStdout()
			result, err := deck.NewImporter(a.decks, out).Import(ctx, d, deck.ImportOptions{
				DryRun:       dryRun,
				CollectionID: collectionID,
			})
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}

			prefix := ""
			if dryRun {
				prefix = "[DRY RUN] "
			}
			_, _ = fmt.Fprintf(out, "%s%d new, %d skipped\n", prefix, result.CardsNew, result.CardsSkipped)
			return nil
		},
	}
	command.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without writing")
	command.Flags().Int64Var(&collectionID, "collection", 0, "append to this collection instead of creating one")
	return command
}
