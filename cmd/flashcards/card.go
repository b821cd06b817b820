package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/cli"
)

func newCardCommand() *cobra.Command {
	cardCmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cardCmd.AddCommand(newCardAddCommand())
	cardCmd.AddCommand(newCardEditCommand())
	cardCmd.AddCommand(newCardListCommand())
	cardCmd.AddCommand(newCardShowCommand())
	cardCmd.AddCommand(newCardHistoryCommand())

	return cardCmd
}

func newCardAddCommand() *cobra.Command {
	var remote remoteFlags
	command := &cobra.Command{
		Use:   "add <collection id> <text>",
		Short: "Add a new card to a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID, err := parseID(args[0], "collection id")
			if err != nil {
				return err
			}

			var card *apiv1.Card
			c, err := remote.client()
			if err != nil {
				return err
			}
			if c != nil {
				defer func() {
					_ = c.Close()
				}()
				created, err := c.CreateCard(ctx, collectionID, args[1])
				if err != nil {
					return fmt.Errorf("client.CreateCard(%d) > %w", collectionID, err)
				}
				card = created
			} else {
				a, err := openApp(ctx)
				if err != nil {
					return err
				}
				defer func() {
					_ = a.Close()
				}()
				created, err := a.decks.AddCard(ctx, collectionID, args[1])
				if err != nil {
					return fmt.Errorf("decks.AddCard(%d) > %w", collectionID, err)
				}
				card = apiv1.FromCard(*created)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added card %d %q\n", card.GetId(), card.GetText())
			return nil
		},
	}
	remote.register(command.Flags())
	return command
}

func newCardEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <card id> <text>",
		Short: "Replace the text of a card, keeping its schedule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cardID, err := parseID(args[0], "card id")
			if err != nil {
				return err
			}
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			card, err := a.decks.UpdateCardText(ctx, cardID, args[1])
			if err != nil {
				return fmt.Errorf("decks.UpdateCardText(%d) > %w", cardID, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated card %d %q\n", card.ID, card.Text)
			return nil
		},
	}
}

func newCardListCommand() *cobra.Command {
	var queue QueueFlag
	command := &cobra.Command{
		Use:   "list <collection id>",
		Short: "List the cards of a collection with their schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID, err := parseID(args[0], "collection id")
			if err != nil {
				return err
			}
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			cards, err := a.decks.Cards(ctx, collectionID)
			if err != nil {
				return fmt.Errorf("decks.Cards(%d) > %w", collectionID, err)
			}
			result := make([]*apiv1.Card, 0, len(cards))
			for _, card := range cards {
				if !queue.Matches(card.Queue.String()) {
					continue
				}
				result = append(result, apiv1.FromCard(card))
			}
			cli.WriteCards(cmd.OutOrStdout(), result)
			return nil
		},
	}
	command.Flags().Var(&queue, "queue", "Only list cards in this queue. Options: new, learning, review, relearning")
	return command
}

func newCardShowCommand() *cobra.Command {
	var remote remoteFlags
	command := &cobra.Command{
		Use:   "show <card id>",
		Short: "Show a card with its scheduling state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cardID, err := parseID(args[0], "card id")
			if err != nil {
				return err
			}

			var card *apiv1.Card
			c, err := remote.client()
			if err != nil {
				return err
			}
			if c != nil {
				defer func() {
					_ = c.Close()
				}()
				card, err = c.GetCard(ctx, cardID)
				if err != nil {
					return fmt.Errorf("client.GetCard(%d) > %w", cardID, err)
				}
			} else {
				a, err := openApp(ctx)
				if err != nil {
					return err
				}
				defer func() {
					_ = a.Close()
				}()
				found, err := a.decks.Card(ctx, cardID)
				if err != nil {
					return fmt.Errorf("decks.Card(%d) > %w", cardID, err)
				}
				card = apiv1.FromCard(*found)
			}

			cli.WriteCard(cmd.OutOrStdout(), card)
			return nil
		},
	}
	remote.register(command.Flags())
	return command
}

func newCardHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <card id>",
		Short: "Show the review log of a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cardID, err := parseID(args[0], "card id")
			if err != nil {
				return err
			}
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			if _, err := a.decks.Card(ctx, cardID); err != nil {
				return fmt.Errorf("decks.Card(%d) > %w", cardID, err)
			}
			logs, err := a.reviewLogs.FindByCard(ctx, cardID)
			if err != nil {
				return fmt.Errorf("reviewLogs.FindByCard(%d) > %w", cardID, err)
			}
			if len(logs) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Card %d has not been reviewed yet.\n", cardID)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "REVIEWED\tGRADE\tFROM\tTO\tINTERVAL\tFACTOR")
			for _, log := range logs {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
					log.ReviewedAt.UTC().Format("2006-01-02 15:04 MST"),
					log.Grade, log.PreviousQueue, log.Queue, log.Interval, log.Factor)
			}
			_ = w.Flush()
			return nil
		},
	}
}
