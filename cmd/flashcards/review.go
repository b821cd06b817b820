package main

import (
	"fmt"

	"github.com/spf13/cobra"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/cli"
)

func newDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due <collection id>",
		Short: "List the cards due now without starting a session",
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

			cards, err := a.scheduler.GetDueCards(ctx, collectionID, a.clock.Now())
			if err != nil {
				return fmt.Errorf("scheduler.GetDueCards(%d) > %w", collectionID, err)
			}
			if len(cards) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No cards are due.")
				return nil
			}
			result := make([]*apiv1.Card, 0, len(cards))
			for _, card := range cards {
				result = append(result, apiv1.FromCard(card))
			}
			cli.WriteCards(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newReviewCommand() *cobra.Command {
	var remote remoteFlags
	command := &cobra.Command{
		Use:   "review <collection id>",
		Short: "Review the due cards of a collection interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID, err := parseID(args[0], "collection id")
			if err != nil {
				return err
			}

			var reviewer cli.Reviewer
			c, err := remote.client()
			if err != nil {
				return err
			}
			if c != nil {
				defer func() {
					_ = c.Close()
				}()
				reviewer = cli.NewRemoteReviewer(c)
			} else {
				a, err := openApp(ctx)
				if err != nil {
					return err
				}
				defer func() {
					_ = a.Close()
				}()
				reviewer = cli.NewLocalReviewer(a.scheduler)
			}

			out := cmd.OutOrStdout()
			session := cli.NewReviewCLI(reviewer, collectionID, cmd.InOrStdin(), out)
			if err := cli.Run(ctx, out, session); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "Reviewed %d cards.\n", session.Reviewed())
			return nil
		},
	}
	remote.register(command.Flags())
	return command
}
