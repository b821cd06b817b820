package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/cli"
	"github.com/at-ishikawa/flashcards/internal/statistics"
)

func newCollectionCommand() *cobra.Command {
	collectionCmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections",
	}

	collectionCmd.AddCommand(newCollectionCreateCommand())
	collectionCmd.AddCommand(newCollectionListCommand())
	collectionCmd.AddCommand(newCollectionRenameCommand())
	collectionCmd.AddCommand(newCollectionDeleteCommand())
	collectionCmd.AddCommand(newCollectionStatsCommand())
	collectionCmd.AddCommand(newCollectionReportCommand())

	return collectionCmd
}

func newCollectionCreateCommand() *cobra.Command {
	var remote remoteFlags
	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var collection *apiv1.Collection
			c, err := remote.client()
			if err != nil {
				return err
			}
			if c != nil {
				defer func() {
					_ = c.Close()
				}()
				created, err := c.CreateCollection(ctx, args[0])
				if err != nil {
					return fmt.Errorf("client.CreateCollection() > %w", err)
				}
				collection = created
			} else {
				a, err := openApp(ctx)
				if err != nil {
					return err
				}
				defer func() {
					_ = a.Close()
				}()
				created, err := a.decks.CreateCollection(ctx, args[0])
				if err != nil {
					return fmt.Errorf("decks.CreateCollection() > %w", err)
				}
				collection = apiv1.FromCollection(*created)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created collection %d %q\n", collection.GetId(), collection.GetName())
			return nil
		},
	}
	remote.register(command.Flags())
	return command
}

func newCollectionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			collections, err := a.decks.Collections(ctx)
			if err != nil {
				return fmt.Errorf("decks.Collections() > %w", err)
			}
			if len(collections) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No collections yet. Use 'flashcards collection create <name>' or 'flashcards import <deck.yml>'.")
				return nil
			}

			result := make([]*apiv1.Collection, 0, len(collections))
			for _, collection := range collections {
				result = append(result, apiv1.FromCollection(collection))
			}
			cli.WriteCollections(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newCollectionRenameCommand() *cobra.Command {
	var remote remoteFlags
	command := &cobra.Command{
		Use:   "rename <collection id> <name>",
		Short: "Rename a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID, err := parseID(args[0], "collection id")
			if err != nil {
				return err
			}

			var collection *apiv1.Collection
			c, err := remote.client()
			if err != nil {
				return err
			}
			if c != nil {
				defer func() {
					_ = c.Close()
				}()
				collection, err = c.RenameCollection(ctx, collectionID, args[1])
				if err != nil {
					return fmt.Errorf("client.RenameCollection(%d) > %w", collectionID, err)
				}
			} else {
				a, err := openApp(ctx)
				if err != nil {
					return err
				}
				defer func() {
					_ = a.Close()
				}()
				renamed, err := a.decks.RenameCollection(ctx, collectionID, args[1])
				if err != nil {
					return fmt.Errorf("decks.RenameCollection(%d) > %w", collectionID, err)
				}
				collection = apiv1.FromCollection(*renamed)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed collection %d to %q\n", collection.GetId(), collection.GetName())
			return nil
		},
	}
	remote.register(command.Flags())
	return command
}

func newCollectionDeleteCommand() *cobra.Command {
	var remote remoteFlags
	var yes bool
	command := &cobra.Command{
		Use:   "delete <collection id>",
		Short: "Delete a collection with its cards and review history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID, err := parseID(args[0], "collection id")
			if err != nil {
				return err
			}
			if !yes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Delete collection %d with all its cards and review history? [y/N]: ", collectionID)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			c, err := remote.client()
			if err != nil {
				return err
			}
			if c != nil {
				defer func() {
					_ = c.Close()
				}()
				if err := c.DeleteCollection(ctx, collectionID); err != nil {
					return fmt.Errorf("client.DeleteCollection(%d) > %w", collectionID, err)
				}
			} else {
				a, err := openApp(ctx)
				if err != nil {
					return err
				}
				defer func() {
					_ = a.Close()
				}()
				if err := a.decks.DeleteCollection(ctx, collectionID); err != nil {
					return fmt.Errorf("decks.DeleteCollection(%d) > %w", collectionID, err)
				}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted collection %d\n", collectionID)
			return nil
		},
	}
	remote.register(command.Flags())
	command.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return command
}

func newCollectionStatsCommand() *cobra.Command {
	var remote remoteFlags
	command := &cobra.Command{
		Use:   "stats <collection id>",
		Short: "Count the cards of a collection by queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID, err := parseID(args[0], "collection id")
			if err != nil {
				return err
			}

			var stats *apiv1.GetCollectionStatsResponse
			c, err := remote.client()
			if err != nil {
				return err
			}
			if c != nil {
				defer func() {
					_ = c.Close()
				}()
				response, err := c.GetCollectionStats(ctx, collectionID)
				if err != nil {
					return fmt.Errorf("client.GetCollectionStats(%d) > %w", collectionID, err)
				}
				stats = response
			} else {
				a, err := openApp(ctx)
				if err != nil {
					return err
				}
				defer func() {
					_ = a.Close()
				}()
				result, err := a.scheduler.CollectionStats(ctx, collectionID)
				if err != nil {
					return fmt.Errorf("scheduler.CollectionStats(%d) > %w", collectionID, err)
				}
				stats = apiv1.FromStats(result)
			}

			cli.WriteStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
	remote.register(command.Flags())
	return command
}

func newCollectionReportCommand() *cobra.Command {
	var year, month int

	command := &cobra.Command{
		Use:   "report <collection id>",
		Short: "Show monthly review statistics of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}
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

			if _, err := a.decks.Collection(ctx, collectionID); err != nil {
				return fmt.Errorf("decks.Collection(%d) > %w", collectionID, err)
			}
			logs, err := a.reviewLogs.FindByCollection(ctx, collectionID)
			if err != nil {
				return fmt.Errorf("reviewLogs.FindByCollection(%d) > %w", collectionID, err)
			}

			cli.WriteReport(cmd.OutOrStdout(), statistics.CalculateStatistics(logs, year, month))
			return nil
		},
	}

	command.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	command.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")
	return command
}
