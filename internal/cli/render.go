package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

const dueAtLayout = "2006-01-02 15:04 MST"

var gradeColors = map[srs.Grade]*color.Color{
	srs.GradeAgain: color.New(color.FgRed),
	srs.GradeHard:  color.New(color.FgYellow),
	srs.GradeGood:  color.New(color.FgGreen),
	srs.GradeEasy:  color.New(color.FgCyan),
}

// FormatGradeOptions renders the answer buttons with the interval each grade would schedule.
func FormatGradeOptions(intervals map[string]string) string {
	options := make([]string, 0, len(srs.Grades))
	for i, grade := range srs.Grades {
		option := fmt.Sprintf("%d) %s", i+1, gradeColors[grade].Sprint(grade.String()))
		if interval, ok := intervals[grade.String()]; ok {
			option += " " + interval
		}
		options = append(options, option)
	}
	return strings.Join(options, "  ")
}

// FormatNextReview describes when a card is shown again.
func FormatNextReview(card *apiv1.Card) string {
	switch {
	case card.GetDueAt() != nil:
		return "due at " + card.GetDueAt().AsTime().Format(dueAtLayout)
	case card.DueDay != nil:
		if card.GetInterval() == 1 {
			return "due in 1 day"
		}
		return fmt.Sprintf("due in %d days", card.GetInterval())
	default:
		return "not scheduled yet"
	}
}

// WriteReviewResult prints the outcome of grading a card.
func WriteReviewResult(w io.Writer, grade srs.Grade, card *apiv1.Card) {
	mark := "✅ "
	if grade == srs.GradeAgain {
		mark = "❌ "
	}
	_, _ = fmt.Fprint(w, mark)
	_, _ = gradeColors[grade].Fprintf(w, "%s: %q is %s, %s\n",
		grade, card.GetText(), card.GetQueue(), FormatNextReview(card))
}

func WriteStats(w io.Writer, stats *apiv1.GetCollectionStatsResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TOTAL\tNEW\tLEARNING\tREVIEW\tDUE REVIEW")
	_, _ = fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n",
		stats.GetTotal(), stats.GetNew(), stats.GetLearning(), stats.GetReview(), stats.GetDueReview())
	_ = tw.Flush()
}

func WriteCollections(w io.Writer, collections []*apiv1.Collection) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tCREATED")
	for _, collection := range collections {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n",
			collection.GetId(), collection.GetName(), collection.GetCreatedAt().AsTime().Format(dueAtLayout))
	}
	_ = tw.Flush()
}

// WriteCards lists cards with their scheduling state.
func WriteCards(w io.Writer, cards []*apiv1.Card) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tQUEUE\tINTERVAL\tFACTOR\tREPS\tLAPSES\tNEXT\tTEXT")
	for _, card := range cards {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			card.GetId(), card.GetQueue(), card.GetInterval(), card.GetFactor(), card.GetReps(), card.GetLapses(),
			FormatNextReview(card), card.GetText())
	}
	_ = tw.Flush()
}

// WriteCard prints one card with its full scheduling state.
func WriteCard(w io.Writer, card *apiv1.Card) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "ID\t%d\n", card.GetId())
	_, _ = fmt.Fprintf(tw, "COLLECTION\t%d\n", card.GetCollectionId())
	_, _ = fmt.Fprintf(tw, "TEXT\t%s\n", card.GetText())
	_, _ = fmt.Fprintf(tw, "TYPE\t%s\n", card.GetType())
	_, _ = fmt.Fprintf(tw, "QUEUE\t%s\n", card.GetQueue())
	_, _ = fmt.Fprintf(tw, "NEXT\t%s\n", FormatNextReview(card))
	_, _ = fmt.Fprintf(tw, "INTERVAL\t%d\n", card.GetInterval())
	_, _ = fmt.Fprintf(tw, "FACTOR\t%d\n", card.GetFactor())
	_, _ = fmt.Fprintf(tw, "REPS\t%d\n", card.GetReps())
	_, _ = fmt.Fprintf(tw, "LAPSES\t%d\n", card.GetLapses())
	_, _ = fmt.Fprintf(tw, "CREATED\t%s\n", card.GetCreatedAt().AsTime().Format(dueAtLayout))
	_, _ = fmt.Fprintf(tw, "UPDATED\t%s\n", card.GetUpdatedAt().AsTime().Format(dueAtLayout))
	_ = tw.Flush()
}
