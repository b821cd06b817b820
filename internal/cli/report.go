package cli

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/flashcards/internal/statistics"
)

// WriteReport displays review statistics, newest period first.
func WriteReport(w io.Writer, result statistics.StatisticsResult) {
	if len(result.Periods) == 0 {
		_, _ = fmt.Fprintln(w, "No reviews found for the specified period.")
		return
	}

	_, _ = fmt.Fprintln(w, "Review Statistics Report")
	_, _ = fmt.Fprintln(w, "========================")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%-10s  %-21s  %-11s  %-6s  %-9s\n", "Period", "Reviews (Total/Cards)", "Graduations", "Lapses", "Retention")
	_, _ = fmt.Fprintf(w, "%-10s  %-21s  %-11s  %-6s  %-9s\n", "------", "---------------------", "-----------", "------", "---------")

	for _, s := range result.Periods {
		_, _ = fmt.Fprintf(w, "%-10s  %-21s  %-11d  %-6d  %-9s\n",
			s.Period,
			fmt.Sprintf("%d / %d", s.Reviews, s.CardsReviewed),
			s.Graduations,
			s.Lapses,
			formatRate(s.RetentionRate),
		)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%-10s  %-21s  %-11d  %-6d  %-9s\n",
		"Totals:",
		fmt.Sprintf("%d / %d", result.Aggregate.Reviews, result.Aggregate.CardsReviewed),
		result.Aggregate.Graduations,
		result.Aggregate.Lapses,
		formatRate(result.Aggregate.RetentionRate),
	)
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
