package statistics

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

// ReviewStatistics holds statistics for a time period
type ReviewStatistics struct {
	Period        string // "2025-01"
	Reviews       int    // Total graded answers
	CardsReviewed int    // Unique cards graded
	Graduations   int    // Cards that left learning for the review queue
	Lapses        int    // Review cards answered Again
	RetentionRate float64
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	Reviews       int
	CardsReviewed int
	Graduations   int
	Lapses        int
	RetentionRate float64
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []ReviewStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	reviews       int
	cards         map[int64]struct{}
	graduations   int
	lapses        int
	matureReviews int
}

// CalculateStatistics aggregates review logs by month.
// It accepts optional year and month filters (0 means no filter).
// Retention is the share of answers to review-queue cards that were not Again.
func CalculateStatistics(logs []srs.ReviewLog, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalCards := make(map[int64]struct{})
	var total periodData

	for _, log := range logs {
		if log.ReviewedAt.IsZero() {
			continue
		}
		logYear := log.ReviewedAt.Year()
		logMonth := int(log.ReviewedAt.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		data := ensurePeriodExists(stats, period)
		data.add(log)
		total.add(log)
		globalCards[log.CardID] = struct{}{}
	}

	return buildResult(stats, total, len(globalCards))
}

func (d *periodData) add(log srs.ReviewLog) {
	d.reviews++
	if d.cards != nil {
		d.cards[log.CardID] = struct{}{}
	}
	if log.PreviousQueue.IsLearning() && log.Queue == srs.QueueReview {
		d.graduations++
	}
	if log.PreviousQueue == srs.QueueReview {
		d.matureReviews++
		if log.Grade == srs.GradeAgain {
			d.lapses++
		}
	}
}

func (d *periodData) retentionRate() float64 {
	if d.matureReviews == 0 {
		return 0
	}
	return float64(d.matureReviews-d.lapses) / float64(d.matureReviews)
}

func ensurePeriodExists(stats map[string]*periodData, period string) *periodData {
	if stats[period] == nil {
		stats[period] = &periodData{
			cards: make(map[int64]struct{}),
		}
	}
	return stats[period]
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(stats map[string]*periodData, total periodData, cardsReviewed int) StatisticsResult {
	periods := make([]ReviewStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, ReviewStatistics{
			Period:        period,
			Reviews:       data.reviews,
			CardsReviewed: len(data.cards),
			Graduations:   data.graduations,
			Lapses:        data.lapses,
			RetentionRate: data.retentionRate(),
		})
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods: periods,
		Aggregate: AggregateStatistics{
			Reviews:       total.reviews,
			CardsReviewed: cardsReviewed,
			Graduations:   total.graduations,
			Lapses:        total.lapses,
			RetentionRate: total.retentionRate(),
		},
	}
}
