package apiv1

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

// FromCard converts a scheduled card into its wire form.
func FromCard(card srs.Card) *Card {
	result := &Card{
		Id:           card.ID,
		CollectionId: card.CollectionID,
		Text:         card.Text,
		Type:         card.Type.String(),
		Queue:        card.Queue.String(),
		Due:          card.Due,
		Interval:     int32(card.Interval),
		Factor:       int32(card.Factor),
		Reps:         int32(card.Reps),
		Lapses:       int32(card.Lapses),
		StepsLeft:    int32(card.StepsLeft),
		CreatedAt:    timestamppb.New(card.CreatedAt),
		UpdatedAt:    timestamppb.New(card.UpdatedAt),
	}
	if dueAt, ok := card.DueAt(); ok {
		result.DueAt = timestamppb.New(dueAt.UTC())
	}
	if dueDay, ok := card.DueDay(); ok {
		day := int32(dueDay)
		result.DueDay = &day
	}
	return result
}

func FromDueCard(dueCard srs.DueCard) *DueCard {
	intervals := make(map[string]string, len(dueCard.Intervals))
	for grade, interval := range dueCard.Intervals {
		intervals[grade.String()] = interval.String()
	}
	return &DueCard{
		Card:      FromCard(dueCard.Card),
		Intervals: intervals,
	}
}

func FromCollection(collection srs.Collection) *Collection {
	return &Collection{
		Id:        collection.ID,
		Name:      collection.Name,
		CreatedAt: timestamppb.New(collection.CreatedAt),
		UpdatedAt: timestamppb.New(collection.UpdatedAt),
	}
}

func FromStats(stats srs.Stats) *GetCollectionStatsResponse {
	return &GetCollectionStatsResponse{
		Total:     int32(stats.Total),
		New:       int32(stats.New),
		Learning:  int32(stats.Learning),
		Review:    int32(stats.Review),
		DueReview: int32(stats.DueReview),
	}
}

var (
	toGrade = map[srs.Grade]Grade{
		srs.GradeAgain: Grade_GRADE_AGAIN,
		srs.GradeHard:  Grade_GRADE_HARD,
		srs.GradeGood:  Grade_GRADE_GOOD,
		srs.GradeEasy:  Grade_GRADE_EASY,
	}
	fromGrade = map[Grade]srs.Grade{
		Grade_GRADE_AGAIN: srs.GradeAgain,
		Grade_GRADE_HARD:  srs.GradeHard,
		Grade_GRADE_GOOD:  srs.GradeGood,
		Grade_GRADE_EASY:  srs.GradeEasy,
	}
)

// ToGrade returns GRADE_UNSPECIFIED for a grade outside the four buttons.
func ToGrade(grade srs.Grade) Grade {
	return toGrade[grade]
}

func FromGrade(grade Grade) (srs.Grade, error) {
	result, ok := fromGrade[grade]
	if !ok {
		return 0, fmt.Errorf("%w: %s", srs.ErrInvalidGrade, grade)
	}
	return result, nil
}
