package srs

import (
	"fmt"
	"time"
)

// IntervalUnit is the unit of a previewed interval.
type IntervalUnit int

const (
	UnitMinute IntervalUnit = iota
	UnitDay
)

func (u IntervalUnit) String() string {
	if u == UnitDay {
		return "day"
	}
	return "min"
}

// NextInterval is what a grade would schedule, as shown on the answer buttons.
type NextInterval struct {
	Value int
	Unit  IntervalUnit
	// Approximate marks learning-step hints shown as "<N min".
	Approximate bool
}

func (n NextInterval) String() string {
	if n.Unit == UnitDay {
		if n.Value == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", n.Value)
	}
	if n.Value < 1 {
		return "<1 min"
	}
	if n.Approximate {
		return fmt.Sprintf("<%d min", n.Value)
	}
	return fmt.Sprintf("%d min", n.Value)
}

// Preview maps each grade to its next interval.
type Preview map[Grade]NextInterval

// PreviewIntervals reports what each grade would do to card without changing it.
//
// Learning hints are fixed values. Review-phase Again always shows 10 minutes
// while ProcessReview schedules the first relearning step.
func (s *Scheduler) PreviewIntervals(card Card, now time.Time) Preview {
	if card.Queue == QueueNew || card.Queue.IsLearning() {
		preview := Preview{
			GradeAgain: {Value: 0, Unit: UnitMinute, Approximate: true},
			GradeEasy:  {Value: 2, Unit: UnitDay},
		}
		if card.StepsLeft == s.config.stepCount() {
			preview[GradeHard] = NextInterval{Value: 6, Unit: UnitMinute, Approximate: true}
			preview[GradeGood] = NextInterval{Value: 10, Unit: UnitMinute, Approximate: true}
		} else {
			preview[GradeHard] = NextInterval{Value: 10, Unit: UnitMinute, Approximate: true}
			preview[GradeGood] = NextInterval{Value: 1, Unit: UnitDay}
		}
		return preview
	}

	preview := Preview{
		GradeAgain: {Value: 10, Unit: UnitMinute},
	}
	for _, grade := range []Grade{GradeHard, GradeGood, GradeEasy} {
		interval, err := s.config.reviewInterval(card, grade, now)
		if err != nil {
			// unreachable: only Again is rejected by the formula
			continue
		}
		preview[grade] = NextInterval{Value: interval, Unit: UnitDay}
	}
	return preview
}
