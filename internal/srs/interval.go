package srs

import (
	"fmt"
	"math"
	"time"
)

// DelayDays returns how many days a review card is overdue at now.
// Early reviews give a negative delay, which is passed to the interval
// formulas as is.
func DelayDays(card Card, now time.Time) int {
	return DaysBetween(card.CreatedAt, now) - int(card.Due)
}

// NextReviewInterval computes the unclamped next interval in days for a
// review card. Again is a queue transition and never reaches this formula.
func (c Config) NextReviewInterval(prevInterval int, grade Grade, delayDays int, factorPermille int) (int, error) {
	ease := float64(factorPermille) / 1000
	switch grade {
	case GradeHard:
		return int(math.Floor(float64(prevInterval) * c.HardFactor)), nil
	case GradeGood:
		return int(math.Floor((float64(prevInterval) + float64(delayDays)/2) * ease)), nil
	case GradeEasy:
		return int(math.Floor((float64(prevInterval) + float64(delayDays)) * ease * c.EasyBonus)), nil
	default:
		return 0, fmt.Errorf("%w: %s has no review interval", ErrInvalidGrade, grade)
	}
}

// ClampInterval bounds x to [MinInterval, MaxInterval].
func (c Config) ClampInterval(x int) int {
	if x < c.MinInterval {
		return c.MinInterval
	}
	if x > c.MaxInterval {
		return c.MaxInterval
	}
	return x
}

// reviewInterval runs the formula and clamping used by both review grading
// and the preview.
func (c Config) reviewInterval(card Card, grade Grade, now time.Time) (int, error) {
	raw, err := c.NextReviewInterval(card.Interval, grade, DelayDays(card, now), card.Factor)
	if err != nil {
		return 0, err
	}
	return c.ClampInterval(raw), nil
}
