// Package srs implements the spaced-repetition scheduler that moves flashcards
// through the New, Learning, Review and Relearning queues.
package srs

// Config holds the scheduling constants. It is loaded once and never mutated.
type Config struct {
	// HardFactor multiplies the previous interval on a Hard answer.
	HardFactor float64
	// EasyBonus multiplies both the Easy interval and the ease factor.
	EasyBonus   float64
	MinInterval int
	MaxInterval int
	// Factors are expressed in permille: 2500 means x2.5.
	InitialFactor      int
	MinFactor          int
	HardFactorDecrease int
	// EasyGraduatingInterval is the interval in days granted when Easy graduates a card.
	EasyGraduatingInterval int
	InitialSteps           int
	LearningStepsMinutes   []int
}

const (
	DefaultHardFactor             = 1.2
	DefaultEasyBonus              = 1.3
	DefaultMinInterval            = 1
	DefaultMaxInterval            = 365
	DefaultInitialFactor          = 2500
	DefaultMinFactor              = 1300
	DefaultHardFactorDecrease     = 150
	DefaultEasyGraduatingInterval = 4
	DefaultInitialSteps           = 2
)

// DefaultLearningStepsMinutes returns the learning steps used when nothing is configured.
func DefaultLearningStepsMinutes() []int {
	return []int{1, 10}
}

// DefaultConfig returns the Anki-like defaults.
func DefaultConfig() Config {
	return Config{
		HardFactor:             DefaultHardFactor,
		EasyBonus:              DefaultEasyBonus,
		MinInterval:            DefaultMinInterval,
		MaxInterval:            DefaultMaxInterval,
		InitialFactor:          DefaultInitialFactor,
		MinFactor:              DefaultMinFactor,
		HardFactorDecrease:     DefaultHardFactorDecrease,
		EasyGraduatingInterval: DefaultEasyGraduatingInterval,
		InitialSteps:           DefaultInitialSteps,
		LearningStepsMinutes:   DefaultLearningStepsMinutes(),
	}
}

func (c Config) stepCount() int {
	return len(c.LearningStepsMinutes)
}

// stepSeconds returns the length of the learning step at idx in seconds.
func (c Config) stepSeconds(idx int) int64 {
	return int64(c.LearningStepsMinutes[idx]) * 60
}
