package srs

import (
	"fmt"
	"strings"
	"time"
)

// Queue is the scheduling phase of a card. It decides how Card.Due is read.
type Queue int

const (
	QueueNew Queue = iota
	QueueLearning
	QueueReview
	QueueRelearning
)

func (q Queue) String() string {
	switch q {
	case QueueNew:
		return "new"
	case QueueLearning:
		return "learning"
	case QueueReview:
		return "review"
	case QueueRelearning:
		return "relearning"
	default:
		return fmt.Sprintf("queue(%d)", int(q))
	}
}

// IsLearning reports whether due values in this queue are epoch seconds.
func (q Queue) IsLearning() bool {
	return q == QueueLearning || q == QueueRelearning
}

// CardType mirrors Queue except that Learning and Relearning share CardTypeLearning.
type CardType int

const (
	CardTypeNew CardType = iota
	CardTypeLearning
	CardTypeReview
)

func (t CardType) String() string {
	switch t {
	case CardTypeNew:
		return "new"
	case CardTypeLearning:
		return "learning"
	case CardTypeReview:
		return "review"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Grade is the learner's answer to a card.
type Grade int

const (
	GradeAgain Grade = iota
	GradeHard
	GradeGood
	GradeEasy
)

// Grades lists every grade in button order.
var Grades = []Grade{GradeAgain, GradeHard, GradeGood, GradeEasy}

func (g Grade) String() string {
	switch g {
	case GradeAgain:
		return "again"
	case GradeHard:
		return "hard"
	case GradeGood:
		return "good"
	case GradeEasy:
		return "easy"
	default:
		return fmt.Sprintf("grade(%d)", int(g))
	}
}

// Valid reports whether g is one of the four known grades.
func (g Grade) Valid() bool {
	return g >= GradeAgain && g <= GradeEasy
}

// ParseGrade parses a grade name case-insensitively.
func ParseGrade(s string) (Grade, error) {
	for _, g := range Grades {
		if strings.EqualFold(strings.TrimSpace(s), g.String()) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
}

func (g Grade) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	return []byte(g.String()), nil
}

func (g *Grade) UnmarshalText(text []byte) error {
	parsed, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Card is a flashcard together with its scheduling state.
//
// Due holds two units. While Queue is Learning or Relearning it is a Unix
// timestamp in seconds; while Queue is Review it is a day offset counted from
// the creation date. It carries no meaning for new cards.
type Card struct {
	ID           int64     `db:"id"`
	CollectionID int64     `db:"collection_id"`
	Text         string    `db:"text"`
	Type         CardType  `db:"type"`
	Queue        Queue     `db:"queue"`
	Due          int64     `db:"due"`
	Interval     int       `db:"ivl"`
	Factor       int       `db:"factor"`
	Reps         int       `db:"reps"`
	Lapses       int       `db:"lapses"`
	StepsLeft    int       `db:"steps_left"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// NewCard returns a card in the New queue with the configured initial state.
func NewCard(collectionID int64, text string, createdAt time.Time, cfg Config) Card {
	return Card{
		CollectionID: collectionID,
		Text:         text,
		Type:         CardTypeNew,
		Queue:        QueueNew,
		Due:          0,
		Interval:     0,
		Factor:       cfg.InitialFactor,
		Reps:         0,
		Lapses:       0,
		StepsLeft:    cfg.InitialSteps,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

// DueAt returns the due instant of a learning or relearning card.
func (c Card) DueAt() (time.Time, bool) {
	if !c.Queue.IsLearning() {
		return time.Time{}, false
	}
	return time.Unix(c.Due, 0), true
}

// DueDay returns the due day offset of a review card.
func (c Card) DueDay() (int, bool) {
	if c.Queue != QueueReview {
		return 0, false
	}
	return int(c.Due), true
}

// Collection groups cards. Review due days of its cards are counted from CreatedAt.
type Collection struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ReviewLog records one committed answer.
type ReviewLog struct {
	ID            string    `db:"id"`
	CardID        int64     `db:"card_id"`
	Grade         Grade     `db:"grade"`
	PreviousQueue Queue     `db:"previous_queue"`
	Queue         Queue     `db:"queue"`
	Interval      int       `db:"ivl"`
	Factor        int       `db:"factor"`
	Due           int64     `db:"due"`
	ReviewedAt    time.Time `db:"reviewed_at"`
}
