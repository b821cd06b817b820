package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/timestamppb"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
)

func TestFormatNextReview(t *testing.T) {
	one, three := int32(1), int32(3)
	tests := []struct {
		name string
		card *apiv1.Card
		want string
	}{
		{
			name: "learning card",
			card: &apiv1.Card{Queue: "learning", DueAt: timestamppb.New(dueAt)},
			want: "due at 2025-01-01 08:01 UTC",
		},
		{
			name: "review card due tomorrow",
			card: &apiv1.Card{Queue: "review", Interval: 1, DueDay: &one},
			want: "due in 1 day",
		},
		{
			name: "review card",
			card: &apiv1.Card{Queue: "review", Interval: 3, DueDay: &three},
			want: "due in 3 days",
		},
		{
			name: "new card",
			card: &apiv1.Card{Queue: "new"},
			want: "not scheduled yet",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNextReview(tt.card))
		})
	}
}

func TestFormatGradeOptions(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t,
		"1) again <1 min  2) hard  3) good 1 day  4) easy 4 days",
		FormatGradeOptions(map[string]string{"again": "<1 min", "good": "1 day", "easy": "4 days"}),
	)
}

func TestWriteTables(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("stats", func(t *testing.T) {
		var buf bytes.Buffer
		WriteStats(&buf, &apiv1.GetCollectionStatsResponse{Total: 5, New: 1, Learning: 2, Review: 2, DueReview: 1})
		assert.Equal(t, "TOTAL  NEW  LEARNING  REVIEW  DUE REVIEW\n5      1    2         2       1\n", buf.String())
	})

	t.Run("collections", func(t *testing.T) {
		var buf bytes.Buffer
		WriteCollections(&buf, []*apiv1.Collection{{Id: 1, Name: "verbs", CreatedAt: timestamppb.New(created)}})
		assert.Equal(t, "ID  NAME   CREATED\n1   verbs  2025-01-01 00:00 UTC\n", buf.String())
	})

	t.Run("cards", func(t *testing.T) {
		var buf bytes.Buffer
		WriteCards(&buf, []*apiv1.Card{{Id: 2, Queue: "new", Factor: 2500, Text: "comer"}})
		assert.Equal(t,
			"ID  QUEUE  INTERVAL  FACTOR  REPS  LAPSES  NEXT               TEXT\n"+
				"2   new    0         2500    0     0       not scheduled yet  comer\n",
			buf.String())
	})
}

func TestWriteCard(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	dueDay := int32(4)

	var buf bytes.Buffer
	WriteCard(&buf, &apiv1.Card{
		Id:           3,
		CollectionId: 1,
		Text:         "hablar",
		Type:         "review",
		Queue:        "review",
		DueDay:       &dueDay,
		Interval:     4,
		Factor:       2500,
		Reps:         2,
		CreatedAt:    timestamppb.New(created),
		UpdatedAt:    timestamppb.New(created.Add(time.Hour)),
	})
	assert.Equal(t, ""+
		"ID          3\n"+
		"COLLECTION  1\n"+
		"TEXT        hablar\n"+
		"TYPE        review\n"+
		"QUEUE       review\n"+
		"NEXT        due in 4 days\n"+
		"INTERVAL    4\n"+
		"FACTOR      2500\n"+
		"REPS        2\n"+
		"LAPSES      0\n"+
		"CREATED     2025-01-01 00:00 UTC\n"+
		"UPDATED     2025-01-01 01:00 UTC\n",
		buf.String())
}
