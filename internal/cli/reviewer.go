package cli

import (
	"context"
	"fmt"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/client"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

// Scheduler is the part of srs.Scheduler a local review session drives.
type Scheduler interface {
	StartLearning(ctx context.Context, collectionID int64) ([]srs.DueCard, error)
	GradeCard(ctx context.Context, cardID int64, grade srs.Grade) (*srs.Card, error)
}

// LocalReviewer reviews cards against the local database.
type LocalReviewer struct {
	scheduler Scheduler
}

func NewLocalReviewer(scheduler Scheduler) *LocalReviewer {
	return &LocalReviewer{scheduler: scheduler}
}

func (r *LocalReviewer) StartLearning(ctx context.Context, collectionID int64) ([]*apiv1.DueCard, error) {
	dueCards, err := r.scheduler.StartLearning(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("scheduler.StartLearning(%d) > %w", collectionID, err)
	}
	result := make([]*apiv1.DueCard, 0, len(dueCards))
	for _, dueCard := range dueCards {
		result = append(result, apiv1.FromDueCard(dueCard))
	}
	return result, nil
}

func (r *LocalReviewer) ReviewCard(ctx context.Context, cardID int64, grade srs.Grade) (*apiv1.Card, error) {
	card, err := r.scheduler.GradeCard(ctx, cardID, grade)
	if err != nil {
		return nil, fmt.Errorf("scheduler.GradeCard(%d) > %w", cardID, err)
	}
	return apiv1.FromCard(*card), nil
}

// RemoteReviewer reviews cards through a review server.
type RemoteReviewer struct {
	client *client.Client
}

func NewRemoteReviewer(client *client.Client) *RemoteReviewer {
	return &RemoteReviewer{client: client}
}

func (r *RemoteReviewer) StartLearning(ctx context.Context, collectionID int64) ([]*apiv1.DueCard, error) {
	response, err := r.client.StartLearning(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("client.StartLearning(%d) > %w", collectionID, err)
	}
	return response.GetCards(), nil
}

func (r *RemoteReviewer) ReviewCard(ctx context.Context, cardID int64, grade srs.Grade) (*apiv1.Card, error) {
	card, err := r.client.ReviewCard(ctx, cardID, grade)
	if err != nil {
		return nil, fmt.Errorf("client.ReviewCard(%d) > %w", cardID, err)
	}
	return card, nil
}
