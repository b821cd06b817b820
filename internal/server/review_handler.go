// Package server provides Connect RPC handlers for the review service.
package server

import (
	"context"

	"connectrpc.com/connect"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/api/v1/apiv1connect"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

// Scheduler is the part of srs.Scheduler the review service drives.
type Scheduler interface {
	StartLearning(ctx context.Context, collectionID int64) ([]srs.DueCard, error)
	GradeCard(ctx context.Context, cardID int64, grade srs.Grade) (*srs.Card, error)
	CollectionStats(ctx context.Context, collectionID int64) (srs.Stats, error)
}

// DeckService manages collections and cards.
type DeckService interface {
	CreateCollection(ctx context.Context, name string) (*srs.Collection, error)
	RenameCollection(ctx context.Context, collectionID int64, name string) (*srs.Collection, error)
	DeleteCollection(ctx context.Context, collectionID int64) error
	AddCard(ctx context.Context, collectionID int64, text string) (*srs.Card, error)
	Card(ctx context.Context, cardID int64) (*srs.Card, error)
}

// ReviewHandler implements the ReviewServiceHandler interface.
type ReviewHandler struct {
	apiv1connect.UnimplementedReviewServiceHandler

	scheduler Scheduler
	decks     DeckService
	cardLocks *keyedMutex
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(scheduler Scheduler, decks DeckService) *ReviewHandler {
	return &ReviewHandler{
		scheduler: scheduler,
		decks:     decks,
		cardLocks: newKeyedMutex(),
	}
}

// StartLearning returns the due cards of a collection with their answer previews.
func (h *ReviewHandler) StartLearning(
	ctx context.Context,
	req *connect.Request[apiv1.StartLearningRequest],
) (*connect.Response[apiv1.StartLearningResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	dueCards, err := h.scheduler.StartLearning(ctx, req.Msg.GetCollectionId())
	if err != nil {
		return nil, toConnectError("StartLearning", err)
	}

	cards := make([]*apiv1.DueCard, 0, len(dueCards))
	for _, dueCard := range dueCards {
		cards = append(cards, apiv1.FromDueCard(dueCard))
	}
	return connect.NewResponse(&apiv1.StartLearningResponse{
		Cards: cards,
	}), nil
}

// ReviewCard grades a card. Reviews of the same card are applied one at a time.
func (h *ReviewHandler) ReviewCard(
	ctx context.Context,
	req *connect.Request[apiv1.ReviewCardRequest],
) (*connect.Response[apiv1.ReviewCardResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	grade, err := apiv1.FromGrade(req.Msg.GetGrade())
	if err != nil {
		return nil, toConnectError("ReviewCard", err)
	}

	unlock := h.cardLocks.lock(req.Msg.GetCardId())
	defer unlock()

	card, err := h.scheduler.GradeCard(ctx, req.Msg.GetCardId(), grade)
	if err != nil {
		return nil, toConnectError("ReviewCard", err)
	}
	return connect.NewResponse(&apiv1.ReviewCardResponse{
		Card: apiv1.FromCard(*card),
	}), nil
}

// GetCollectionStats counts the cards of a collection by queue.
func (h *ReviewHandler) GetCollectionStats(
	ctx context.Context,
	req *connect.Request[apiv1.GetCollectionStatsRequest],
) (*connect.Response[apiv1.GetCollectionStatsResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	stats, err := h.scheduler.CollectionStats(ctx, req.Msg.GetCollectionId())
	if err != nil {
		return nil, toConnectError("GetCollectionStats", err)
	}
	return connect.NewResponse(apiv1.FromStats(stats)), nil
}

func (h *ReviewHandler) CreateCollection(
	ctx context.Context,
	req *connect.Request[apiv1.CreateCollectionRequest],
) (*connect.Response[apiv1.CreateCollectionResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	collection, err := h.decks.CreateCollection(ctx, req.Msg.GetName())
	if err != nil {
		return nil, toConnectError("CreateCollection", err)
	}
	return connect.NewResponse(&apiv1.CreateCollectionResponse{
		Collection: apiv1.FromCollection(*collection),
	}), nil
}

func (h *ReviewHandler) RenameCollection(
	ctx context.Context,
	req *connect.Request[apiv1.RenameCollectionRequest],
) (*connect.Response[apiv1.RenameCollectionResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	collection, err := h.decks.RenameCollection(ctx, req.Msg.GetCollectionId(), req.Msg.GetName())
	if err != nil {
		return nil, toConnectError("RenameCollection", err)
	}
	return connect.NewResponse(&apiv1.RenameCollectionResponse{
		Collection: apiv1.FromCollection(*collection),
	}), nil
}

// DeleteCollection removes a collection together with its cards and review logs.
func (h *ReviewHandler) DeleteCollection(
	ctx context.Context,
	req *connect.Request[apiv1.DeleteCollectionRequest],
) (*connect.Response[apiv1.DeleteCollectionResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := h.decks.DeleteCollection(ctx, req.Msg.GetCollectionId()); err != nil {
		return nil, toConnectError("DeleteCollection", err)
	}
	return connect.NewResponse(&apiv1.DeleteCollectionResponse{}), nil
}

func (h *ReviewHandler) CreateCard(
	ctx context.Context,
	req *connect.Request[apiv1.CreateCardRequest],
) (*connect.Response[apiv1.CreateCardResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	card, err := h.decks.AddCard(ctx, req.Msg.GetCollectionId(), req.Msg.GetText())
	if err != nil {
		return nil, toConnectError("CreateCard", err)
	}
	return connect.NewResponse(&apiv1.CreateCardResponse{
		Card: apiv1.FromCard(*card),
	}), nil
}

func (h *ReviewHandler) GetCard(
	ctx context.Context,
	req *connect.Request[apiv1.GetCardRequest],
) (*connect.Response[apiv1.GetCardResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	card, err := h.decks.Card(ctx, req.Msg.GetCardId())
	if err != nil {
		return nil, toConnectError("GetCard", err)
	}
	return connect.NewResponse(&apiv1.GetCardResponse{
		Card: apiv1.FromCard(*card),
	}), nil
}
