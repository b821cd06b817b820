// Package client calls a remote review service over the Connect protocol with JSON.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/avast/retry-go"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"resty.dev/v3"

	apiv1 "github.com/at-ishikawa/flashcards/internal/api/v1"
	"github.com/at-ishikawa/flashcards/internal/api/v1/apiv1connect"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

const DefaultMaxRetryAttempts uint = 2

// Responses from a newer server may carry fields this client does not know.
var unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}

// Error is the Connect error envelope returned by the review service.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the Connect error code of err, or "" when err did not come from the service.
func CodeOf(err error) string {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Code
	}
	return ""
}

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// New creates a client for the service at baseURL.
func New(baseURL string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Connect-Protocol-Version", "1")
	client.SetTimeout(30 * time.Second)

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// StartLearning is retried on network failures. Starting a session twice is harmless
// because cards leave the new queue on the first call.
func (client *Client) StartLearning(ctx context.Context, collectionID int64) (*apiv1.StartLearningResponse, error) {
	var result apiv1.StartLearningResponse
	if err := client.withRetry(ctx, func() error {
		return client.call(ctx, apiv1connect.ReviewServiceStartLearningProcedure,
			&apiv1.StartLearningRequest{CollectionId: collectionID}, &result)
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReviewCard is never retried so that a grade is not applied twice.
func (client *Client) ReviewCard(ctx context.Context, cardID int64, grade srs.Grade) (*apiv1.Card, error) {
	var result apiv1.ReviewCardResponse
	if err := client.call(ctx, apiv1connect.ReviewServiceReviewCardProcedure,
		&apiv1.ReviewCardRequest{CardId: cardID, Grade: apiv1.ToGrade(grade)}, &result); err != nil {
		return nil, err
	}
	return result.GetCard(), nil
}

func (client *Client) GetCollectionStats(ctx context.Context, collectionID int64) (*apiv1.GetCollectionStatsResponse, error) {
	var result apiv1.GetCollectionStatsResponse
	if err := client.withRetry(ctx, func() error {
		return client.call(ctx, apiv1connect.ReviewServiceGetCollectionStatsProcedure,
			&apiv1.GetCollectionStatsRequest{CollectionId: collectionID}, &result)
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

func (client *Client) CreateCollection(ctx context.Context, name string) (*apiv1.Collection, error) {
	var result apiv1.CreateCollectionResponse
	if err := client.call(ctx, apiv1connect.ReviewServiceCreateCollectionProcedure,
		&apiv1.CreateCollectionRequest{Name: name}, &result); err != nil {
		return nil, err
	}
	return result.GetCollection(), nil
}

// RenameCollection is retried because renaming to the same name twice has one effect.
func (client *Client) RenameCollection(ctx context.Context, collectionID int64, name string) (*apiv1.Collection, error) {
	var result apiv1.RenameCollectionResponse
	if err := client.withRetry(ctx, func() error {
		return client.call(ctx, apiv1connect.ReviewServiceRenameCollectionProcedure,
			&apiv1.RenameCollectionRequest{CollectionId: collectionID, Name: name}, &result)
	}); err != nil {
		return nil, err
	}
	return result.GetCollection(), nil
}

// DeleteCollection is not retried: a retry after a lost response would report not_found.
func (client *Client) DeleteCollection(ctx context.Context, collectionID int64) error {
	var result apiv1.DeleteCollectionResponse
	return client.call(ctx, apiv1connect.ReviewServiceDeleteCollectionProcedure,
		&apiv1.DeleteCollectionRequest{CollectionId: collectionID}, &result)
}

func (client *Client) CreateCard(ctx context.Context, collectionID int64, text string) (*apiv1.Card, error) {
	var result apiv1.CreateCardResponse
	if err := client.call(ctx, apiv1connect.ReviewServiceCreateCardProcedure,
		&apiv1.CreateCardRequest{CollectionId: collectionID, Text: text}, &result); err != nil {
		return nil, err
	}
	return result.GetCard(), nil
}

func (client *Client) GetCard(ctx context.Context, cardID int64) (*apiv1.Card, error) {
	var result apiv1.GetCardResponse
	if err := client.withRetry(ctx, func() error {
		return client.call(ctx, apiv1connect.ReviewServiceGetCardProcedure,
			&apiv1.GetCardRequest{CardId: cardID}, &result)
	}); err != nil {
		return nil, err
	}
	return result.GetCard(), nil
}

// call posts request as protobuf JSON, the Connect unary encoding for application/json.
func (client *Client) call(ctx context.Context, procedure string, request, result proto.Message) error {
	body, err := protojson.Marshal(request)
	if err != nil {
		return fmt.Errorf("protojson.Marshal(%s) > %w", procedure, err)
	}
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(procedure)
	if err != nil {
		return fmt.Errorf("httpClient.Post(%s) > %w", procedure, err)
	}
	if response.IsError() {
		serviceErr := Error{StatusCode: response.StatusCode()}
		if err := json.Unmarshal([]byte(response.String()), &serviceErr); err != nil || serviceErr.Code == "" {
			serviceErr.Code = "unknown"
			serviceErr.Message = fmt.Sprintf("response error %d: %s", response.StatusCode(), response.String())
		}
		return &serviceErr
	}
	if err := unmarshalOptions.Unmarshal([]byte(response.String()), result); err != nil {
		return fmt.Errorf("protojson.Unmarshal(%s) > %w", procedure, err)
	}
	return nil
}

func (client *Client) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

func isRetryableError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return CodeOf(err) == "unavailable"
}
