package server

import (
	"context"
	"errors"
	"log/slog"

	"buf.build/go/protovalidate"
	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/proto"

	"github.com/at-ishikawa/flashcards/internal/deck"
	"github.com/at-ishikawa/flashcards/internal/srs"
)

// toConnectError maps domain errors to connect codes. Unexpected errors are
// logged and reported as internal.
func toConnectError(procedure string, err error) *connect.Error {
	var code connect.Code
	switch {
	case errors.Is(err, srs.ErrCardNotFound), errors.Is(err, srs.ErrCollectionNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, srs.ErrInvalidGrade), errors.Is(err, deck.ErrEmptyName), errors.Is(err, deck.ErrEmptyText):
		code = connect.CodeInvalidArgument
	case errors.Is(err, srs.ErrInvalidQueue):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, context.Canceled):
		code = connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		code = connect.CodeDeadlineExceeded
	default:
		slog.Default().Error("review service failed",
			"procedure", procedure,
			"error", err,
		)
		code = connect.CodeInternal
	}
	return connect.NewError(code, err)
}

func validateRequest(msg proto.Message) *connect.Error {
	if err := protovalidate.Validate(msg); err != nil {
		connectErr := connect.NewError(connect.CodeInvalidArgument, err)
		var valErr *protovalidate.ValidationError
		if errors.As(err, &valErr) {
			var fieldViolations []*errdetails.BadRequest_FieldViolation
			for _, v := range valErr.Violations {
				fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
					Field:       protovalidate.FieldPathString(v.Proto.GetField()),
					Description: v.Proto.GetMessage(),
				})
			}
			if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
				FieldViolations: fieldViolations,
			}); detailErr == nil {
				connectErr.AddDetail(detail)
			}
		}
		return connectErr
	}
	return nil
}
