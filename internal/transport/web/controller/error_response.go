package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bsecades/comment-rating/internal/domain"
)

// ErrorCode classifies an ErrorResponse for API callers.
type ErrorCode int

const (
	ErrorCodeResourceNotExist ErrorCode = iota + 1
	ErrorCodeCommentNotExist
	ErrorCodeUserNotExist
	ErrorCodeInvalidParameters
	ErrorCodeInvalidVote
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeResourceNotExist:
		return "RESOURCE_NOT_EXIST"
	case ErrorCodeCommentNotExist:
		return "COMMENT_NOT_EXIST"
	case ErrorCodeUserNotExist:
		return "USER_NOT_EXIST"
	case ErrorCodeInvalidParameters:
		return "INVALID_PARAMETERS"
	case ErrorCodeInvalidVote:
		return "INVALID_VOTE"
	default:
		return "UNKNOWN"
	}
}

// ErrorResponse is the JSON body of every 4xx response.
type ErrorResponse struct {
	Errors      []string  `json:"errors"`
	ErrorCode   ErrorCode `json:"errorCode"`
	TotalErrors int       `json:"totalErrors"`
}

func NewErrorResponse(code ErrorCode, errs ...string) ErrorResponse {
	if errs == nil {
		errs = []string{}
	}
	return ErrorResponse{
		Errors:      errs,
		ErrorCode:   code,
		TotalErrors: len(errs),
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, code ErrorCode, errs ...string) {
	writeJSON(ctx, w, status, NewErrorResponse(code, errs...))
}
