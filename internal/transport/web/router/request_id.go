package router

import (
	"net/http"

	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions. A caller
// supplied ID is kept, otherwise a new UUID is generated.
const RequestIDHeader = "X-Request-ID"

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := domain.ContextWithRequestID(r.Context(), requestID)
		logger := domain.LoggerFromContext(ctx).With("request_id", requestID)
		ctx = domain.ContextWithLogger(ctx, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
