package controller

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/gorilla/mux"
)

func newTestRequest(method, commentID, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/comment/"+commentID+"/rating", reader)
	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
	req = req.WithContext(ctx)
	return mux.SetURLVars(req, map[string]string{"comment_id": commentID})
}
