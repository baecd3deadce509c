package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/bsecades/comment-rating/internal/command"
	cmdmocks "github.com/bsecades/comment-rating/internal/command/mocks"
	"github.com/bsecades/comment-rating/internal/datasources/mocks"
	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/bsecades/comment-rating/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directory struct {
	*mocks.MockCommentFetcher
	*mocks.MockUserFetcher
}

type testRouter struct {
	handler  http.Handler
	comments *mocks.MockCommentFetcher
	users    *mocks.MockUserFetcher
	totals   *mocks.MockTotalRatingGetter
	saveCmd  *cmdmocks.MockCommand[command.SaveRatingRequest, *domain.Rating]
}

func newTestRouter(t *testing.T) testRouter {
	tr := testRouter{
		comments: mocks.NewMockCommentFetcher(t),
		users:    mocks.NewMockUserFetcher(t),
		totals:   mocks.NewMockTotalRatingGetter(t),
		saveCmd:  cmdmocks.NewMockCommand[command.SaveRatingRequest, *domain.Rating](t),
	}

	handler, err := MakeRouter(directory{tr.comments, tr.users}, tr.totals, tr.saveCmd)
	require.NoError(t, err)
	tr.handler = handler

	return tr
}

func TestMakeRouter_GetRating(t *testing.T) {
	tr := newTestRouter(t)
	tr.comments.EXPECT().
		FetchComment(mock.Anything, int64(156)).
		Return(domain.Comment{ID: 156, UserID: 10}, nil)
	tr.totals.EXPECT().
		GetTotalRating(mock.Anything, int64(156)).
		Return(3, nil)

	route := "/comment/{comment_id:[0-9]+}/rating"
	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, route, "200"))

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comment/156/rating", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3\n", rec.Body.String())
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, route, "200"))
	assert.Equal(t, before+1, after)
}

func TestMakeRouter_PostRating(t *testing.T) {
	tr := newTestRouter(t)

	comment := domain.Comment{ID: 156, UserID: 10}
	user := domain.User{ID: 278}
	rating := domain.NewRating(156)
	rating.AddVote(domain.NewVote(278, domain.VoteActionDown))

	tr.comments.EXPECT().FetchComment(mock.Anything, int64(156)).Return(comment, nil)
	tr.users.EXPECT().FetchUser(mock.Anything, int64(278)).Return(user, nil)
	tr.saveCmd.EXPECT().
		Execute(mock.Anything, command.SaveRatingRequest{Comment: comment, User: user, Score: -1}).
		Run(func(ctx context.Context, _ command.SaveRatingRequest) {
			assert.Equal(t, "client-id-1", domain.RequestIDFromContext(ctx))
		}).
		Return(rating, nil)

	req := httptest.NewRequest(http.MethodPost, "/comment/156/rating", strings.NewReader(`{"userId":278,"score":-1}`))
	req.Header.Set(RequestIDHeader, "client-id-1")
	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-id-1", rec.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"commentId":156,"votes":[{"userId":278,"score":-1}],"totalScore":-1}`, rec.Body.String())
}

func TestMakeRouter_Unrouted(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "non_numeric_id", method: http.MethodGet, path: "/comment/abc/rating", status: http.StatusNotFound},
		{name: "unknown_path", method: http.MethodGet, path: "/comments", status: http.StatusNotFound},
		{name: "wrong_method", method: http.MethodDelete, path: "/comment/156/rating", status: http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestRouter(t)

			status := strconv.Itoa(tc.status)
			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(tc.method, unmatchedRoute, status))

			rec := httptest.NewRecorder()
			tr.handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

			after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(tc.method, unmatchedRoute, status))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestMakeRouter_Preflight(t *testing.T) {
	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/comment/156/rating", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestMakeRouter_Metrics(t *testing.T) {
	tr := newTestRouter(t)
	metrics.IncVote(metrics.VoteAccepted)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "comment_rating_votes_total")
}
