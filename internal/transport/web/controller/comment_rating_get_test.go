package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bsecades/comment-rating/internal/datasources/mocks"
	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommentRatingGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		commentID     string
		fetchErr      error
		total         int
		totalErr      error
		skipFetch     bool
		skipTotal     bool
		wantStatus    int
		wantBody      string
		wantErrorCode ErrorCode
	}{
		{
			name:       "positive_total",
			commentID:  "156",
			total:      2,
			wantStatus: http.StatusOK,
			wantBody:   "2\n",
		},
		{
			name:       "negative_total",
			commentID:  "156",
			total:      -1,
			wantStatus: http.StatusOK,
			wantBody:   "-1\n",
		},
		{
			name:       "no_votes",
			commentID:  "156",
			total:      0,
			wantStatus: http.StatusOK,
			wantBody:   "0\n",
		},
		{
			name:          "unknown_comment",
			commentID:     "156",
			fetchErr:      domain.ErrCommentNotFound,
			skipTotal:     true,
			wantStatus:    http.StatusNotFound,
			wantErrorCode: ErrorCodeResourceNotExist,
		},
		{
			name:          "zero_comment_id",
			commentID:     "0",
			skipFetch:     true,
			skipTotal:     true,
			wantStatus:    http.StatusNotFound,
			wantErrorCode: ErrorCodeResourceNotExist,
		},
		{
			name:       "fetch_error",
			commentID:  "156",
			fetchErr:   errors.New("database error"),
			skipTotal:  true,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "storage_error",
			commentID:  "156",
			totalErr:   &domain.StorageError{Op: "load", Err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockCommentFetcher(t)
			totalGetter := mocks.NewMockTotalRatingGetter(t)

			if !tc.skipFetch {
				fetcher.EXPECT().
					FetchComment(mock.Anything, int64(156)).
					Return(domain.Comment{ID: 156, UserID: 10}, tc.fetchErr)
			}
			if !tc.skipTotal {
				totalGetter.EXPECT().
					GetTotalRating(mock.Anything, int64(156)).
					Return(tc.total, tc.totalErr)
			}

			controller := CommentRatingGet{
				CommentFetcher:    fetcher,
				TotalRatingGetter: totalGetter,
			}

			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, newTestRequest(http.MethodGet, tc.commentID, ""))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rec.Body.String())
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
			if tc.wantErrorCode != 0 {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantErrorCode, resp.ErrorCode)
				assert.Equal(t, []string{"Comment does not exist"}, resp.Errors)
				assert.Equal(t, 1, resp.TotalErrors)
			}
		})
	}
}
