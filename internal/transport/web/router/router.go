package router

import (
	"net/http"

	"github.com/bsecades/comment-rating/internal/command"
	"github.com/bsecades/comment-rating/internal/datasources"
	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/bsecades/comment-rating/internal/transport/web/controller"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const commentRatingPath = "/comment/{comment_id:[0-9]+}/rating"

func MakeRouter(
	directory datasources.DirectoryRepository,
	ratings datasources.TotalRatingGetter,
	saveRatingCmd command.Command[command.SaveRatingRequest, *domain.Rating],
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(metricsMiddleware)
	r.Use(corsMiddleware)
	r.NotFoundHandler = unmatchedHandler(http.StatusNotFound)
	r.MethodNotAllowedHandler = unmatchedHandler(http.StatusMethodNotAllowed)

	r.Handle(commentRatingPath, controller.CommentRatingGet{
		CommentFetcher:    directory,
		TotalRatingGetter: ratings,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle(commentRatingPath, controller.CommentRatingCreate{
		CommentFetcher: directory,
		UserFetcher:    directory,
		SaveRatingCmd:  saveRatingCmd,
	}).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
