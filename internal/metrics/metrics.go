// Package metrics holds the Prometheus collectors of the rating service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "comment_rating"

// Vote outcomes.
const (
	VoteAccepted      = "accepted"
	VoteSelfVote      = "self_vote"
	VoteDuplicate     = "duplicate_vote"
	VoteInvalidAction = "invalid_action"
	VoteError         = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Votes submitted, by outcome",
		},
		[]string{"outcome"},
	)

	RatingTxConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "tx_conflicts_total",
			Help:      "Optimistic rating transactions aborted because the rating changed concurrently",
		},
	)
)

// ObserveRequest records a completed HTTP request.
func ObserveRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func IncVote(outcome string) {
	VotesTotal.WithLabelValues(outcome).Inc()
}
