package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Results of a challenge request.
const (
	ResultOK         = "ok"
	ResultBadRequest = "bad_request"
	ResultTimeout    = "timeout"
	ResultCanceled   = "canceled"
	ResultError      = "error"
)

var (
	// Challenges counts challenge requests by result.
	Challenges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fsxchallenge",
		Name:      "challenges_total",
		Help:      "Challenge requests by result.",
	}, []string{"result"})

	// BuildSeconds observes the time spent placing stations.
	BuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fsxchallenge",
		Name:      "build_seconds",
		Help:      "Time spent generating a challenge.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	// RejectedDraws counts draws discarded for violating the minimum gap.
	RejectedDraws = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fsxchallenge",
		Name:      "rejected_draws_total",
		Help:      "Placement draws discarded for being too close to the previous station.",
	})
)

// ObserveBuild records a finished challenge build.
func ObserveBuild(start time.Time, rejected uint64, result string) {
	BuildSeconds.Observe(time.Since(start).Seconds())
	RejectedDraws.Add(float64(rejected))
	Challenges.WithLabelValues(result).Inc()
}
