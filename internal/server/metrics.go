package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	MatchesStarted   prometheus.Counter
	MatchesCompleted *prometheus.CounterVec
	RoundsResolved   *prometheus.CounterVec
	RoundsWasted     prometheus.Counter
	InvalidMoves     prometheus.Counter
	SessionsExpired  prometheus.Counter
	ActiveSessions   prometheus.Gauge
}

// NewMetrics registers all collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		MatchesStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpsplus_matches_started_total",
			Help: "Matches started, including resets.",
		}),
		MatchesCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rpsplus_matches_completed_total",
			Help: "Matches played to the round limit, by final result.",
		}, []string{"result"}),
		RoundsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rpsplus_rounds_resolved_total",
			Help: "Rounds resolved, by winner.",
		}, []string{"winner"}),
		RoundsWasted: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpsplus_rounds_wasted_total",
			Help: "Rounds forfeited to invalid input.",
		}),
		InvalidMoves: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpsplus_invalid_moves_total",
			Help: "Submissions rejected by validation.",
		}),
		SessionsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "rpsplus_sessions_expired_total",
			Help: "Sessions evicted for idleness.",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rpsplus_active_sessions",
			Help: "Sessions currently held by the service.",
		}),
	}
}
