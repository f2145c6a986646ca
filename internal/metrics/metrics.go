// Package metrics holds the tournament's Prometheus collectors, exposed on
// the dashboard's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "battlefleet_matches_completed_total",
		Help: "Matches run to a terminal state.",
	})

	Attacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "battlefleet_attacks_total",
		Help: "Resolved attacks across all matches, by result.",
	}, []string{"result"})

	RoundsFinished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "battlefleet_rounds_finished_total",
		Help: "Tournament rounds frozen into a leaderboard.",
	})
)
