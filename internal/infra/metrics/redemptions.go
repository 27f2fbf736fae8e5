package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	redemptionAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redeem_attempts_total",
			Help: "Redemption attempts by terminal outcome.",
		},
		[]string{"outcome"},
	)

	creditsGranted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redeem_credits_granted_total",
			Help: "Total analysis credits granted through redemptions.",
		},
	)

	analysesStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyses_started_total",
			Help: "Count of started pseudo-analyses.",
		},
	)
)

func init() {
	register(redemptionAttempts, creditsGranted, analysesStarted)
}

func ObserveRedemption(outcome string) {
	redemptionAttempts.WithLabelValues(outcome).Inc()
}

func ObserveCreditsGranted(grant int32) {
	creditsGranted.Add(float64(grant))
}

func ObserveAnalysisStarted() {
	analysesStarted.Inc()
}
