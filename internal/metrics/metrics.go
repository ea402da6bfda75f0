package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)

// Business Metrics
var (
	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClaimsTotal,
			Help: HelpTextClaimsTotal,
		},
		[]string{LabelOutcome},
	)

	MatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchesTotal,
			Help: HelpTextMatchesTotal,
		},
	)

	TradesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesTotal,
			Help: HelpTextTradesTotal,
		},
	)

	ReconcileFlipsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReconcileFlipsTotal,
			Help: HelpTextReconcileFlipsTotal,
		},
		[]string{LabelDirection},
	)

	TitlesGrantedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTitlesGrantedTotal,
			Help: HelpTextTitlesGrantedTotal,
		},
		[]string{LabelTitle},
	)
)
