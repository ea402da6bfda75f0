package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal   = "http_requests_total"
	MetricNameHTTPRequestDuration = "http_request_duration_seconds"

	MetricNameClaimsTotal         = "weekly_claims_total"
	MetricNameMatchesTotal        = "matches_recorded_total"
	MetricNameTradesTotal         = "trades_total"
	MetricNameReconcileFlipsTotal = "reconcile_flips_total"
	MetricNameTitlesGrantedTotal  = "titles_granted_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal   = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration = "HTTP request latency in seconds"

	HelpTextClaimsTotal         = "Total number of weekly reward claims by outcome"
	HelpTextMatchesTotal        = "Total number of recorded arena matches"
	HelpTextTradesTotal         = "Total number of item trades"
	HelpTextReconcileFlipsTotal = "Total number of gate flips applied by the reconciler"
	HelpTextTitlesGrantedTotal  = "Total number of titles granted"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOutcome   = "outcome"
	LabelDirection = "direction"
	LabelTitle     = "title"
)

// Reconcile flip directions
const (
	DirectionOpened = "opened"
	DirectionClosed = "closed"
)
