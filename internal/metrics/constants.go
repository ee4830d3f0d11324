package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePanelsOpened         = "panels_opened_total"
	MetricNameEstimatesComputed    = "estimates_computed_total"
	MetricNameOrdersCreated        = "orders_created_total"
	MetricNameQuotesRequested      = "quotes_requested_total"
	MetricNameTicketsOpened        = "tickets_opened_total"
	MetricNameTicketsClosed        = "tickets_closed_total"
	MetricNameTicketsReopened      = "tickets_reopened_total"
	MetricNameTicketsDeleted       = "tickets_deleted_total"
	MetricNameTranscriptsDelivered = "transcripts_delivered_total"
	MetricNameUnauthorizedAttempts = "unauthorized_attempts_total"
	MetricNamePlatformErrors       = "platform_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPanelsOpened         = "Total number of service panels opened"
	HelpTextEstimatesComputed    = "Total number of price estimates computed"
	HelpTextOrdersCreated        = "Total number of orders created"
	HelpTextQuotesRequested      = "Total number of manual quote requests"
	HelpTextTicketsOpened        = "Total number of tickets opened"
	HelpTextTicketsClosed        = "Total number of tickets closed"
	HelpTextTicketsReopened      = "Total number of tickets reopened"
	HelpTextTicketsDeleted       = "Total number of tickets deleted"
	HelpTextTranscriptsDelivered = "Total number of transcripts delivered"
	HelpTextUnauthorizedAttempts = "Total number of rejected ticket actions"
	HelpTextPlatformErrors       = "Total number of failed chat platform operations"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelFlow      = "flow"
	LabelAction    = "action"
	LabelOperation = "operation"
)

// HTTPLatencyBuckets covers the sidecar's expected latency range.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
