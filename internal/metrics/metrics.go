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
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Order Flow Metrics
var (
	PanelsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePanelsOpened,
			Help: HelpTextPanelsOpened,
		},
	)

	EstimatesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEstimatesComputed,
			Help: HelpTextEstimatesComputed,
		},
		[]string{LabelFlow},
	)

	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOrdersCreated,
			Help: HelpTextOrdersCreated,
		},
		[]string{LabelFlow},
	)

	QuotesRequested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuotesRequested,
			Help: HelpTextQuotesRequested,
		},
	)
)

// Ticket Metrics
var (
	TicketsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicketsOpened,
			Help: HelpTextTicketsOpened,
		},
	)

	TicketsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicketsClosed,
			Help: HelpTextTicketsClosed,
		},
	)

	TicketsReopened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicketsReopened,
			Help: HelpTextTicketsReopened,
		},
	)

	TicketsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicketsDeleted,
			Help: HelpTextTicketsDeleted,
		},
	)

	TranscriptsDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTranscriptsDelivered,
			Help: HelpTextTranscriptsDelivered,
		},
	)

	UnauthorizedAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnauthorizedAttempts,
			Help: HelpTextUnauthorizedAttempts,
		},
		[]string{LabelAction},
	)

	PlatformErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlatformErrors,
			Help: HelpTextPlatformErrors,
		},
		[]string{LabelOperation},
	)
)
