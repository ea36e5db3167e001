// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for the order lifecycle, dispatch and notification pipeline
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "code"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	OrderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Total number of committed order status transitions",
		},
		[]string{"from", "to"},
	)

	CourierAssignmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courier_assignments_total",
			Help: "Total number of courier assignment attempts by outcome",
		},
		[]string{"outcome"},
	)

	DispatchCouriersNotifiedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_couriers_notified_total",
			Help: "Total number of couriers reached by ready order broadcasts",
		},
	)

	DispatchCouriersFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_couriers_failed_total",
			Help: "Total number of courier notifications that failed or timed out",
		},
	)

	NotificationJobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_jobs_total",
			Help: "Total number of processed notification jobs by outcome",
		},
		[]string{"outcome"},
	)

	NotificationChannelResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_channel_results_total",
			Help: "Total number of channel delivery attempts by channel and result",
		},
		[]string{"channel", "result"},
	)

	NotificationProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notification_processing_duration_seconds",
			Help:    "Duration of notification job processing",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Assignment outcomes.
const (
	AssignmentAssigned = "assigned"
	AssignmentRejected = "rejected"
	AssignmentLostRace = "lost_race"
)

// Register registers all Prometheus metrics
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		OrderTransitionsTotal,
		CourierAssignmentsTotal,
		DispatchCouriersNotifiedTotal,
		DispatchCouriersFailedTotal,
		NotificationJobsTotal,
		NotificationChannelResultsTotal,
		NotificationProcessingDuration,
	)
}
