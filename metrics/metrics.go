package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SearchesTotal     prometheus.Counter
	SearchResults     prometheus.Histogram
	BookingsCreated   prometheus.Counter
	BookingsCancelled prometheus.Counter
	BookingFare       prometheus.Histogram
	ChatMessages      *prometheus.CounterVec
	ErrorsCount       *prometheus.CounterVec
}

// Default is registered with the global prometheus registry and served on /metrics.
var Default = NewMetrics("train_booking")

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of train searches",
		}),
		SearchResults: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of trains left after filtering",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of confirmed bookings",
		}),
		BookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "The total number of cancelled bookings",
		}),
		BookingFare: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_fare_total",
			Help:      "Total fare of confirmed bookings",
			Buckets:   prometheus.ExponentialBuckets(250, 2, 10),
		}),
		ChatMessages: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_messages_total",
			Help:      "Assistant messages by how they were answered",
		}, []string{"route"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
