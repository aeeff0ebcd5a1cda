package metrics

import (
	"strconv"

	"parking-system/internal/domain/parking"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parking"

type PrometheusRecorder struct {
	ticketsOpened *prometheus.CounterVec
	ticketsClosed *prometheus.CounterVec
	fareAmount    *prometheus.HistogramVec
	failures      *prometheus.CounterVec
}

func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		ticketsOpened: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_opened_total",
			Help:      "Tickets issued at vehicle entry.",
		}, []string{"type"}),
		ticketsClosed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_closed_total",
			Help:      "Tickets closed at vehicle exit.",
		}, []string{"type", "discounted"}),
		fareAmount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fare_amount",
			Help:      "Fares charged at exit.",
			Buckets:   []float64{0, 0.5, 1, 2, 4, 8, 16, 24},
		}, []string{"type"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Entry and exit operations that ended in an error.",
		}, []string{"operation", "reason"}),
	}
}

func (r *PrometheusRecorder) TicketOpened(t parking.ParkingType) {
	r.ticketsOpened.WithLabelValues(t.String()).Inc()
}

func (r *PrometheusRecorder) TicketClosed(t parking.ParkingType, fare float64, discounted bool) {
	r.ticketsClosed.WithLabelValues(t.String(), strconv.FormatBool(discounted)).Inc()
	r.fareAmount.WithLabelValues(t.String()).Observe(fare)
}

func (r *PrometheusRecorder) OperationFailed(operation, reason string) {
	r.failures.WithLabelValues(operation, reason).Inc()
}

// NoopRecorder discards measurements.
type NoopRecorder struct{}

func (NoopRecorder) TicketOpened(parking.ParkingType)                {}
func (NoopRecorder) TicketClosed(parking.ParkingType, float64, bool) {}
func (NoopRecorder) OperationFailed(string, string)                  {}
