// Package monitoring exposes the service's Prometheus metrics.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_tickets_issued_total",
			Help: "Tickets issued, by payment mode",
		},
		[]string{"payment_mode"},
	)

	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_orders_created_total",
			Help: "Pending orders created at checkout",
		},
	)

	ordersPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_orders_paid_total",
			Help: "Orders marked paid by an organizer",
		},
	)

	capacityRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_capacity_rejections_total",
			Help: "Checkout attempts rejected because capacity ran out",
		},
	)

	checkIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_checkins_total",
			Help: "Gate check-in attempts, by result",
		},
		[]string{"result"},
	)
)

func TicketsIssued(mode string, n int) {
	ticketsIssued.WithLabelValues(mode).Add(float64(n))
}

func OrderCreated() {
	ordersCreated.Inc()
}

func OrderPaid() {
	ordersPaid.Inc()
}

func CapacityRejected() {
	capacityRejections.Inc()
}

func CheckIn(result string) {
	checkIns.WithLabelValues(result).Inc()
}
