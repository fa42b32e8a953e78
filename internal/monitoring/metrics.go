package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the kiosk's network-facing operations. Exposed on
// the metrics server wired up in cmd/main.go.
var (
	OrdersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lokma_orders_submitted_total",
		Help: "Orders accepted by the backend",
	})

	SubmissionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lokma_submission_failures_total",
		Help: "Failed order submissions by error kind",
	}, []string{"kind"})

	StatusPolls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lokma_status_polls_total",
		Help: "Status fetches issued, timer and manual combined",
	})

	StatusPollFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lokma_status_poll_failures_total",
		Help: "Failed status fetches by error kind",
	}, []string{"kind"})

	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lokma_orders_cancelled_total",
		Help: "Orders cancelled by the guest",
	})

	CancellationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lokma_cancellation_failures_total",
		Help: "Failed cancellation requests by error kind",
	}, []string{"kind"})

	MenuFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lokma_menu_fetch_failures_total",
		Help: "Failed catalog fetches",
	})
)
