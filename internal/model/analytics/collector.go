// Package analytics feeds spending metrics from the expense event stream.
package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"max.ks1230/expense-bot/internal/entity/event"
)

var (
	counterSpendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expensebot",
			Subsystem: "analytics",
			Name:      "spend_total",
		},
		[]string{"category"},
	)
	counterEventsSeen = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "expensebot",
			Subsystem: "analytics",
			Name:      "expense_events_total",
		},
	)
)

type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) AcceptExpense(ev event.Expense) {
	counterEventsSeen.Inc()
	counterSpendTotal.WithLabelValues(ev.Category).Add(ev.Amount)
}
