package entry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var counterExpensesCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expensebot",
		Subsystem: "entry",
		Name:      "expenses_created_total",
	},
	[]string{"category"},
)

func observeExpenseCreated(category string) {
	counterExpensesCreated.WithLabelValues(category).Inc()
}
