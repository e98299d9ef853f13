package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	InvoiceMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invd_invoice_mutations_total",
			Help: "Invoice mutation counter by operation and outcome",
		},
		[]string{"op", "outcome"}, // create|update|delete , ok|invalid|db_error
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invd_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"}, // ok|invalid|error
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		InvoiceMutationsTotal,
		LoginsTotal,
	)
}
