package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meera_cart_mutations_total",
		Help: "Cart mutations applied, by operation.",
	}, []string{"op"})

	CartPersistErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meera_cart_persist_errors_total",
		Help: "Cart writes to the key-value store that failed and were swallowed.",
	})

	CartLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meera_cart_loads_total",
		Help: "Cart hydrations from the key-value store, by outcome.",
	}, []string{"result"})

	ActiveCartStores = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "meera_active_cart_stores",
		Help: "Cart stores currently held in memory, one per client.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meera_logins_total",
		Help: "Login attempts, by result.",
	}, []string{"result"})

	OrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meera_orders_total",
		Help: "Checkout submissions that completed.",
	})
)
