package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	refreshCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tarkov_market_refresh_cycles_total",
		Help: "Catalog refresh cycles attempted.",
	})

	refreshErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tarkov_market_refresh_errors_total",
		Help: "Catalog refresh cycles that failed to fetch.",
	})

	watchAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tarkov_market_watch_alerts_total",
		Help: "Price-watch alerts pushed to the notifier.",
	})
)
