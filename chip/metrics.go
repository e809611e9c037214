// Prometheus instrumentation plus the simple wall-clock logging the
// handlers defer.
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	handlerDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chiporg_handler_duration_seconds",
		Help:    "Time answering a request, per handler.",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler"})

	catalogMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chiporg_catalog_mutations_total",
		Help: "Catalog mutations, per operation.",
	}, []string{"op"})
)

const kMetricsPage = "/metrics"

func AddMetricsHandler() {
	prometheus.MustRegister(handlerDuration, catalogMutations)
	http.Handle(kMetricsPage, promhttp.Handler())
}

// ElapsedPrint logs how long an action took. Use with defer:
//
//	defer ElapsedPrint("Query", time.Now())
func ElapsedPrint(msg string, start time.Time) {
	log.Printf("%s took %s", msg, time.Since(start))
}

// observeHandler feeds the duration histogram; deferred alongside
// ElapsedPrint in the API handlers.
func observeHandler(name string, start time.Time) {
	handlerDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

func countMutation(op string) {
	catalogMutations.WithLabelValues(op).Inc()
}
