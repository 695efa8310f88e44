// Package metrics concentra las métricas Prometheus de la API.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "evaluacion"

var (
	registry *prometheus.Registry
	once     sync.Once
)

var (
	AnalysisTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analisis_total",
		Help:      "Análisis calculados, por resultado",
	}, []string{"resultado"})
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analisis_duracion_segundos",
		Help:      "Tiempo de cálculo de un análisis",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
	IRRNonConvergence = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tir_no_convergente_total",
		Help:      "Intervalos de la TIR descartados por no converger",
	})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Solicitudes HTTP atendidas",
	}, []string{"method", "route", "status"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las solicitudes HTTP",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// InitRegistry crea el registro global una sola vez
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			AnalysisTotal,
			AnalysisDuration,
			IRRNonConvergence,
			HTTPRequestsTotal,
			HTTPRequestDuration,
			collectors.NewGoCollector(),
		)
	})
	return registry
}

// Handler devuelve el handler HTTP de /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(InitRegistry(), promhttp.HandlerOpts{})
}

// ObserveAnalysis registra un cálculo de análisis y su resultado
func ObserveAnalysis(d time.Duration, resultado string) {
	AnalysisTotal.WithLabelValues(resultado).Inc()
	AnalysisDuration.Observe(d.Seconds())
}

// ObserveRequest registra una solicitud HTTP
func ObserveRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
