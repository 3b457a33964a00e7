package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Requests           *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	CacheLookups       *prometheus.CounterVec
	DatasetGames       prometheus.Gauge
	MalformedRows      *prometheus.CounterVec
	StartupTimeSeconds prometheus.Gauge
}
