package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "h2h_http_requests_total",
			Help: "HTTP requests served, by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "h2h_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "h2h_cache_lookups_total",
			Help: "Response cache lookups by route and result.",
		}, []string{"route", "result"}),
		DatasetGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "h2h_dataset_games",
			Help: "Normalized games in the loaded dataset.",
		}),
		MalformedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "h2h_dataset_malformed_rows_total",
			Help: "Source rows skipped while loading, by source.",
		}, []string{"source"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "h2h_startup_duration_seconds",
			Help: "Time from process start to serving, including the dataset load.",
		}),
	}

	reg.MustRegister(
		s.Requests,
		s.RequestDuration,
		s.CacheLookups,
		s.DatasetGames,
		s.MalformedRows,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) ObserveRequest(route, method string, status int, seconds float64) {
	s.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	s.RequestDuration.WithLabelValues(route).Observe(seconds)
}

func (s *Service) IncCacheHit(route string) {
	s.CacheLookups.WithLabelValues(route, "hit").Inc()
}

func (s *Service) IncCacheMiss(route string) {
	s.CacheLookups.WithLabelValues(route, "miss").Inc()
}

func (s *Service) SetDatasetGames(n int) {
	s.DatasetGames.Set(float64(n))
}

func (s *Service) AddMalformedRows(source string, n int) {
	if n <= 0 {
		return
	}
	s.MalformedRows.WithLabelValues(source).Add(float64(n))
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
