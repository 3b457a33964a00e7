package metrics

// Metrics defines the interface for collecting application metrics.
// Handlers and the loader depend on this, not on Prometheus directly.
type Metrics interface {
	ObserveRequest(route, method string, status int, seconds float64)
	IncCacheHit(route string)
	IncCacheMiss(route string)
	SetDatasetGames(n int)
	AddMalformedRows(source string, n int)
	SetStartupTime(seconds float64)
}
