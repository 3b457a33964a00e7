package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu            sync.Mutex
	requests      map[string]int
	cacheHits     int
	cacheMisses   int
	datasetGames  int
	malformedRows map[string]int
	startupTime   float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requests:      make(map[string]int),
		malformedRows: make(map[string]int),
	}
}

func (m *Mock) ObserveRequest(route, method string, status int, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[route]++
}

func (m *Mock) IncCacheHit(route string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncCacheMiss(route string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

func (m *Mock) SetDatasetGames(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.datasetGames = n
}

func (m *Mock) AddMalformedRows(source string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.malformedRows[source] += n
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// Requests returns how many requests were observed for route.
func (m *Mock) Requests(route string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[route]
}

// CacheHits returns the number of IncCacheHit calls.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// CacheMisses returns the number of IncCacheMiss calls.
func (m *Mock) CacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses
}

// DatasetGames returns the last value passed to SetDatasetGames.
func (m *Mock) DatasetGames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.datasetGames
}

// MalformedRows returns the accumulated malformed count for source.
func (m *Mock) MalformedRows(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.malformedRows[source]
}
