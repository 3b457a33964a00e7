package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New(true)
	defer c.Close()

	_, _, ok := c.Get("blowouts:10")
	assert.False(t, ok)

	etag := c.Set("blowouts:10", []byte(`{"rows":[]}`), time.Minute)
	data, got, ok := c.Get("blowouts:10")
	require.True(t, ok)
	assert.Equal(t, etag, got)
	assert.Equal(t, `{"rows":[]}`, string(data))

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.ActiveKeys)
}

func TestExpiryAndEvict(t *testing.T) {
	c := New(true)
	defer c.Close()

	c.Set("k", []byte("v"), -time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Stats().ExpiredKeys)

	c.evict()
	assert.Equal(t, 0, c.Stats().TotalKeys)
}

func TestDisabled(t *testing.T) {
	c := New(false)
	defer c.Close()

	etag := c.Set("k", []byte("v"), time.Hour)
	assert.Equal(t, ComputeETag([]byte("v")), etag)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestETags(t *testing.T) {
	etag := ComputeETag([]byte("hello"))
	assert.Regexp(t, `^W/"[0-9a-f]{16}"$`, etag)
	assert.Equal(t, etag, ComputeETag([]byte("hello")))
	assert.NotEqual(t, etag, ComputeETag([]byte("hello!")))

	assert.False(t, CheckETagMatch("", etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch(`"abc", `+etag, etag))
	assert.True(t, CheckETagMatch(etag[2:], etag), "strong form of a weak tag")
	assert.False(t, CheckETagMatch(`W/"deadbeef"`, etag))
}
