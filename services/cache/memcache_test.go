package cache

import (
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemcacheService(t *testing.T) {
	// Skip when no local memcached is running
	probe := memcache.New("localhost:11211")
	if err := probe.Ping(); err != nil {
		t.Skip("memcached is not available, skipping test")
	}

	svc := NewMemcacheService("localhost:11211")

	key := "listing:https://www.booli.se/bostad/999"
	value := []byte(`{"listingId":"999"}`)

	require.NoError(t, svc.Set(key, value, 10*time.Second))

	got, err := svc.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	require.NoError(t, svc.Delete(key))

	_, err = svc.Get(key)
	assert.Error(t, err)
}
