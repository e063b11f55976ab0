package dedupe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/dedupe"
)

func TestSeenRecordsFirstObservation(t *testing.T) {
	cache := dedupe.NewCache(10, time.Minute)
	require.False(t, cache.Seen("alpha"))
	require.True(t, cache.Seen("alpha"))
}

func TestSeenExpiresAfterTTL(t *testing.T) {
	cache := dedupe.NewCache(10, 20*time.Millisecond)
	require.False(t, cache.Seen("beta"))
	time.Sleep(25 * time.Millisecond)
	require.False(t, cache.Seen("beta"))
}

func TestCapacityEvictsOldest(t *testing.T) {
	cache := dedupe.NewCache(1, time.Minute)
	require.False(t, cache.Seen("first"))
	require.False(t, cache.Seen("second"))
	require.False(t, cache.Seen("first"))
	require.Equal(t, 1, cache.Len())
}

func TestKeyIsStable(t *testing.T) {
	a := dedupe.Key("title", "description")
	b := dedupe.Key("title", "description")
	c := dedupe.Key("title", "other")
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.NotEmpty(t, a)
}
