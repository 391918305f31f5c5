package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	require.NoError(t, c.Set(ctx, "k1", payload{Name: "waist", Value: 83.3}, 0))

	var got payload
	found, err := c.Get(ctx, "k1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "waist", Value: 83.3}, got)
}

func TestMemoryCache_MissIsNotAnError(t *testing.T) {
	c := NewMemoryCache()

	var got map[string]float64
	found, err := c.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, "short", "value", time.Minute))

	var got string
	found, err := c.Get(ctx, "short", &got)
	require.NoError(t, err)
	require.True(t, found, "entry must survive within its TTL")

	current = current.Add(time.Minute + time.Second)

	found, err = c.Get(ctx, "short", &got)
	require.NoError(t, err)
	assert.False(t, found, "entry must disappear after its TTL")

	exists, err := c.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, "flag", true, 0))

	current = current.Add(24 * time.Hour)

	var got bool
	found, err := c.Get(ctx, "flag", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 42, 0))
	require.NoError(t, c.Delete(ctx, "k"))

	exists, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}
