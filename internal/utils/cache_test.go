package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache(t *testing.T) {
	cache, err := NewTTLCache(10)
	require.NoError(t, err)

	assert.Nil(t, cache.Get("missing"))

	cache.Set("k", "v", time.Minute)
	assert.Equal(t, "v", cache.Get("k"))

	cache.Delete("k")
	assert.Nil(t, cache.Get("k"))

	cache.Set("short", "v", -time.Second)
	assert.Nil(t, cache.Get("short"), "expired entries read as absent")
}

func TestStringConversions(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, 0, StringToInt("nope"))
	assert.Equal(t, uint(7), StringToUint("7"))
	assert.Equal(t, uint(0), StringToUint("-7"))
}
