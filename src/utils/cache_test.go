package utils_test

import (
	"sync"
	"testing"
	"time"

	"networth/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestKeyedCache(t *testing.T) {
	t.Run("get returns fresh values", func(t *testing.T) {
		cache := utils.NewKeyedCache[float64](time.Minute)
		cache.Set("STOCK:AAPL", 185.20)

		price, ok := cache.Get("STOCK:AAPL")
		assert.True(t, ok)
		assert.Equal(t, 185.20, price)
	})

	t.Run("get misses unknown keys", func(t *testing.T) {
		cache := utils.NewKeyedCache[float64](time.Minute)

		_, ok := cache.Get("STOCK:MSFT")
		assert.False(t, ok)
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		cache := utils.NewKeyedCache[float64](10 * time.Millisecond)
		cache.Set("CRYPTO:BTC-USD", 97000)

		time.Sleep(20 * time.Millisecond)

		_, ok := cache.Get("CRYPTO:BTC-USD")
		assert.False(t, ok)
		// stale entries stay until overwritten
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("set overwrites and refreshes", func(t *testing.T) {
		cache := utils.NewKeyedCache[float64](time.Minute)
		cache.Set("STOCK:AAPL", 100)
		cache.Set("STOCK:AAPL", 200)

		price, ok := cache.Get("STOCK:AAPL")
		assert.True(t, ok)
		assert.Equal(t, float64(200), price)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("concurrent access on distinct keys", func(t *testing.T) {
		cache := utils.NewKeyedCache[int](time.Minute)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				key := string(rune('A' + n%10))
				cache.Set(key, n)
				cache.Get(key)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 10, cache.Len())
	})
}
