package db

import (
	"log"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked in a concurrent set so all cached query responses
// can be dropped at once after a sync run changes the underlying data.
var (
	Cache          *ristretto.Cache
	queryCacheTTL  = 60 * time.Second
	QueryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// Query Response Cache Functions
//
// Slash commands must answer inside Slack's response deadline, so rendered
// responses for repeated query text are kept briefly.

func SetQueryCache(cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	QueryCacheKeys.Lock()
	QueryCacheKeys.m[cacheKey] = struct{}{}
	QueryCacheKeys.Unlock()
	Cache.SetWithTTL(cacheKey, value, 1, queryCacheTTL)
}

func GetQueryCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

func ClearAllQueryCaches() {
	if Cache == nil {
		return
	}
	QueryCacheKeys.Lock()
	for key := range QueryCacheKeys.m {
		Cache.Del(key)
	}
	QueryCacheKeys.m = make(map[string]struct{})
	QueryCacheKeys.Unlock()
}

// JWK Cache Functions
//
// Plaid webhook verification keys are immutable per kid, no TTL needed.

func SetJWKCache(kid string, value interface{}) {
	if Cache == nil {
		return
	}
	Cache.Set("jwk:"+kid, value, 1)
}

func GetJWKCache(kid string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get("jwk:" + kid)
}
