package lib

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Cache *redis.Client

// MatchCacheKey is the key prefix for cached AI match results.
const MatchCacheKey = "match:"

// MatchCacheTTL bounds how stale a cached match list may get.
const MatchCacheTTL = 60 * time.Second

// ConnectCache initializes the optional Redis client. The service runs
// without caching when REDIS_ADDR is unset or the ping fails.
func ConnectCache() {
	addr := GetEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("REDIS_ADDR not set, match caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD", ""),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis unreachable, match caching disabled: %v", err)
		return
	}

	Cache = client
	log.Println("Connected to Redis!")
}

// CacheGetJSON loads a cached value into dest. Returns false on miss, on any
// redis error, or when caching is disabled.
func CacheGetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Cache == nil {
		return false
	}
	raw, err := Cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// CacheSetJSON stores a value as a marshalled blob with a TTL. Failures are
// logged and ignored: the cache is never load-bearing.
func CacheSetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if Cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Cache.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("Error writing cache key %s: %v", key, err)
	}
}

// CacheInvalidate removes cached entries, used when connection state changes.
func CacheInvalidate(ctx context.Context, keys ...string) {
	if Cache == nil || len(keys) == 0 {
		return
	}
	if err := Cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Error invalidating cache: %v", err)
	}
}
