package httpmiddleware

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and consumes one token atomically.
// KEYS[1] = bucket key
// ARGV[1] = refill rate (tokens per second)
// ARGV[2] = capacity
// ARGV[3] = now (unix seconds, microsecond precision)
// ARGV[4] = key ttl (seconds)
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call("HMGET", key, "tokens", "last_refill")
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if not tokens or not last_refill then
    tokens = capacity
    last_refill = now
end

local elapsed = now - last_refill
if elapsed > 0 then
    tokens = math.min(capacity, tokens + elapsed * rate)
    last_refill = now
end

local allowed = 0
if tokens >= 1 then
    tokens = tokens - 1
    allowed = 1
end

redis.call("HSET", key, "tokens", tokens, "last_refill", last_refill)
redis.call("EXPIRE", key, ttl)

return {allowed, math.floor(tokens)}
`)

// RedisStore is a LimiterStore shared by every API replica. Each key owns a
// token bucket of Max tokens refilled evenly over Window.
type RedisStore struct {
	client redis.Scripter
	prefix string
	max    int
	window time.Duration
}

var _ LimiterStore = (*RedisStore)(nil)

// NewRedisStore returns a RedisStore using client.
func NewRedisStore(client redis.Scripter, max int, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "pos:ratelimit:",
		max:    max,
		window: window,
	}
}

// Allow consumes a token from the bucket for key.
func (s *RedisStore) Allow(ctx context.Context, key string, now time.Time) (Decision, error) {
	rate := float64(s.max) / s.window.Seconds()
	ts := float64(now.UnixMicro()) / 1e6
	ttl := int(2 * s.window.Seconds())
	if ttl < 1 {
		ttl = 1
	}

	res, err := tokenBucketScript.Run(ctx, s.client, []string{s.prefix + key}, rate, s.max, ts, ttl).Int64Slice()
	if err != nil {
		return Decision{}, errors.Wrap(err, "run token bucket script")
	}
	if len(res) != 2 {
		return Decision{}, errors.Errorf("unexpected token bucket reply: %v", res)
	}

	d := Decision{
		Allowed:   res[0] == 1,
		Remaining: int(res[1]),
	}
	// Time until one token is available again, or the bucket is full.
	if d.Allowed {
		d.ResetAt = now.Add(time.Duration(float64(s.max-d.Remaining) / rate * float64(time.Second)))
	} else {
		d.ResetAt = now.Add(time.Duration(float64(time.Second) / rate))
	}
	return d, nil
}
