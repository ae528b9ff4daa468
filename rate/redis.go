package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "nationstates:ratelimit"

// reserveScript books the next free slot under KEYS[1] and returns how
// long the caller has to wait for it along with the value it left in the
// key. Times are unix milliseconds taken from the server clock, so every
// process sharing the key agrees on them.
var reserveScript = redis.NewScript(`
local t = redis.call('TIME')
local now = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)
local spacing = tonumber(ARGV[1])
local slot = tonumber(redis.call('GET', KEYS[1]) or '0')
if slot < now then
  slot = now
end
local nextSlot = slot + spacing
redis.call('SET', KEYS[1], nextSlot, 'PX', nextSlot - now + 1000)
return {slot - now, nextSlot}
`)

// cancelScript gives a slot back, but only while it is still the most
// recent reservation. Otherwise the slot is lost.
var cancelScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  redis.call('SET', KEYS[1], tonumber(ARGV[1]) - tonumber(ARGV[2]), 'KEEPTTL')
  return 1
end
return 0
`)

type redisConfig struct {
	key   string
	clock Clock
}

type RedisOption func(c *redisConfig)

func WithRedisKey(key string) RedisOption {
	return func(c *redisConfig) {
		c.key = key
	}
}

func WithRedisClock(clock Clock) RedisOption {
	return func(c *redisConfig) {
		c.clock = clock
	}
}

// Redis spaces dispatches of every process that shares the same Redis key,
// so several workers behind one IP address stay inside one quota.
type Redis struct {
	client  redis.Scripter
	key     string
	spacing int64
	clock   Clock
}

var _ Limiter = &Redis{}

// NewRedis admits at most requests per window across all processes using
// the same key. client is usually a *redis.Client.
func NewRedis(client redis.Scripter, requests int, window time.Duration, opts ...RedisOption) *Redis {
	cfg := redisConfig{
		key:   DefaultRedisKey,
		clock: SystemClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if requests < 1 {
		requests = 1
	}

	spacing := window / time.Duration(requests)
	ms := spacing.Milliseconds()
	if time.Duration(ms)*time.Millisecond < spacing {
		ms++
	}

	return &Redis{
		client:  client,
		key:     cfg.key,
		spacing: ms,
		clock:   cfg.clock,
	}
}

func (l *Redis) Acquire(ctx context.Context) (Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := reserveScript.Run(ctx, l.client, []string{l.key}, l.spacing).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate: could not reserve a slot in redis: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("rate: unexpected reservation result from redis: %v", res)
	}

	delay, nextSlot := time.Duration(res[0])*time.Millisecond, res[1]
	if delay <= 0 {
		return noopRelease, nil
	}

	select {
	case <-l.clock.After(delay):
		return noopRelease, nil
	case <-ctx.Done():
		l.cancel(ctx, nextSlot)
		return nil, ctx.Err()
	}
}

func (l *Redis) cancel(ctx context.Context, nextSlot int64) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()

	// best effort: a slot that can't be returned is simply not used
	_ = cancelScript.Run(ctx, l.client, []string{l.key}, nextSlot, l.spacing).Err()
}
