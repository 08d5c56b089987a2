package ratelimit

import (
	"context"
	_ "embed"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/acquire.lua
	acquireScript string

	_ Limiter = (*RedisSlidingWindowLimiter)(nil)
)

const keyPrefix = "dispatch:ratelimit:"

// RedisSlidingWindowLimiter 同一个供应商账号的所有实例共享一个窗口，window 内最多放行 rate 次调用
type RedisSlidingWindowLimiter struct {
	cmd    redis.Cmdable
	window time.Duration
	rate   int
	now    func() time.Time
}

func NewRedisSlidingWindowLimiter(cmd redis.Cmdable, window time.Duration, rate int) *RedisSlidingWindowLimiter {
	return &RedisSlidingWindowLimiter{
		cmd:    cmd,
		window: window,
		rate:   rate,
		now:    time.Now,
	}
}

func (r *RedisSlidingWindowLimiter) Acquire(ctx context.Context, key string) (time.Duration, error) {
	ms, err := r.cmd.Eval(ctx, acquireScript,
		[]string{keyPrefix + key},
		r.window.Milliseconds(),
		r.rate,
		r.now().UnixMilli(),
		uuid.NewString(),
	).Int64()
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
