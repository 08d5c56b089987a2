package ratelimit

import (
	"context"
	"time"
)

//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go Limiter
type Limiter interface {
	// Acquire 占用一个发送名额。放行返回 0，被限流返回至少还要等多久才可能放行
	Acquire(ctx context.Context, key string) (time.Duration, error)
}
