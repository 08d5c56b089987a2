package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalCmdable 只实现 Eval，记录脚本收到的参数
type evalCmdable struct {
	redis.Cmdable
	keys []string
	args []any
	val  any
	err  error
}

func (c *evalCmdable) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	c.keys = keys
	c.args = args
	cmd := redis.NewCmd(ctx)
	if c.err != nil {
		cmd.SetErr(c.err)
		return cmd
	}
	cmd.SetVal(c.val)
	return cmd
}

func TestRedisSlidingWindowLimiter_Acquire(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1717232400000)
	tests := []struct {
		name    string
		val     any
		err     error
		want    time.Duration
		wantErr error
	}{
		{name: "放行", val: int64(0), want: 0},
		{name: "被限流返回等待时长", val: int64(350), want: 350 * time.Millisecond},
		{name: "redis 异常", err: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := &evalCmdable{val: tt.val, err: tt.err}
			l := NewRedisSlidingWindowLimiter(cmd, time.Second, 50)
			l.now = func() time.Time { return now }

			got, err := l.Acquire(context.Background(), "aligo")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)

			assert.Equal(t, []string{"dispatch:ratelimit:aligo"}, cmd.keys)
			require.Len(t, cmd.args, 4)
			assert.Equal(t, int64(1000), cmd.args[0])
			assert.Equal(t, 50, cmd.args[1])
			assert.Equal(t, now.UnixMilli(), cmd.args[2])
			assert.NotEmpty(t, cmd.args[3])
		})
	}
}
