package ioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"notice-dispatch/internal/event/progress"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 内存实现，方便测试
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		const partitions = 1
		qq := memory.NewMQ()
		if err := qq.CreateTopic(context.Background(), progress.EventName, partitions); err != nil {
			panic(err)
		}
		q = qq
	})
	return q
}
