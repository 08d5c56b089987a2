package ioc

import (
	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web *egin.Component
}

// InitApp 按依赖顺序组装整个服务
func InitApp() *App {
	db := InitDB()
	rdb := InitRedisClient()
	producer := InitKafkaProducer()
	svcs := InitServices(db, InitSecretStore(), InitProvider(rdb), producer)
	return &App{
		Web: InitWeb(svcs, producer),
	}
}
