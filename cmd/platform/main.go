package main

import (
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
	"notice-dispatch/internal/ioc"
)

func main() {
	// 配置文件通过 --config=config/config.yaml 指定
	egoApp := ego.New()
	app := ioc.InitApp()
	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
