package ioc

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"notice-dispatch/internal/event/progress"
	dispatchweb "notice-dispatch/internal/handler/dispatch"
	"notice-dispatch/internal/handler/middleware"
	dispatchsvc "notice-dispatch/internal/service/dispatch"
)

func InitWeb(svcs Services, kafkaProducer *kafka.Producer) *egin.Component {
	type Config struct {
		Key string `yaml:"key"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("jwt", &cfg); err != nil {
		panic("config err:" + err.Error())
	}

	producer, err := progress.NewBatchProgressEventProducer(kafkaProducer, econf.GetDuration("kafka.publishTimeout"))
	if err != nil {
		panic(err)
	}
	sinks := func(tenantID int64, runID string) dispatchsvc.ProgressSink {
		return progress.NewSink(producer, tenantID, runID)
	}

	server := egin.Load("server.http").Build()
	handler := dispatchweb.NewHandler(svcs.Dispatch, svcs.Pricing, sinks,
		middleware.NewJWTBuilder(cfg.Key).Build())
	handler.PublicRoutes(server.Engine)
	handler.PrivateRoutes(server.Engine)
	return server
}
