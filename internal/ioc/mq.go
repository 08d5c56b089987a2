package ioc

import (
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/econf"
)

func InitKafkaProducer() *kafka.Producer {
	type Config struct {
		Addr     string `yaml:"addr"`
		ClientID string `yaml:"clientId"`
	}
	cfg := Config{ClientID: "notice-dispatch"}
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Addr,
		"client.id":         cfg.ClientID,
	})
	if err != nil {
		panic(fmt.Sprintf("创建生产者失败: %v", err))
	}
	return producer
}
