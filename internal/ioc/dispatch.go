package ioc

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"notice-dispatch/internal/event/dispatchlog"
	"notice-dispatch/internal/pkg/secret"
	"notice-dispatch/internal/repository"
	"notice-dispatch/internal/repository/cache/local"
	"notice-dispatch/internal/repository/dao"
	"notice-dispatch/internal/service/dispatch"
	"notice-dispatch/internal/service/identity"
	"notice-dispatch/internal/service/pricing"
	"notice-dispatch/internal/service/provider"
)

type Services struct {
	Dispatch dispatch.Service
	Pricing  pricing.Service
}

func InitServices(db *egorm.Component, store secret.Store, p provider.Provider, producer *kafka.Producer) Services {
	var (
		dispatchCfg dispatch.Config
		identityCfg identity.Config
	)
	if err := econf.UnmarshalKey("dispatch", &dispatchCfg); err != nil {
		panic(err)
	}
	if err := econf.UnmarshalKey("identity", &identityCfg); err != nil {
		panic(err)
	}
	tariffExpiration := econf.GetDuration("pricing.cacheExpiration")

	pricingSvc := pricing.NewTariffService(
		repository.NewPricingRepository(dao.NewPricingEntryDAO(db), local.NewTariffCache(tariffExpiration)))
	resolver := identity.NewSenderResolver(
		repository.NewTenantRepository(dao.NewTenantDAO(db)), store, identityCfg)

	logs := repository.NewDispatchLogRepository(dao.NewDispatchLogDAO(db))
	var publisher dispatch.CompletedPublisher
	if producer != nil {
		evtProducer, err := dispatchlog.NewDispatchCompletedEventProducer(producer, econf.GetDuration("kafka.publishTimeout"))
		if err != nil {
			panic(err)
		}
		publisher = dispatchlog.NewPublisher(evtProducer)
	}

	return Services{
		Dispatch: dispatch.NewOrchestrator(resolver, pricingSvc, p,
			dispatch.NewAccountant(logs, publisher), logs, dispatchCfg),
		Pricing: pricingSvc,
	}
}
