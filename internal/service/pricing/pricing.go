package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/repository"
)

var _ Service = (*TariffService)(nil)

type TariffService struct {
	repo   repository.PricingRepository
	logger *elog.Component
}

func NewTariffService(repo repository.PricingRepository) *TariffService {
	return &TariffService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *TariffService) EffectivePrice(ctx context.Context, mt domain.MessageType, at time.Time) int64 {
	return s.tariff(ctx).EffectivePrice(mt, at)
}

func (s *TariffService) UnitPrices(ctx context.Context, at time.Time) domain.UnitPrices {
	return s.tariff(ctx).Resolve(at)
}

// tariff 查询失败时返回空价目表，后续全部落到平台默认单价
func (s *TariffService) tariff(ctx context.Context) domain.Tariff {
	t, err := s.repo.Tariff(ctx)
	if err != nil {
		s.logger.Error("查询价目表失败，使用平台默认单价", elog.FieldErr(err))
		return domain.Tariff{}
	}
	return t
}

func (s *TariffService) Append(ctx context.Context, entry domain.PricingEntry) (domain.PricingEntry, error) {
	switch entry.MessageType {
	case domain.MessageTypeKakao, domain.MessageTypeSMS, domain.MessageTypeLMS:
	default:
		return domain.PricingEntry{}, fmt.Errorf("%w: MessageType = %q", errs.ErrInvalidParameter, entry.MessageType)
	}
	if entry.UnitPrice < 0 {
		return domain.PricingEntry{}, fmt.Errorf("%w: UnitPrice = %d", errs.ErrInvalidParameter, entry.UnitPrice)
	}
	if entry.EffectiveFrom.IsZero() {
		return domain.PricingEntry{}, fmt.Errorf("%w: EffectiveFrom 不能为空", errs.ErrInvalidParameter)
	}
	entry.ID = 0
	return s.repo.Append(ctx, entry)
}
