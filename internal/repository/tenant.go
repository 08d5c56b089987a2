package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/repository/dao"
)

type tenantRepository struct {
	dao dao.TenantDAO
}

func NewTenantRepository(d dao.TenantDAO) TenantRepository {
	return &tenantRepository{dao: d}
}

func (r *tenantRepository) FindByID(ctx context.Context, id int64) (domain.Tenant, error) {
	t, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tenant{}, fmt.Errorf("%w: id = %d", errs.ErrTenantNotFound, id)
		}
		return domain.Tenant{}, err
	}
	return domain.Tenant{
		ID:           t.ID,
		Name:         t.Name,
		SenderKeyRef: t.SenderKeyRef,
		ChannelName:  t.ChannelName,
	}, nil
}
