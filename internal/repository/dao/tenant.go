package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type tenantDAO struct {
	db *egorm.Component
}

func NewTenantDAO(db *egorm.Component) TenantDAO {
	return &tenantDAO{db: db}
}

func (d *tenantDAO) FindByID(ctx context.Context, id int64) (Tenant, error) {
	var t Tenant
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	return t, err
}

// Tenant 조합租户，由门户其他子系统维护，这里只读
type Tenant struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;comment:'租户ID'"`
	Name         string `gorm:"type:VARCHAR(128);NOT NULL;comment:'租户名称'"`
	SenderKeyRef string `gorm:"type:VARCHAR(256);comment:'专属发送密钥在密钥库中的引用'"`
	ChannelName  string `gorm:"type:VARCHAR(128);comment:'카카오 渠道展示名'"`
	Ctime        int64
	Utime        int64
}

func (Tenant) TableName() string {
	return "tenants"
}
