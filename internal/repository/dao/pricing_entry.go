package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type pricingEntryDAO struct {
	db *egorm.Component
}

func NewPricingEntryDAO(db *egorm.Component) PricingEntryDAO {
	return &pricingEntryDAO{db: db}
}

func (d *pricingEntryDAO) Create(ctx context.Context, entry PricingEntry) (PricingEntry, error) {
	entry.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&entry).Error
	return entry, err
}

func (d *pricingEntryDAO) FindAll(ctx context.Context) ([]PricingEntry, error) {
	var entries []PricingEntry
	err := d.db.WithContext(ctx).
		Order("effective_from DESC").
		Order("id DESC").
		Find(&entries).Error
	return entries, err
}

// PricingEntry 价目表，只追加
type PricingEntry struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;comment:'价目ID'"`
	MessageType   string `gorm:"type:VARCHAR(8);NOT NULL;index:idx_type_effective,priority:1;comment:'消息类型 KAKAO/SMS/LMS'"`
	UnitPrice     int64  `gorm:"NOT NULL;comment:'单价，最小货币单位'"`
	EffectiveFrom int64  `gorm:"NOT NULL;index:idx_type_effective,priority:2;comment:'生效时间，毫秒时间戳'"`
	Ctime         int64
}

func (PricingEntry) TableName() string {
	return "pricing_entries"
}
