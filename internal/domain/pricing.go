package domain

import "time"

// 平台默认单价（最小货币单位），价目表里没有生效条目时使用
const (
	DefaultKakaoUnitPrice int64 = 15
	DefaultSMSUnitPrice   int64 = 20
	DefaultLMSUnitPrice   int64 = 50
)

// DefaultUnitPrice 返回消息类型的平台默认单价，MMS 按 LMS 计
func DefaultUnitPrice(mt MessageType) int64 {
	switch mt {
	case MessageTypeKakao:
		return DefaultKakaoUnitPrice
	case MessageTypeSMS:
		return DefaultSMSUnitPrice
	default:
		return DefaultLMSUnitPrice
	}
}

// PricingEntry 价目表条目，只追加不修改。调价就是插入一条新的 EffectiveFrom 更晚的记录
type PricingEntry struct {
	ID            int64       `json:"id"`
	MessageType   MessageType `json:"messageType"`
	UnitPrice     int64       `json:"unitPrice"`
	EffectiveFrom time.Time   `json:"effectiveFrom"`
}

// Tariff 某一时刻读到的价目表快照
type Tariff struct {
	Entries []PricingEntry
}

// EffectivePrice 在 at 时刻 mt 的生效单价。
// 取 EffectiveFrom <= at 中最晚的一条；EffectiveFrom 相同时取 ID 最大（最后插入）的一条；
// 一条都没有就用平台默认单价。
func (t Tariff) EffectivePrice(mt MessageType, at time.Time) int64 {
	var (
		found bool
		best  PricingEntry
	)
	for _, e := range t.Entries {
		if e.MessageType != mt || e.EffectiveFrom.After(at) {
			continue
		}
		if !found ||
			e.EffectiveFrom.After(best.EffectiveFrom) ||
			(e.EffectiveFrom.Equal(best.EffectiveFrom) && e.ID > best.ID) {
			best = e
			found = true
		}
	}
	if !found {
		return DefaultUnitPrice(mt)
	}
	return best.UnitPrice
}

// UnitPrices 一次派发开始时解析好的单价，整个派发过程中不变
type UnitPrices struct {
	Kakao int64 `json:"kakao"`
	SMS   int64 `json:"sms"`
	LMS   int64 `json:"lms"`
}

// Resolve 从价目表快照解析 at 时刻的全部单价
func (t Tariff) Resolve(at time.Time) UnitPrices {
	return UnitPrices{
		Kakao: t.EffectivePrice(MessageTypeKakao, at),
		SMS:   t.EffectivePrice(MessageTypeSMS, at),
		LMS:   t.EffectivePrice(MessageTypeLMS, at),
	}
}
