package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTariff_EffectivePrice(t *testing.T) {
	t.Parallel()

	kakao := []PricingEntry{
		{ID: 1, MessageType: MessageTypeKakao, UnitPrice: 15, EffectiveFrom: date(2024, 1, 1)},
		{ID: 2, MessageType: MessageTypeKakao, UnitPrice: 18, EffectiveFrom: date(2024, 6, 1)},
	}

	tests := []struct {
		name    string
		entries []PricingEntry
		mt      MessageType
		at      time.Time
		want    int64
	}{
		{
			name:    "取最晚生效的条目",
			entries: kakao,
			mt:      MessageTypeKakao,
			at:      date(2024, 7, 1),
			want:    18,
		},
		{
			name:    "调价之前按旧价",
			entries: kakao,
			mt:      MessageTypeKakao,
			at:      date(2024, 3, 1),
			want:    15,
		},
		{
			name:    "生效当天按新价",
			entries: kakao,
			mt:      MessageTypeKakao,
			at:      date(2024, 6, 1),
			want:    18,
		},
		{
			name:    "全部条目都未生效用默认价",
			entries: kakao,
			mt:      MessageTypeKakao,
			at:      date(2023, 12, 31),
			want:    DefaultKakaoUnitPrice,
		},
		{
			name: "没有条目 SMS 用默认价",
			mt:   MessageTypeSMS,
			at:   date(2030, 1, 1),
			want: 20,
		},
		{
			name:    "没有 LMS 条目用默认价",
			entries: kakao,
			mt:      MessageTypeLMS,
			at:      date(2024, 7, 1),
			want:    50,
		},
		{
			name: "生效时间相同取最后插入的条目",
			entries: []PricingEntry{
				{ID: 7, MessageType: MessageTypeSMS, UnitPrice: 22, EffectiveFrom: date(2024, 1, 1)},
				{ID: 3, MessageType: MessageTypeSMS, UnitPrice: 30, EffectiveFrom: date(2024, 1, 1)},
			},
			mt:   MessageTypeSMS,
			at:   date(2024, 2, 1),
			want: 22,
		},
		{
			name: "其他类型的条目不影响",
			entries: []PricingEntry{
				{ID: 1, MessageType: MessageTypeLMS, UnitPrice: 45, EffectiveFrom: date(2024, 1, 1)},
			},
			mt:   MessageTypeSMS,
			at:   date(2024, 2, 1),
			want: DefaultSMSUnitPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tariff := Tariff{Entries: tt.entries}
			assert.Equal(t, tt.want, tariff.EffectivePrice(tt.mt, tt.at))
		})
	}
}

func TestTariff_Resolve(t *testing.T) {
	t.Parallel()

	tariff := Tariff{Entries: []PricingEntry{
		{ID: 1, MessageType: MessageTypeKakao, UnitPrice: 13, EffectiveFrom: date(2024, 1, 1)},
		{ID: 2, MessageType: MessageTypeLMS, UnitPrice: 40, EffectiveFrom: date(2024, 1, 1)},
	}}

	assert.Equal(t, UnitPrices{Kakao: 13, SMS: 20, LMS: 40}, tariff.Resolve(date(2024, 5, 5)))
}
