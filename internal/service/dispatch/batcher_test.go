package dispatch

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notice-dispatch/internal/domain"
)

func recipients(n int) []domain.Recipient {
	res := make([]domain.Recipient, n)
	for i := range res {
		res[i] = domain.Recipient{PhoneNumber: "010" + strconv.Itoa(10000000+i), Name: strconv.Itoa(i)}
	}
	return res
}

func TestPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		size      int
		wantRange [][2]int
	}{
		{name: "120 人每批 50", total: 120, size: 50, wantRange: [][2]int{{0, 49}, {50, 99}, {100, 119}}},
		{name: "恰好整除", total: 100, size: 50, wantRange: [][2]int{{0, 49}, {50, 99}}},
		{name: "不足一批", total: 3, size: 50, wantRange: [][2]int{{0, 2}}},
		{name: "没有收件人", total: 0, size: 50, wantRange: [][2]int{}},
		{name: "非法批次大小用默认值", total: 51, size: 0, wantRange: [][2]int{{0, 49}, {50, 50}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rs := recipients(tt.total)
			batches := Partition(rs, tt.size)
			require.Len(t, batches, len(tt.wantRange))

			var flattened []domain.Recipient
			for i, b := range batches {
				assert.Equal(t, i, b.Index)
				assert.Equal(t, tt.wantRange[i][0], b.StartIndex)
				assert.Equal(t, tt.wantRange[i][1], b.EndIndex)
				assert.Len(t, b.Recipients, b.EndIndex-b.StartIndex+1)
				flattened = append(flattened, b.Recipients...)
			}
			if tt.total > 0 {
				assert.Equal(t, rs, flattened)
			}
		})
	}
}
