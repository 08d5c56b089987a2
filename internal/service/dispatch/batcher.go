package dispatch

import "notice-dispatch/internal/domain"

// Partition 按 size 切分收件人，第 i 批覆盖 [i*size, min((i+1)*size, len)-1]。
// 保持原顺序，每个收件人恰好出现在一个批次里
func Partition(recipients []domain.Recipient, size int) []domain.Batch {
	if size <= 0 {
		size = DefaultBatchSize
	}
	batches := make([]domain.Batch, 0, (len(recipients)+size-1)/size)
	for start := 0; start < len(recipients); start += size {
		end := min(start+size, len(recipients))
		batches = append(batches, domain.Batch{
			Index:      len(batches),
			StartIndex: start,
			EndIndex:   end - 1,
			Recipients: recipients[start:end:end],
		})
	}
	return batches
}
