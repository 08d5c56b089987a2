package local

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/repository/cache"
)

func TestTariffCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewTariffCache(time.Minute)

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)

	tariff := domain.Tariff{Entries: []domain.PricingEntry{{ID: 1, MessageType: domain.MessageTypeKakao, UnitPrice: 18}}}
	require.NoError(t, c.Set(ctx, tariff))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, tariff, got)

	require.NoError(t, c.Del(ctx))
	_, err = c.Get(ctx)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}

func TestTariffCache_Expired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewTariffCache(10 * time.Millisecond)
	require.NoError(t, c.Set(ctx, domain.Tariff{}))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}
