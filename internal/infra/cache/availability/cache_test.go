package availability

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/ptr"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, ttl), mr
}

func sampleDay() *domain.DayAvailability {
	return &domain.DayAvailability{
		Date:           time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		GuestCount:     2,
		IsOpen:         true,
		OpenTime:       ptr.Ptr(types.MustTimeString("09:00")),
		CloseTime:      ptr.Ptr(types.MustTimeString("10:00")),
		TotalSlots:     2,
		AvailableSlots: 1,
		TimeSlots: []domain.TimeSlot{
			{Time: types.MustTimeString("09:00"), Available: false},
			{Time: types.MustTimeString("09:30"), Available: true},
		},
		SpecialPeriodID: ptr.Ptr(int64(4)),
	}
}

func TestCache_SetGet(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	day := sampleDay()

	require.NoError(t, cache.Set(ctx, 1, day))

	got, err := cache.Get(ctx, 1, day.Date, 2)
	require.NoError(t, err)
	assert.Equal(t, day, got)
	assert.Equal(t, time.Minute, mr.TTL("availability:1:2024-06-10:2"))
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx, 1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 2)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()
	day := sampleDay()

	require.NoError(t, cache.Set(ctx, 1, day))
	mr.FastForward(31 * time.Second)

	_, err := cache.Get(ctx, 1, day.Date, 2)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_InvalidateRestaurant(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	for guests := 1; guests <= 3; guests++ {
		day := sampleDay()
		day.GuestCount = guests
		require.NoError(t, cache.Set(ctx, 1, day))
	}
	require.NoError(t, cache.Set(ctx, 2, sampleDay()))

	require.NoError(t, cache.InvalidateRestaurant(ctx, 1))

	assert.False(t, mr.Exists("availability:1:2024-06-10:1"))
	assert.False(t, mr.Exists("availability:1:2024-06-10:3"))
	assert.True(t, mr.Exists("availability:2:2024-06-10:2"))

	// пустой ресторан не ошибка
	assert.NoError(t, cache.InvalidateRestaurant(ctx, 99))
}

func TestCache_RedisUnavailable(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, err := cache.Get(context.Background(), 1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 2)
	assert.ErrorIs(t, err, ErrCache)
}

func TestNopCache(t *testing.T) {
	var cache NopCache
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, 1, sampleDay()))
	_, err := cache.Get(ctx, 1, time.Now(), 2)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, cache.InvalidateRestaurant(ctx, 1))
}
