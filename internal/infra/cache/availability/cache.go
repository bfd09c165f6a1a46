package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

const (
	keyPrefix = "availability"
	scanCount = 100
)

// Cache кэш рассчитанной доступности в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш доступности
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает доступность ресторана на дату для количества гостей.
// Если значения нет, возвращает ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, restaurantID int64, date time.Time, guests int) (*domain.DayAvailability, error) {
	val, err := c.client.Get(ctx, dayKey(restaurantID, date, guests)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrCache, err)
	}

	var cached cachedDay
	if err := json.Unmarshal(val, &cached); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrCache, err)
	}

	day, err := cached.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - decode day: %v", ErrCache, err)
	}

	return day, nil
}

// Set сохраняет доступность с TTL кэша
func (c *Cache) Set(ctx context.Context, restaurantID int64, day *domain.DayAvailability) error {
	data, err := json.Marshal(fromDomain(day))
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, dayKey(restaurantID, day.Date, day.GuestCount), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrCache, err)
	}

	return nil
}

// InvalidateRestaurant удаляет все закэшированные дни ресторана
func (c *Cache) InvalidateRestaurant(ctx context.Context, restaurantID int64) error {
	pattern := fmt.Sprintf("%s:%d:*", keyPrefix, restaurantID)

	keys := make([]string, 0)
	iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: InvalidateRestaurant - scan: %v", ErrCache, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateRestaurant - del: %v", ErrCache, err)
	}

	return nil
}

func dayKey(restaurantID int64, date time.Time, guests int) string {
	return fmt.Sprintf("%s:%d:%s:%d", keyPrefix, restaurantID, date.Format(domain.DateFormat), guests)
}

// NopCache кэш-заглушка, когда Redis выключен
type NopCache struct{}

// Get всегда возвращает ErrCacheMiss
func (NopCache) Get(context.Context, int64, time.Time, int) (*domain.DayAvailability, error) {
	return nil, ErrCacheMiss
}

// Set ничего не делает
func (NopCache) Set(context.Context, int64, *domain.DayAvailability) error {
	return nil
}

// InvalidateRestaurant ничего не делает
func (NopCache) InvalidateRestaurant(context.Context, int64) error {
	return nil
}
