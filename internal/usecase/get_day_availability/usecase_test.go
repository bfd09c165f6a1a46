package get_day_availability

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	availabilityCache "github.com/m04kA/SMC-TableBookingService/internal/infra/cache/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/service/snapshot"
	"github.com/m04kA/SMC-TableBookingService/pkg/logger"
	"github.com/m04kA/SMC-TableBookingService/pkg/ptr"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

type mockLoader struct{ mock.Mock }

func (m *mockLoader) Load(ctx context.Context, restaurantID int64, from, to time.Time) (*snapshot.Snapshot, error) {
	args := m.Called(ctx, restaurantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*snapshot.Snapshot), args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, restaurantID int64, date time.Time, guests int) (*domain.DayAvailability, error) {
	args := m.Called(ctx, restaurantID, date, guests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayAvailability), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, restaurantID int64, day *domain.DayAvailability) error {
	args := m.Called(ctx, restaurantID, day)
	return args.Error(0)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type recordingMetrics struct {
	availability []string
	cache        []string
}

func (r *recordingMetrics) ObserveAvailability(result string) { r.availability = append(r.availability, result) }
func (r *recordingMetrics) ObserveCache(result string) { r.cache = append(r.cache, result) }

var (
	today    = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)
	morning  = time.Date(2024, 6, 10, 9, 20, 0, 0, time.UTC)
)

func testSnapshot(timezone string) *snapshot.Snapshot {
	hours := make([]*domain.OpeningHours, 0, domain.DaysPerWeek)
	for day := 0; day < domain.DaysPerWeek; day++ {
		hours = append(hours, &domain.OpeningHours{
			ID:        int64(day + 1),
			DayOfWeek: day,
			IsOpen:    true,
			OpenTime:  ptr.Ptr(types.MustTimeString("09:00")),
			CloseTime: ptr.Ptr(types.MustTimeString("11:00")),
		})
	}

	return &snapshot.Snapshot{
		Restaurant:   &domain.Restaurant{ID: 1, IsActive: true, Timezone: timezone},
		OpeningHours: hours,
		Tables:       []*domain.Table{{ID: 1, Capacity: 4, IsActive: true}},
	}
}

type fixture struct {
	uc      *UseCase
	loader  *mockLoader
	cache   *mockCache
	metrics *recordingMetrics
}

func newFixture(now time.Time, minNotice int) fixture {
	f := fixture{
		loader:  new(mockLoader),
		cache:   new(mockCache),
		metrics: &recordingMetrics{},
	}
	f.uc = NewUseCase(
		f.loader,
		f.cache,
		availability.NewCalculator(availability.Options{}),
		f.metrics,
		minNotice,
		logger.NewNop(),
	).WithTimeProvider(fixedTime{now: now})
	return f
}

func availableTimes(day *domain.DayAvailability) []string {
	result := make([]string, 0)
	for _, s := range day.AvailableTimes() {
		result = append(result, s.String())
	}
	return result
}

func TestUseCase_Today_SkipsCacheAndCutsPastSlots(t *testing.T) {
	f := newFixture(morning, 30)
	f.loader.On("Load", mock.Anything, int64(1), today, today).Return(testSnapshot("UTC"), nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: today, GuestCount: 2})

	require.NoError(t, err)
	assert.False(t, resp.FromCache)
	assert.Equal(t, 4, resp.Availability.TotalSlots)
	assert.Equal(t, []string{"10:00", "10:30"}, availableTimes(resp.Availability))
	assert.Equal(t, []string{domain.OutcomeAvailable}, f.metrics.availability)
	assert.Empty(t, f.metrics.cache)
	f.loader.AssertExpectations(t)
	f.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_FutureDate_CacheHit(t *testing.T) {
	f := newFixture(morning, 0)
	cached := &domain.DayAvailability{Date: tomorrow, GuestCount: 2, IsOpen: true, TotalSlots: 4, AvailableSlots: 4}
	f.cache.On("Get", mock.Anything, int64(1), tomorrow, 2).Return(cached, nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: tomorrow, GuestCount: 2})

	require.NoError(t, err)
	assert.True(t, resp.FromCache)
	assert.Equal(t, cached, resp.Availability)
	assert.Equal(t, []string{"hit"}, f.metrics.cache)
	f.loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_FutureDate_CacheMissStoresResult(t *testing.T) {
	f := newFixture(morning, 0)
	f.cache.On("Get", mock.Anything, int64(1), tomorrow, 2).Return(nil, availabilityCache.ErrCacheMiss).Once()
	f.loader.On("Load", mock.Anything, int64(1), tomorrow, tomorrow).Return(testSnapshot("UTC"), nil).Once()
	f.cache.On("Set", mock.Anything, int64(1), mock.MatchedBy(func(day *domain.DayAvailability) bool {
		return day.Date.Equal(tomorrow) && day.AvailableSlots == 4
	})).Return(nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: tomorrow.Add(13 * time.Hour), GuestCount: 2})

	require.NoError(t, err)
	assert.False(t, resp.FromCache)
	assert.Equal(t, 4, resp.Availability.AvailableSlots)
	assert.Equal(t, []string{"miss"}, f.metrics.cache)
	f.cache.AssertExpectations(t)
	f.loader.AssertExpectations(t)
}

func TestUseCase_CacheErrorsDoNotFail(t *testing.T) {
	f := newFixture(morning, 0)
	f.cache.On("Get", mock.Anything, int64(1), tomorrow, 2).Return(nil, availabilityCache.ErrCache).Once()
	f.loader.On("Load", mock.Anything, int64(1), tomorrow, tomorrow).Return(testSnapshot("UTC"), nil).Once()
	f.cache.On("Set", mock.Anything, int64(1), mock.Anything).Return(availabilityCache.ErrCache).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: tomorrow, GuestCount: 2})

	require.NoError(t, err)
	assert.True(t, resp.Availability.IsOpen)
	assert.Equal(t, []string{"error"}, f.metrics.cache)
}

func TestUseCase_RestaurantTimezone(t *testing.T) {
	// 20:00 UTC = 05:00 следующего дня в Токио, 10 июня там уже прошло
	evening := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)
	f := newFixture(evening, 0)
	f.loader.On("Load", mock.Anything, int64(1), today, today).Return(testSnapshot("Asia/Tokyo"), nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: today, GuestCount: 2})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Availability.TotalSlots)
	assert.Equal(t, 0, resp.Availability.AvailableSlots)
	assert.Equal(t, []string{domain.OutcomeFullyBooked}, f.metrics.availability)
}

func TestUseCase_RestaurantNotFound(t *testing.T) {
	f := newFixture(morning, 0)
	f.loader.On("Load", mock.Anything, int64(404), today, today).Return(nil, snapshot.ErrRestaurantNotFound).Once()

	_, err := f.uc.Execute(context.Background(), &Request{RestaurantID: 404, Date: today, GuestCount: 2})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestUseCase_LoaderError(t *testing.T) {
	f := newFixture(morning, 0)
	f.loader.On("Load", mock.Anything, int64(1), today, today).Return(nil, errors.New("db down")).Once()

	_, err := f.uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: today, GuestCount: 2})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "restaurant id", req: &Request{RestaurantID: 0, Date: today, GuestCount: 2}},
		{name: "zero date", req: &Request{RestaurantID: 1, GuestCount: 2}},
		{name: "zero guests", req: &Request{RestaurantID: 1, Date: today, GuestCount: 0}},
		{name: "too many guests", req: &Request{RestaurantID: 1, Date: today, GuestCount: domain.MaxGuestCount + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(morning, 0)
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			f.loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIsCacheable(t *testing.T) {
	assert.False(t, isCacheable(today, morning))
	assert.True(t, isCacheable(tomorrow, morning))
	// 11:00 UTC: в UTC+14 уже 11 июня
	assert.False(t, isCacheable(tomorrow, time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)))
	assert.False(t, isCacheable(today.AddDate(0, 0, -1), morning))
}
