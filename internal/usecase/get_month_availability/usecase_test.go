package get_month_availability

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/availability"
	"github.com/m04kA/SMC-TableBookingService/internal/domain"
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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type countingMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (c *countingMetrics) ObserveAvailability(result string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[result]++
}

var (
	june1  = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	june30 = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
)

// juneSnapshot: понедельник выходной, 12 июня закрыто на спецобслуживание
func juneSnapshot() *snapshot.Snapshot {
	hours := make([]*domain.OpeningHours, 0, domain.DaysPerWeek)
	for day := 0; day < domain.DaysPerWeek; day++ {
		h := &domain.OpeningHours{ID: int64(day + 1), DayOfWeek: day, IsOpen: day != int(time.Monday)}
		if h.IsOpen {
			h.OpenTime = ptr.Ptr(types.MustTimeString("09:00"))
			h.CloseTime = ptr.Ptr(types.MustTimeString("11:00"))
		}
		hours = append(hours, h)
	}

	closed := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	return &snapshot.Snapshot{
		Restaurant:   &domain.Restaurant{ID: 1, IsActive: true},
		OpeningHours: hours,
		SpecialPeriods: []*domain.SpecialPeriod{
			{ID: 1, StartDate: closed, EndDate: closed, Reason: ptr.Ptr("private event")},
		},
		Tables: []*domain.Table{{ID: 1, Capacity: 4, IsActive: true}},
	}
}

func newUseCase(loader *mockLoader, metrics *countingMetrics, now time.Time) *UseCase {
	return NewUseCase(
		loader,
		availability.NewCalculator(availability.Options{}),
		metrics,
		0,
		4,
		logger.NewNop(),
	).WithTimeProvider(fixedTime{now: now})
}

func TestUseCase_Execute(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything, int64(1), june1, june30).Return(juneSnapshot(), nil).Once()
	metrics := &countingMetrics{results: map[string]int{}}

	uc := newUseCase(loader, metrics, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Month:        time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
		GuestCount:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, june1, resp.Month)
	require.Len(t, resp.Days, 30)

	for i, day := range resp.Days {
		assert.Equal(t, june1.AddDate(0, 0, i), day.Date, "days must be ordered")
	}

	monday := resp.Days[2] // 3 июня
	assert.False(t, monday.IsOpen)
	assert.Equal(t, domain.OutcomeClosed, monday.Outcome)
	assert.Equal(t, domain.ClosureReasonClosed, *monday.ClosureReason)

	event := resp.Days[11] // 12 июня
	assert.False(t, event.IsOpen)
	assert.Equal(t, "private event", *event.ClosureReason)

	open := resp.Days[13] // 14 июня, пятница
	assert.True(t, open.IsOpen)
	assert.Equal(t, 4, open.AvailableSlots)
	assert.Equal(t, "09:00", open.FirstAvailable.String())

	// в июне 2024 четыре понедельника и один особый день
	assert.Equal(t, 5, metrics.results[domain.OutcomeClosed])
	assert.Equal(t, 25, metrics.results[domain.OutcomeAvailable])
	loader.AssertExpectations(t)
}

func TestUseCase_Execute_PastDaysAreFullyBooked(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything, int64(1), june1, june30).Return(juneSnapshot(), nil).Once()
	metrics := &countingMetrics{results: map[string]int{}}

	uc := newUseCase(loader, metrics, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Month: june1, GuestCount: 2})

	require.NoError(t, err)

	saturday := resp.Days[14] // 15 июня, слоты до 11:00 уже прошли
	assert.True(t, saturday.IsOpen)
	assert.Equal(t, domain.OutcomeFullyBooked, saturday.Outcome)
	assert.Nil(t, saturday.FirstAvailable)

	sunday := resp.Days[15]
	assert.Equal(t, domain.OutcomeAvailable, sunday.Outcome)
}

func TestUseCase_Execute_RestaurantNotFound(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything, int64(404), june1, june30).Return(nil, snapshot.ErrRestaurantNotFound).Once()

	uc := newUseCase(loader, &countingMetrics{results: map[string]int{}}, june1)
	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 404, Month: june1, GuestCount: 2})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newUseCase(new(mockLoader), &countingMetrics{results: map[string]int{}}, june1)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Month: june1, GuestCount: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RestaurantID: 1, GuestCount: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RestaurantID: -1, Month: june1, GuestCount: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
