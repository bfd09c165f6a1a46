package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/pkg/logger"
)

type mockRestaurantRepo struct{ mock.Mock }

func (m *mockRestaurantRepo) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) GetOpeningHours(ctx context.Context, restaurantID int64) ([]*domain.OpeningHours, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OpeningHours), args.Error(1)
}

func (m *mockScheduleRepo) GetSpecialPeriods(ctx context.Context, filter domain.SpecialPeriodsFilter) ([]*domain.SpecialPeriod, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SpecialPeriod), args.Error(1)
}

type mockTableRepo struct{ mock.Mock }

func (m *mockTableRepo) GetActiveByRestaurant(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Table), args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mocks struct {
	restaurants *mockRestaurantRepo
	schedule    *mockScheduleRepo
	tables      *mockTableRepo
	bookings    *mockBookingRepo
}

func newTestService() (*Service, mocks) {
	m := mocks{
		restaurants: new(mockRestaurantRepo),
		schedule:    new(mockScheduleRepo),
		tables:      new(mockTableRepo),
		bookings:    new(mockBookingRepo),
	}
	return NewService(m.restaurants, m.schedule, m.tables, m.bookings, logger.NewNop()), m
}

var (
	from = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
)

func TestService_Load(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	restaurant := &domain.Restaurant{ID: 1, IsActive: true, Timezone: "UTC"}
	hours := []*domain.OpeningHours{{ID: 1, DayOfWeek: 1, IsOpen: true}}
	periods := []*domain.SpecialPeriod{{ID: 2}}
	tables := []*domain.Table{{ID: 3, Capacity: 4, IsActive: true}}
	bookings := []*domain.Booking{{ID: 4, GuestCount: 2}}

	m.restaurants.On("GetByID", mock.Anything, int64(1)).Return(restaurant, nil).Once()
	m.schedule.On("GetOpeningHours", mock.Anything, int64(1)).Return(hours, nil).Once()
	m.schedule.On("GetSpecialPeriods", mock.Anything, domain.SpecialPeriodsFilter{
		RestaurantID: 1, From: &from, To: &to,
	}).Return(periods, nil).Once()
	m.tables.On("GetActiveByRestaurant", mock.Anything, int64(1)).Return(tables, nil).Once()
	m.bookings.On("GetByRestaurantWithFilter", mock.Anything, domain.RestaurantBookingsFilter{
		RestaurantID: 1, StartDate: &from, EndDate: &to,
	}).Return(bookings, nil).Once()

	snap, err := svc.Load(ctx, 1, from, to.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, restaurant, snap.Restaurant)
	assert.Equal(t, hours, snap.OpeningHours)
	assert.Equal(t, periods, snap.SpecialPeriods)
	assert.Equal(t, tables, snap.Tables)
	assert.Equal(t, bookings, snap.Bookings)
	assert.Equal(t, to, snap.To)

	m.restaurants.AssertExpectations(t)
	m.schedule.AssertExpectations(t)
	m.tables.AssertExpectations(t)
	m.bookings.AssertExpectations(t)
}

func TestService_Load_RestaurantNotFound(t *testing.T) {
	svc, m := newTestService()

	m.restaurants.On("GetByID", mock.Anything, int64(404)).Return(nil, restaurantRepo.ErrRestaurantNotFound).Once()

	_, err := svc.Load(context.Background(), 404, from, to)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	m.schedule.AssertNotCalled(t, "GetOpeningHours", mock.Anything, mock.Anything)
}

func TestService_Load_InactiveRestaurant(t *testing.T) {
	svc, m := newTestService()

	m.restaurants.On("GetByID", mock.Anything, int64(2)).Return(&domain.Restaurant{ID: 2, IsActive: false}, nil).Once()

	_, err := svc.Load(context.Background(), 2, from, to)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestService_Load_RepositoryError(t *testing.T) {
	svc, m := newTestService()

	m.restaurants.On("GetByID", mock.Anything, int64(1)).Return(&domain.Restaurant{ID: 1, IsActive: true}, nil).Once()
	m.schedule.On("GetOpeningHours", mock.Anything, int64(1)).Return(nil, errors.New("connection refused")).Once()
	m.schedule.On("GetSpecialPeriods", mock.Anything, mock.Anything).Return([]*domain.SpecialPeriod{}, nil).Maybe()
	m.tables.On("GetActiveByRestaurant", mock.Anything, int64(1)).Return([]*domain.Table{}, nil).Maybe()
	m.bookings.On("GetByRestaurantWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil).Maybe()

	_, err := svc.Load(context.Background(), 1, from, to)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_Load_InvalidRange(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.Load(context.Background(), 1, to, from)

	assert.ErrorIs(t, err, ErrInvalidRange)
	m.restaurants.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
