package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

var columns = []string{
	"id", "restaurant_id", "table_id", "booking_date", "start_time", "end_time",
	"guest_count", "status", "created_at", "updated_at",
}

func TestRepository_GetByRestaurantWithFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	created := date.Add(-48 * time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE restaurant_id = \\$1 AND booking_date >= \\$2 AND booking_date <= \\$3 AND status NOT IN").
		WithArgs(int64(1), date, date, "cancelled", "no_show").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(10), int64(1), int64(3), date, "19:00:00", "21:00:00", int64(4), "confirmed", created, created).
			AddRow(int64(11), int64(1), nil, date, "23:30:00", nil, int64(2), "pending", created, created))

	repo := NewRepository(db)
	bookings, err := repo.GetByRestaurantWithFilter(context.Background(), domain.RestaurantBookingsFilter{
		RestaurantID: 1,
		StartDate:    &date,
		EndDate:      &date,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, int64(3), *bookings[0].TableID)
	assert.Equal(t, "19:00", bookings[0].StartTime.String())
	assert.Equal(t, "21:00", bookings[0].EndTime.String())
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)

	assert.Nil(t, bookings[1].TableID)
	assert.Nil(t, bookings[1].EndTime)
	assert.Equal(t, "24:00", bookings[1].EffectiveEnd(domain.DefaultBookingMinutes).String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByRestaurantWithFilter_IncludeInactive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE restaurant_id = \\$1 ORDER BY").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns))

	bookings, err := NewRepository(db).GetByRestaurantWithFilter(context.Background(), domain.RestaurantBookingsFilter{
		RestaurantID:    1,
		IncludeInactive: true,
	})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByRestaurantWithFilter_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WillReturnError(errors.New("connection reset"))

	_, err = NewRepository(db).GetByRestaurantWithFilter(context.Background(), domain.RestaurantBookingsFilter{RestaurantID: 1})

	assert.ErrorIs(t, err, ErrExecQuery)
}
