package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/psqlbuilder"
)

const bookingsTable = "bookings"

// Колонки TIME читаются как текст, чтобы сохранить 24:00
var bookingColumns = []string{
	"id",
	"restaurant_id",
	"table_id",
	"booking_date",
	"start_time::text",
	"end_time::text",
	"guest_count",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований столов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRestaurantWithFilter получает бронирования ресторана с фильтрацией
// по периоду и статусу.
//
// Примеры использования:
//
// 1. Активные бронирования на дату:
//    filter := domain.RestaurantBookingsFilter{RestaurantID: 1, StartDate: &date, EndDate: &date}
//
// 2. Все бронирования за месяц, включая отмененные:
//    filter := domain.RestaurantBookingsFilter{RestaurantID: 1, StartDate: &first, EndDate: &last, IncludeInactive: true}
func (r *Repository) GetByRestaurantWithFilter(ctx context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Eq{"restaurant_id": filter.RestaurantID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Неактивные бронирования стол не занимают
	if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := selectBuilder.
		OrderBy("booking_date ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&b.ID,
			&b.RestaurantID,
			&b.TableID,
			&b.BookingDate,
			&b.StartTime,
			&b.EndTime,
			&b.GuestCount,
			&b.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan booking: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
