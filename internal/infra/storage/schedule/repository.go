package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/psqlbuilder"
)

const (
	openingHoursTable   = "opening_hours"
	specialPeriodsTable = "special_periods"

	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// Колонки TIME читаются как текст, чтобы сохранить 24:00
var openingHoursColumns = []string{
	"id",
	"restaurant_id",
	"day_of_week",
	"is_open",
	"open_time::text",
	"close_time::text",
}

var specialPeriodColumns = []string{
	"id",
	"restaurant_id",
	"start_date",
	"end_date",
	"is_open",
	"open_time::text",
	"close_time::text",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий расписания ресторана: недельные часы работы и особые периоды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOpeningHours получает недельное расписание ресторана
func (r *Repository) GetOpeningHours(ctx context.Context, restaurantID int64) ([]*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(openingHoursColumns...).
		From(openingHoursTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("day_of_week ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.OpeningHours, 0, domain.DaysPerWeek)
	for rows.Next() {
		var h domain.OpeningHours
		if err := rows.Scan(
			&h.ID,
			&h.RestaurantID,
			&h.DayOfWeek,
			&h.IsOpen,
			&h.OpenTime,
			&h.CloseTime,
		); err != nil {
			return nil, fmt.Errorf("%w: GetOpeningHours - scan opening hours: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ReplaceOpeningHours заменяет недельное расписание ресторана целиком.
// Удаление и вставка должны выполняться в одной транзакции (txmanager.Do).
func (r *Repository) ReplaceOpeningHours(ctx context.Context, restaurantID int64, hours []*domain.OpeningHours) ([]*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(openingHoursTable).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceOpeningHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceOpeningHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return []*domain.OpeningHours{}, nil
	}

	insertBuilder := psqlbuilder.Insert(openingHoursTable).
		Columns("restaurant_id", "day_of_week", "is_open", "open_time", "close_time")
	for _, h := range hours {
		insertBuilder = insertBuilder.Values(restaurantID, h.DayOfWeek, h.IsOpen, h.OpenTime, h.CloseTime)
	}

	insertQuery, insertArgs, err := insertBuilder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceOpeningHours - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return nil, mapWriteError("ReplaceOpeningHours", err)
	}
	defer rows.Close()

	saved := make([]*domain.OpeningHours, 0, len(hours))
	for i := 0; rows.Next(); i++ {
		if i >= len(hours) {
			break
		}
		h := *hours[i]
		h.RestaurantID = restaurantID
		if err := rows.Scan(&h.ID); err != nil {
			return nil, fmt.Errorf("%w: ReplaceOpeningHours - scan id: %v", ErrScanRow, err)
		}
		saved = append(saved, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, mapWriteError("ReplaceOpeningHours", err)
	}

	return saved, nil
}

// GetSpecialPeriods получает особые периоды ресторана, пересекающиеся с [From, To].
// Внутри транзакции строки блокируются (FOR UPDATE) для проверки пересечений при создании.
func (r *Repository) GetSpecialPeriods(ctx context.Context, filter domain.SpecialPeriodsFilter) ([]*domain.SpecialPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(specialPeriodColumns...).
		From(specialPeriodsTable).
		Where(squirrel.Eq{"restaurant_id": filter.RestaurantID})

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.To})
	}

	selectBuilder = selectBuilder.OrderBy("start_date ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialPeriods - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialPeriods - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.SpecialPeriod, 0)
	for rows.Next() {
		var p domain.SpecialPeriod
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&p.ID,
			&p.RestaurantID,
			&p.StartDate,
			&p.EndDate,
			&p.IsOpen,
			&p.OpenTime,
			&p.CloseTime,
			&p.Reason,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetSpecialPeriods - scan special period: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time
		periods = append(periods, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSpecialPeriods - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

// CreateSpecialPeriod создает особый период
func (r *Repository) CreateSpecialPeriod(ctx context.Context, period *domain.SpecialPeriod) (*domain.SpecialPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(specialPeriodsTable).
		Columns(
			"restaurant_id",
			"start_date",
			"end_date",
			"is_open",
			"open_time",
			"close_time",
			"reason",
		).
		Values(
			period.RestaurantID,
			period.StartDate,
			period.EndDate,
			period.IsOpen,
			period.OpenTime,
			period.CloseTime,
			period.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSpecialPeriod - build insert query: %v", ErrBuildQuery, err)
	}

	created := *period
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, mapWriteError("CreateSpecialPeriod", err)
	}

	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time

	return &created, nil
}

// DeleteSpecialPeriod удаляет особый период ресторана
func (r *Repository) DeleteSpecialPeriod(ctx context.Context, restaurantID, periodID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(specialPeriodsTable).
		Where(squirrel.Eq{"id": periodID, "restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialPeriod - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialPeriod - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialPeriod - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpecialPeriodNotFound
	}

	return nil
}

// mapWriteError переводит ошибки PostgreSQL в ошибки репозитория
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return ErrRestaurantNotFound
		case pqUniqueViolation:
			return ErrDuplicateWeekday
		}
	}
	return fmt.Errorf("%w: %s - execute insert: %v", ErrExecQuery, op, err)
}
