package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/psqlbuilder"
)

// Repository репозиторий столов ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByRestaurant получает активные столы ресторана, упорядоченные по вместимости
func (r *Repository) GetActiveByRestaurant(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"name",
		"capacity",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "is_active": true}).
		OrderBy("capacity ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRestaurant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRestaurant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&t.ID,
			&t.RestaurantID,
			&t.Name,
			&t.Capacity,
			&t.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetActiveByRestaurant - scan table: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time
		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRestaurant - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
