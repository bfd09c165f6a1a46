package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/psqlbuilder"
)

// Repository репозиторий ресторанов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"timezone",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var restaurant domain.Restaurant
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Timezone,
		&restaurant.IsActive,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return &restaurant, nil
}
