package table

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetActiveByRestaurant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM restaurant_tables WHERE is_active = \\$1 AND restaurant_id = \\$2 ORDER BY capacity ASC, id ASC").
		WithArgs(true, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "capacity", "is_active", "created_at", "updated_at"}).
			AddRow(int64(1), int64(7), "T1", int64(2), true, now, now).
			AddRow(int64(2), int64(7), "T2", int64(6), true, now, now))

	tables, err := NewRepository(db).GetActiveByRestaurant(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "T1", tables[0].Name)
	assert.Equal(t, 6, tables[1].Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
