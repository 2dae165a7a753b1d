package tests

import (
	"testing"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_UpdateOrderStatus(t *testing.T) {
	t.Run("row_changed", func(t *testing.T) {
		db, dbmock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbmock.ExpectExec("UPDATE orders SET status").
			WithArgs(domain.StatusReady, int64(100)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := storage.NewPostgresRepository(db)
		updated, err := repo.UpdateOrderStatus(100, domain.StatusReady)

		assert.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("unknown_id", func(t *testing.T) {
		db, dbmock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbmock.ExpectExec("UPDATE orders SET status").
			WithArgs(domain.StatusReady, int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := storage.NewPostgresRepository(db)
		updated, err := repo.UpdateOrderStatus(404, domain.StatusReady)

		assert.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestPostgresRepository_DeleteMenuItem(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbmock.ExpectExec("DELETE FROM menu_items").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := storage.NewPostgresRepository(db)
	deleted, err := repo.DeleteMenuItem(404)

	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostgresRepository_DeleteOrdersBetween(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)

	dbmock.ExpectExec("DELETE FROM orders WHERE created_at").
		WithArgs(start, end).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := storage.NewPostgresRepository(db)
	deleted, err := repo.DeleteOrdersBetween(start, end)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestPostgresRepository_SeedMenuIfEmpty_SkipsWhenpopulated(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbmock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))

	repo := storage.NewPostgresRepository(db)
	assert.NoError(t, repo.SeedMenuIfEmpty())
	assert.NoError(t, dbmock.ExpectationsWereMet())
}
