package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSupplierRepositoryGetByID(t *testing.T) {
	t.Run("returns a non-deleted supplier", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewSupplierRepository(db)

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "corporate_name", "tax_id", "active", "created_at", "updated_at", "is_deleted"}).
			AddRow(id, "ACME Ltda", "12.345.678/0001-90", true, time.Now(), nil, false)

		mock.ExpectQuery(`SELECT id, corporate_name, tax_id, active, created_at, updated_at, is_deleted\s+FROM suppliers\s+WHERE id = \$1 AND NOT is_deleted`).
			WithArgs(id).
			WillReturnRows(rows)

		supplier, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, supplier.ID)
		assert.Equal(t, "ACME Ltda", supplier.CorporateName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps an empty result to record not found", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewSupplierRepository(db)

		id := uuid.New()
		mock.ExpectQuery(`SELECT id, corporate_name, tax_id, active, created_at, updated_at, is_deleted\s+FROM suppliers`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "corporate_name", "tax_id", "active", "created_at", "updated_at", "is_deleted"}))

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestSupplierRepositoryExistsByTaxID(t *testing.T) {
	t.Run("without exclusion", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewSupplierRepository(db)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM suppliers WHERE tax_id = \$1 AND NOT is_deleted`).
			WithArgs("12.345.678/0001-90").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByTaxID(context.Background(), "12.345.678/0001-90", nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("excludes the record being updated", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewSupplierRepository(db)

		excludeID := uuid.New()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM suppliers WHERE tax_id = \$1 AND NOT is_deleted AND id <> \$2`).
			WithArgs("12.345.678/0001-90", excludeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByTaxID(context.Background(), "12.345.678/0001-90", &excludeID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestSupplierRepositorySoftDelete(t *testing.T) {
	t.Run("reports affected row", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewSupplierRepository(db)

		id := uuid.New()
		mock.ExpectExec(`UPDATE suppliers\s+SET is_deleted = TRUE`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.SoftDelete(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("reports nothing deleted for unknown id", func(t *testing.T) {
		db, mock, conn := newMockDB(t)
		defer conn.Close()
		repo := NewSupplierRepository(db)

		id := uuid.New()
		mock.ExpectExec(`UPDATE suppliers\s+SET is_deleted = TRUE`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.SoftDelete(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
