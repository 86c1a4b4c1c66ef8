package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/contractflow/backend/internal/repository"
)

func newMockNonComplianceService(t *testing.T) (*NonComplianceService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	svc := NewNonComplianceService(
		repository.NewNonComplianceRepository(gormDB),
		repository.NewObligationRepository(gormDB),
	)
	return svc, mock, mockDB
}

func nonComplianceRows(id, obligationID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "obligation_id", "reason", "severity", "registered_at",
		"created_at", "updated_at", "is_deleted",
	}).AddRow(id, obligationID, "missed delivery", "high", time.Now(), time.Now(), nil, false)
}

func penaltyColumns() []string {
	return []string{
		"id", "non_compliance_id", "type", "legal_basis", "amount",
		"created_at", "updated_at", "is_deleted",
	}
}

func TestApplyPenalty(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the first penalty", func(t *testing.T) {
		svc, mock, conn := newMockNonComplianceService(t)
		defer conn.Close()

		ncID := uuid.New()
		amount := decimal.NewFromFloat(1500.50)

		mock.ExpectQuery(`SELECT id, obligation_id, reason, severity, registered_at`).
			WithArgs(ncID).
			WillReturnRows(nonComplianceRows(ncID, uuid.New()))
		mock.ExpectQuery(`SELECT id, non_compliance_id, type, legal_basis, amount`).
			WithArgs(ncID).
			WillReturnRows(sqlmock.NewRows(penaltyColumns()))
		mock.ExpectQuery(`INSERT INTO penalties`).
			WillReturnRows(sqlmock.NewRows(penaltyColumns()).
				AddRow(uuid.New(), ncID, "fine", nil, amount, time.Now(), nil, false))

		penalty, err := svc.ApplyPenalty(ctx, ncID, PenaltyInput{Type: "fine", Amount: &amount})
		require.NoError(t, err)
		assert.Equal(t, "fine", penalty.Type)
		require.NotNil(t, penalty.Amount)
		assert.True(t, amount.Equal(*penalty.Amount))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a second penalty with conflict", func(t *testing.T) {
		svc, mock, conn := newMockNonComplianceService(t)
		defer conn.Close()

		ncID := uuid.New()
		mock.ExpectQuery(`SELECT id, obligation_id, reason, severity, registered_at`).
			WithArgs(ncID).
			WillReturnRows(nonComplianceRows(ncID, uuid.New()))
		mock.ExpectQuery(`SELECT id, non_compliance_id, type, legal_basis, amount`).
			WithArgs(ncID).
			WillReturnRows(sqlmock.NewRows(penaltyColumns()).
				AddRow(uuid.New(), ncID, "warning", nil, nil, time.Now(), nil, false))

		_, err := svc.ApplyPenalty(ctx, ncID, PenaltyInput{Type: "fine"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown non-compliance yields not found", func(t *testing.T) {
		svc, mock, conn := newMockNonComplianceService(t)
		defer conn.Close()

		ncID := uuid.New()
		mock.ExpectQuery(`SELECT id, obligation_id, reason, severity, registered_at`).
			WithArgs(ncID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "obligation_id", "reason", "severity", "registered_at",
				"created_at", "updated_at", "is_deleted",
			}))

		_, err := svc.ApplyPenalty(ctx, ncID, PenaltyInput{Type: "fine"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects empty type without touching the store", func(t *testing.T) {
		svc, _, conn := newMockNonComplianceService(t)
		defer conn.Close()

		_, err := svc.ApplyPenalty(ctx, uuid.New(), PenaltyInput{Type: "  "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		svc, _, conn := newMockNonComplianceService(t)
		defer conn.Close()

		negative := decimal.NewFromInt(-10)
		_, err := svc.ApplyPenalty(ctx, uuid.New(), PenaltyInput{Type: "fine", Amount: &negative})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestNormalizeSeverity(t *testing.T) {
	assert.Equal(t, "high", normalizeSeverity(" HIGH "))
	assert.Equal(t, "critical", normalizeSeverity("Critical"))
	assert.Equal(t, "contractual breach", normalizeSeverity("contractual breach"))
}
