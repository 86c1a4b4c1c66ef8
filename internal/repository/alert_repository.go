package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// DueDeliverableItem is the minimal projection the alert scan needs.
type DueDeliverableItem struct {
	ID           uuid.UUID
	ExpectedDate time.Time
}

// EndingContractItem is a contract whose term end falls inside the scan window.
type EndingContractItem struct {
	ID      uuid.UUID
	TermEnd time.Time
}

func (r *AlertRepository) ListDueDeliverables(ctx context.Context, soon time.Time) ([]DueDeliverableItem, error) {
	var items []DueDeliverableItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, expected_date
		FROM deliverables
		WHERE delivered_at IS NULL
			AND expected_date <= ?
			AND NOT is_deleted
		ORDER BY expected_date ASC
	`, soon).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AlertRepository) ListEndingContracts(ctx context.Context, soon time.Time) ([]EndingContractItem, error) {
	var items []EndingContractItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, term_end
		FROM contracts
		WHERE term_end <= ?
			AND NOT is_deleted
		ORDER BY term_end ASC
	`, soon).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// InsertBatch persists all staged alerts of one scan run in a single
// transaction, so a failure drops the whole batch and the next run retries.
func (r *AlertRepository) InsertBatch(ctx context.Context, alerts []model.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, alert := range alerts {
			if err := tx.Exec(`
				INSERT INTO alerts (message, contract_id, deliverable_id, target_date)
				VALUES (?, ?, ?, ?)
			`, alert.Message, alert.ContractID, alert.DeliverableID, alert.TargetDate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AlertRepository) List(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, message, contract_id, deliverable_id, target_date, created_at
		FROM alerts
		ORDER BY created_at DESC
	`).Scan(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
