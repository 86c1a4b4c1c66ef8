package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type DeliverableRepository struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

func (r *DeliverableRepository) Create(ctx context.Context, d model.Deliverable) (*model.Deliverable, error) {
	var saved model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO deliverables (obligation_id, expected_date, quantity, unit)
		VALUES (?, ?, ?, ?)
		RETURNING id, obligation_id, expected_date, quantity, unit, delivered_at,
			created_at, updated_at, is_deleted
	`, d.ObligationID, d.ExpectedDate, d.Quantity, d.Unit).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DeliverableRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Deliverable, error) {
	var d model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, obligation_id, expected_date, quantity, unit, delivered_at,
			created_at, updated_at, is_deleted
		FROM deliverables
		WHERE id = ? AND NOT is_deleted
		LIMIT 1
	`, id).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	if d.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *DeliverableRepository) ListForObligation(ctx context.Context, obligationID uuid.UUID) ([]model.Deliverable, error) {
	var deliverables []model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, obligation_id, expected_date, quantity, unit, delivered_at,
			created_at, updated_at, is_deleted
		FROM deliverables
		WHERE obligation_id = ? AND NOT is_deleted
		ORDER BY expected_date ASC
	`, obligationID).Scan(&deliverables).Error
	if err != nil {
		return nil, err
	}
	return deliverables, nil
}

func (r *DeliverableRepository) ListForContract(ctx context.Context, contractID uuid.UUID) ([]model.Deliverable, error) {
	var deliverables []model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.id, d.obligation_id, d.expected_date, d.quantity, d.unit, d.delivered_at,
			d.created_at, d.updated_at, d.is_deleted
		FROM deliverables d
		JOIN obligations o ON o.id = d.obligation_id
		WHERE o.contract_id = ? AND NOT d.is_deleted AND NOT o.is_deleted
		ORDER BY d.expected_date ASC
	`, contractID).Scan(&deliverables).Error
	if err != nil {
		return nil, err
	}
	return deliverables, nil
}

func (r *DeliverableRepository) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE deliverables
		SET delivered_at = ?, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, deliveredAt, id)
	return res.RowsAffected > 0, res.Error
}

func (r *DeliverableRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM deliverables WHERE id = ? AND NOT is_deleted
	`, id).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
