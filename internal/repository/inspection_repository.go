package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) Create(ctx context.Context, i model.Inspection) (*model.Inspection, error) {
	var saved model.Inspection
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO inspections (deliverable_id, inspected_at, inspector, notes)
		VALUES (?, ?, ?, ?)
		RETURNING id, deliverable_id, inspected_at, inspector, notes,
			created_at, updated_at, is_deleted
	`, i.DeliverableID, i.InspectedAt, i.Inspector, i.Notes).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *InspectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Inspection, error) {
	var i model.Inspection
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, deliverable_id, inspected_at, inspector, notes,
			created_at, updated_at, is_deleted
		FROM inspections
		WHERE id = ? AND NOT is_deleted
		LIMIT 1
	`, id).Scan(&i).Error
	if err != nil {
		return nil, err
	}
	if i.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &i, nil
}

func (r *InspectionRepository) ListForDeliverable(ctx context.Context, deliverableID uuid.UUID) ([]model.Inspection, error) {
	var inspections []model.Inspection
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, deliverable_id, inspected_at, inspector, notes,
			created_at, updated_at, is_deleted
		FROM inspections
		WHERE deliverable_id = ? AND NOT is_deleted
		ORDER BY inspected_at ASC
	`, deliverableID).Scan(&inspections).Error
	if err != nil {
		return nil, err
	}
	return inspections, nil
}

func (r *InspectionRepository) Update(ctx context.Context, i model.Inspection) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE inspections
		SET inspected_at = ?, inspector = ?, notes = ?, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, i.InspectedAt, i.Inspector, i.Notes, i.ID)
	return res.RowsAffected > 0, res.Error
}

func (r *InspectionRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE inspections
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, id)
	return res.RowsAffected > 0, res.Error
}

func (r *InspectionRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM inspections WHERE id = ? AND NOT is_deleted
	`, id).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
