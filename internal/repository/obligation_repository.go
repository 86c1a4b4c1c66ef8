package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type ObligationRepository struct {
	db *gorm.DB
}

func NewObligationRepository(db *gorm.DB) *ObligationRepository {
	return &ObligationRepository{db: db}
}

func (r *ObligationRepository) Create(ctx context.Context, o model.Obligation) (*model.Obligation, error) {
	var saved model.Obligation
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO obligations (contract_id, clause_ref, description, due_date, status)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, contract_id, clause_ref, description, due_date, status,
			created_at, updated_at, is_deleted
	`, o.ContractID, o.ClauseRef, o.Description, o.DueDate, o.Status).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ObligationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Obligation, error) {
	var o model.Obligation
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, clause_ref, description, due_date, status,
			created_at, updated_at, is_deleted
		FROM obligations
		WHERE id = ? AND NOT is_deleted
		LIMIT 1
	`, id).Scan(&o).Error
	if err != nil {
		return nil, err
	}
	if o.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (r *ObligationRepository) ListForContract(ctx context.Context, contractID uuid.UUID) ([]model.Obligation, error) {
	var obligations []model.Obligation
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, clause_ref, description, due_date, status,
			created_at, updated_at, is_deleted
		FROM obligations
		WHERE contract_id = ? AND NOT is_deleted
		ORDER BY clause_ref ASC
	`, contractID).Scan(&obligations).Error
	if err != nil {
		return nil, err
	}
	return obligations, nil
}

func (r *ObligationRepository) Update(ctx context.Context, o model.Obligation) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE obligations
		SET clause_ref = ?, description = ?, due_date = ?, status = ?, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, o.ClauseRef, o.Description, o.DueDate, o.Status, o.ID)
	return res.RowsAffected > 0, res.Error
}

// SoftDelete cascades over the obligation's subtree: deliverables with their
// inspections, and non-compliances with their penalties. Evidence is not
// cascaded.
func (r *ObligationRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE obligations SET is_deleted = TRUE, updated_at = NOW()
			WHERE id = ? AND NOT is_deleted
		`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := tx.Exec(`
			UPDATE penalties SET is_deleted = TRUE, updated_at = NOW()
			WHERE non_compliance_id IN (
				SELECT id FROM non_compliances WHERE obligation_id = ?
			) AND NOT is_deleted
		`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE non_compliances SET is_deleted = TRUE, updated_at = NOW()
			WHERE obligation_id = ? AND NOT is_deleted
		`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE inspections SET is_deleted = TRUE, updated_at = NOW()
			WHERE deliverable_id IN (
				SELECT id FROM deliverables WHERE obligation_id = ?
			) AND NOT is_deleted
		`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE deliverables SET is_deleted = TRUE, updated_at = NOW()
			WHERE obligation_id = ? AND NOT is_deleted
		`, id).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *ObligationRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM obligations WHERE id = ? AND NOT is_deleted
	`, id).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
