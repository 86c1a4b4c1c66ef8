package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type NonComplianceRepository struct {
	db *gorm.DB
}

func NewNonComplianceRepository(db *gorm.DB) *NonComplianceRepository {
	return &NonComplianceRepository{db: db}
}

func (r *NonComplianceRepository) Create(ctx context.Context, nc model.NonCompliance) (*model.NonCompliance, error) {
	var saved model.NonCompliance
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO non_compliances (obligation_id, reason, severity, registered_at)
		VALUES (?, ?, ?, ?)
		RETURNING id, obligation_id, reason, severity, registered_at,
			created_at, updated_at, is_deleted
	`, nc.ObligationID, nc.Reason, nc.Severity, nc.RegisteredAt).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *NonComplianceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.NonCompliance, error) {
	var nc model.NonCompliance
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, obligation_id, reason, severity, registered_at,
			created_at, updated_at, is_deleted
		FROM non_compliances
		WHERE id = ? AND NOT is_deleted
		LIMIT 1
	`, id).Scan(&nc).Error
	if err != nil {
		return nil, err
	}
	if nc.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &nc, nil
}

func (r *NonComplianceRepository) ListForObligation(ctx context.Context, obligationID uuid.UUID) ([]model.NonCompliance, error) {
	var records []model.NonCompliance
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, obligation_id, reason, severity, registered_at,
			created_at, updated_at, is_deleted
		FROM non_compliances
		WHERE obligation_id = ? AND NOT is_deleted
		ORDER BY registered_at DESC
	`, obligationID).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *NonComplianceRepository) Update(ctx context.Context, nc model.NonCompliance) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE non_compliances
		SET reason = ?, severity = ?, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, nc.Reason, nc.Severity, nc.ID)
	return res.RowsAffected > 0, res.Error
}

func (r *NonComplianceRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE non_compliances SET is_deleted = TRUE, updated_at = NOW()
			WHERE id = ? AND NOT is_deleted
		`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Exec(`
			UPDATE penalties SET is_deleted = TRUE, updated_at = NOW()
			WHERE non_compliance_id = ? AND NOT is_deleted
		`, id).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *NonComplianceRepository) GetPenalty(ctx context.Context, nonComplianceID uuid.UUID) (*model.Penalty, error) {
	var p model.Penalty
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, non_compliance_id, type, legal_basis, amount,
			created_at, updated_at, is_deleted
		FROM penalties
		WHERE non_compliance_id = ? AND NOT is_deleted
		LIMIT 1
	`, nonComplianceID).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *NonComplianceRepository) CreatePenalty(ctx context.Context, p model.Penalty) (*model.Penalty, error) {
	var saved model.Penalty
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO penalties (non_compliance_id, type, legal_basis, amount)
		VALUES (?, ?, ?, ?)
		RETURNING id, non_compliance_id, type, legal_basis, amount,
			created_at, updated_at, is_deleted
	`, p.NonComplianceID, p.Type, p.LegalBasis, p.Amount).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListForContract returns the non-compliances of every obligation under a
// contract, used by the contract details view.
func (r *NonComplianceRepository) ListForContract(ctx context.Context, contractID uuid.UUID) ([]model.NonCompliance, error) {
	var records []model.NonCompliance
	err := r.db.WithContext(ctx).Raw(`
		SELECT nc.id, nc.obligation_id, nc.reason, nc.severity, nc.registered_at,
			nc.created_at, nc.updated_at, nc.is_deleted
		FROM non_compliances nc
		JOIN obligations o ON o.id = nc.obligation_id
		WHERE o.contract_id = ? AND NOT nc.is_deleted AND NOT o.is_deleted
		ORDER BY nc.registered_at DESC
	`, contractID).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *NonComplianceRepository) ListPenaltiesForContract(ctx context.Context, contractID uuid.UUID) ([]model.Penalty, error) {
	var penalties []model.Penalty
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.non_compliance_id, p.type, p.legal_basis, p.amount,
			p.created_at, p.updated_at, p.is_deleted
		FROM penalties p
		JOIN non_compliances nc ON nc.id = p.non_compliance_id
		JOIN obligations o ON o.id = nc.obligation_id
		WHERE o.contract_id = ? AND NOT p.is_deleted AND NOT nc.is_deleted AND NOT o.is_deleted
	`, contractID).Scan(&penalties).Error
	if err != nil {
		return nil, err
	}
	return penalties, nil
}
