package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s model.Supplier) (*model.Supplier, error) {
	var saved model.Supplier
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO suppliers (corporate_name, tax_id, active)
		VALUES (?, ?, ?)
		RETURNING id, corporate_name, tax_id, active, created_at, updated_at, is_deleted
	`, s.CorporateName, s.TaxID, s.Active).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, corporate_name, tax_id, active, created_at, updated_at, is_deleted
		FROM suppliers
		WHERE id = ? AND NOT is_deleted
		LIMIT 1
	`, id).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, corporate_name, tax_id, active, created_at, updated_at, is_deleted
		FROM suppliers
		WHERE NOT is_deleted
		ORDER BY corporate_name ASC
	`).Scan(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) Update(ctx context.Context, s model.Supplier) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE suppliers
		SET corporate_name = ?, tax_id = ?, active = ?, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, s.CorporateName, s.TaxID, s.Active, s.ID)
	return res.RowsAffected > 0, res.Error
}

func (r *SupplierRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE suppliers
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, id)
	return res.RowsAffected > 0, res.Error
}

// ExistsByTaxID reports whether another non-deleted supplier already uses the
// tax id. excludeID skips the record being updated.
func (r *SupplierRepository) ExistsByTaxID(ctx context.Context, taxID string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := `SELECT COUNT(*) FROM suppliers WHERE tax_id = ? AND NOT is_deleted`
	args := []interface{}{taxID}
	if excludeID != nil {
		query += ` AND id <> ?`
		args = append(args, *excludeID)
	}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SupplierRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM suppliers WHERE id = ? AND NOT is_deleted
	`, id).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
