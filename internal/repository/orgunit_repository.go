package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type OrgUnitRepository struct {
	db *gorm.DB
}

func NewOrgUnitRepository(db *gorm.DB) *OrgUnitRepository {
	return &OrgUnitRepository{db: db}
}

func (r *OrgUnitRepository) Create(ctx context.Context, o model.OrgUnit) (*model.OrgUnit, error) {
	var saved model.OrgUnit
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO org_units (name, code)
		VALUES (?, ?)
		RETURNING id, name, code, created_at, updated_at, is_deleted
	`, o.Name, o.Code).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *OrgUnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.OrgUnit, error) {
	var o model.OrgUnit
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, code, created_at, updated_at, is_deleted
		FROM org_units
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

func (r *OrgUnitRepository) List(ctx context.Context) ([]model.OrgUnit, error) {
	var units []model.OrgUnit
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, code, created_at, updated_at, is_deleted
		FROM org_units
		WHERE NOT is_deleted
		ORDER BY name ASC
	`).Scan(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (r *OrgUnitRepository) Update(ctx context.Context, o model.OrgUnit) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE org_units
		SET name = ?, code = ?, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, o.Name, o.Code, o.ID)
	return res.RowsAffected > 0, res.Error
}

func (r *OrgUnitRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE org_units
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, id)
	return res.RowsAffected > 0, res.Error
}

func (r *OrgUnitRepository) ExistsByCode(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := `SELECT COUNT(*) FROM org_units WHERE code = ? AND NOT is_deleted`
	args := []interface{}{code}
	if excludeID != nil {
		query += ` AND id <> ?`
		args = append(args, *excludeID)
	}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *OrgUnitRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM org_units WHERE id = ? AND NOT is_deleted
	`, id).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
