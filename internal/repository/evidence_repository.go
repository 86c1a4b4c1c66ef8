package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type EvidenceRepository struct {
	db *gorm.DB
}

func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository {
	return &EvidenceRepository{db: db}
}

func (r *EvidenceRepository) Create(ctx context.Context, e model.Evidence) (*model.Evidence, error) {
	var saved model.Evidence
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO evidences (owner_kind, owner_id, file_name, mime_type, storage_path, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, owner_kind, owner_id, file_name, mime_type, storage_path, notes,
			created_at, updated_at, is_deleted
	`, e.OwnerKind, e.OwnerID, e.FileName, e.MimeType, e.StoragePath, e.Notes).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *EvidenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Evidence, error) {
	var e model.Evidence
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, owner_kind, owner_id, file_name, mime_type, storage_path, notes,
			created_at, updated_at, is_deleted
		FROM evidences
		WHERE id = ? AND NOT is_deleted
		LIMIT 1
	`, id).Scan(&e).Error
	if err != nil {
		return nil, err
	}
	if e.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *EvidenceRepository) ListForOwner(ctx context.Context, kind model.EvidenceOwnerKind, ownerID uuid.UUID) ([]model.Evidence, error) {
	var evidences []model.Evidence
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, owner_kind, owner_id, file_name, mime_type, storage_path, notes,
			created_at, updated_at, is_deleted
		FROM evidences
		WHERE owner_kind = ? AND owner_id = ? AND NOT is_deleted
		ORDER BY file_name ASC
	`, kind, ownerID).Scan(&evidences).Error
	if err != nil {
		return nil, err
	}
	return evidences, nil
}

func (r *EvidenceRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE evidences
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, id)
	return res.RowsAffected > 0, res.Error
}
