package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, a model.Attachment) (*model.Attachment, error) {
	var saved model.Attachment
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO attachments (contract_id, file_name, mime_type, storage_path)
		VALUES (?, ?, ?, ?)
		RETURNING id, contract_id, file_name, mime_type, storage_path,
			created_at, updated_at, is_deleted
	`, a.ContractID, a.FileName, a.MimeType, a.StoragePath).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Attachment, error) {
	var a model.Attachment
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, file_name, mime_type, storage_path,
			created_at, updated_at, is_deleted
		FROM attachments
		WHERE id = ? AND NOT is_deleted
		LIMIT 1
	`, id).Scan(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *AttachmentRepository) ListForContract(ctx context.Context, contractID uuid.UUID) ([]model.Attachment, error) {
	var attachments []model.Attachment
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, file_name, mime_type, storage_path,
			created_at, updated_at, is_deleted
		FROM attachments
		WHERE contract_id = ? AND NOT is_deleted
		ORDER BY file_name ASC
	`, contractID).Scan(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *AttachmentRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE attachments
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, id)
	return res.RowsAffected > 0, res.Error
}
