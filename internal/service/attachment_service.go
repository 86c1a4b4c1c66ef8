package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

type AttachmentDTO struct {
	ID         uuid.UUID `json:"id"`
	ContractID uuid.UUID `json:"contractId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AttachmentService struct {
	attachments *repository.AttachmentRepository
	contracts   *repository.ContractRepository
	files       FileStore
}

func NewAttachmentService(
	attachments *repository.AttachmentRepository,
	contracts *repository.ContractRepository,
	files FileStore,
) *AttachmentService {
	return &AttachmentService{attachments: attachments, contracts: contracts, files: files}
}

func (s *AttachmentService) Upload(ctx context.Context, contractID uuid.UUID, file FileUpload) (*AttachmentDTO, error) {
	if err := validateUpload(file, maxAttachmentSize); err != nil {
		return nil, err
	}

	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: contract %s", ErrNotFound, contractID)
	}

	storedName, err := s.files.Save(file.Reader, file.Name)
	if err != nil {
		return nil, err
	}

	saved, err := s.attachments.Create(ctx, model.Attachment{
		ContractID:  contractID,
		FileName:    file.Name,
		MimeType:    file.ContentType,
		StoragePath: storedName,
	})
	if err != nil {
		_ = s.files.Remove(storedName)
		return nil, err
	}
	return attachmentDTO(saved), nil
}

func (s *AttachmentService) ListForContract(ctx context.Context, contractID uuid.UUID) ([]AttachmentDTO, error) {
	attachments, err := s.attachments.ListForContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	result := make([]AttachmentDTO, 0, len(attachments))
	for i := range attachments {
		result = append(result, *attachmentDTO(&attachments[i]))
	}
	return result, nil
}

func (s *AttachmentService) GetByID(ctx context.Context, id uuid.UUID) (*AttachmentDTO, error) {
	attachment, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return attachmentDTO(attachment), nil
}

func (s *AttachmentService) Download(ctx context.Context, id uuid.UUID) (*StoredFile, error) {
	attachment, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &StoredFile{
		FileName: attachment.FileName,
		MimeType: attachment.MimeType,
		Path:     s.files.Path(attachment.StoragePath),
	}, nil
}

func (s *AttachmentService) Delete(ctx context.Context, id uuid.UUID) error {
	attachment, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	deleted, err := s.attachments.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return s.files.Remove(attachment.StoragePath)
}

func attachmentDTO(a *model.Attachment) *AttachmentDTO {
	return &AttachmentDTO{
		ID:         a.ID,
		ContractID: a.ContractID,
		FileName:   a.FileName,
		MimeType:   a.MimeType,
		CreatedAt:  a.CreatedAt,
	}
}
