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

type EvidenceDTO struct {
	ID        uuid.UUID `json:"id"`
	OwnerKind string    `json:"ownerKind"`
	OwnerID   uuid.UUID `json:"ownerId"`
	FileName  string    `json:"fileName"`
	MimeType  string    `json:"mimeType"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type EvidenceService struct {
	evidences    *repository.EvidenceRepository
	deliverables *repository.DeliverableRepository
	inspections  *repository.InspectionRepository
	files        FileStore
}

func NewEvidenceService(
	evidences *repository.EvidenceRepository,
	deliverables *repository.DeliverableRepository,
	inspections *repository.InspectionRepository,
	files FileStore,
) *EvidenceService {
	return &EvidenceService{
		evidences:    evidences,
		deliverables: deliverables,
		inspections:  inspections,
		files:        files,
	}
}

func (s *EvidenceService) Upload(ctx context.Context, kind model.EvidenceOwnerKind, ownerID uuid.UUID, file FileUpload, notes *string) (*EvidenceDTO, error) {
	if err := validateUpload(file, maxEvidenceSize); err != nil {
		return nil, err
	}

	var exists bool
	var err error
	switch kind {
	case model.EvidenceOwnerDeliverable:
		exists, err = s.deliverables.Exists(ctx, ownerID)
	case model.EvidenceOwnerInspection:
		exists, err = s.inspections.Exists(ctx, ownerID)
	default:
		return nil, fmt.Errorf("%w: unknown evidence owner kind %q", ErrInvalidInput, kind)
	}
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, ownerID)
	}

	storedName, err := s.files.Save(file.Reader, file.Name)
	if err != nil {
		return nil, err
	}

	saved, err := s.evidences.Create(ctx, model.Evidence{
		OwnerKind:   kind,
		OwnerID:     ownerID,
		FileName:    file.Name,
		MimeType:    file.ContentType,
		StoragePath: storedName,
		Notes:       notes,
	})
	if err != nil {
		// The record never existed, so the stored file is orphaned.
		_ = s.files.Remove(storedName)
		return nil, err
	}
	return evidenceDTO(saved), nil
}

func (s *EvidenceService) ListForOwner(ctx context.Context, kind model.EvidenceOwnerKind, ownerID uuid.UUID) ([]EvidenceDTO, error) {
	if kind != model.EvidenceOwnerDeliverable && kind != model.EvidenceOwnerInspection {
		return nil, fmt.Errorf("%w: unknown evidence owner kind %q", ErrInvalidInput, kind)
	}
	evidences, err := s.evidences.ListForOwner(ctx, kind, ownerID)
	if err != nil {
		return nil, err
	}
	result := make([]EvidenceDTO, 0, len(evidences))
	for i := range evidences {
		result = append(result, *evidenceDTO(&evidences[i]))
	}
	return result, nil
}

func (s *EvidenceService) GetByID(ctx context.Context, id uuid.UUID) (*EvidenceDTO, error) {
	evidence, err := s.evidences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return evidenceDTO(evidence), nil
}

func (s *EvidenceService) Download(ctx context.Context, id uuid.UUID) (*StoredFile, error) {
	evidence, err := s.evidences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &StoredFile{
		FileName: evidence.FileName,
		MimeType: evidence.MimeType,
		Path:     s.files.Path(evidence.StoragePath),
	}, nil
}

func (s *EvidenceService) Delete(ctx context.Context, id uuid.UUID) error {
	evidence, err := s.evidences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	deleted, err := s.evidences.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return s.files.Remove(evidence.StoragePath)
}

func evidenceDTO(e *model.Evidence) *EvidenceDTO {
	return &EvidenceDTO{
		ID:        e.ID,
		OwnerKind: string(e.OwnerKind),
		OwnerID:   e.OwnerID,
		FileName:  e.FileName,
		MimeType:  e.MimeType,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}
