package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

type InspectionDTO struct {
	ID            uuid.UUID `json:"id"`
	DeliverableID uuid.UUID `json:"deliverableId"`
	Date          time.Time `json:"date"`
	Inspector     string    `json:"inspector"`
	Notes         *string   `json:"notes,omitempty"`
}

type InspectionInput struct {
	Date      time.Time
	Inspector string
	Notes     *string
}

type InspectionService struct {
	inspections  *repository.InspectionRepository
	deliverables *repository.DeliverableRepository
}

func NewInspectionService(inspections *repository.InspectionRepository, deliverables *repository.DeliverableRepository) *InspectionService {
	return &InspectionService{inspections: inspections, deliverables: deliverables}
}

func (s *InspectionService) Create(ctx context.Context, deliverableID uuid.UUID, input InspectionInput) (*InspectionDTO, error) {
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Inspector) == "" {
		return nil, fmt.Errorf("%w: inspector is required", ErrInvalidInput)
	}

	exists, err := s.deliverables.Exists(ctx, deliverableID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: deliverable %s", ErrNotFound, deliverableID)
	}

	saved, err := s.inspections.Create(ctx, model.Inspection{
		DeliverableID: deliverableID,
		InspectedAt:   input.Date,
		Inspector:     input.Inspector,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, err
	}
	return inspectionDTO(saved), nil
}

func (s *InspectionService) GetByID(ctx context.Context, id uuid.UUID) (*InspectionDTO, error) {
	inspection, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inspectionDTO(inspection), nil
}

func (s *InspectionService) ListForDeliverable(ctx context.Context, deliverableID uuid.UUID) ([]InspectionDTO, error) {
	inspections, err := s.inspections.ListForDeliverable(ctx, deliverableID)
	if err != nil {
		return nil, err
	}
	result := make([]InspectionDTO, 0, len(inspections))
	for i := range inspections {
		result = append(result, *inspectionDTO(&inspections[i]))
	}
	return result, nil
}

func (s *InspectionService) Update(ctx context.Context, id uuid.UUID, input InspectionInput) error {
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Inspector) == "" {
		return fmt.Errorf("%w: inspector is required", ErrInvalidInput)
	}

	updated, err := s.inspections.Update(ctx, model.Inspection{
		ID:          id,
		InspectedAt: input.Date,
		Inspector:   input.Inspector,
		Notes:       input.Notes,
	})
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *InspectionService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.inspections.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func inspectionDTO(i *model.Inspection) *InspectionDTO {
	return &InspectionDTO{
		ID:            i.ID,
		DeliverableID: i.DeliverableID,
		Date:          i.InspectedAt,
		Inspector:     i.Inspector,
		Notes:         i.Notes,
	}
}
