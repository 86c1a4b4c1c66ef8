package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

type CreateDeliverableInput struct {
	ExpectedDate time.Time
	Quantity     decimal.Decimal
	Unit         string
}

type DeliverableService struct {
	deliverables *repository.DeliverableRepository
	obligations  *repository.ObligationRepository
}

func NewDeliverableService(deliverables *repository.DeliverableRepository, obligations *repository.ObligationRepository) *DeliverableService {
	return &DeliverableService{deliverables: deliverables, obligations: obligations}
}

func (s *DeliverableService) Create(ctx context.Context, obligationID uuid.UUID, input CreateDeliverableInput) (*DeliverableDTO, error) {
	if input.ExpectedDate.IsZero() {
		return nil, fmt.Errorf("%w: expected date is required", ErrInvalidInput)
	}
	if input.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if input.Unit == "" {
		return nil, fmt.Errorf("%w: unit is required", ErrInvalidInput)
	}

	exists, err := s.obligations.Exists(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: obligation %s", ErrNotFound, obligationID)
	}

	saved, err := s.deliverables.Create(ctx, model.Deliverable{
		ObligationID: obligationID,
		ExpectedDate: input.ExpectedDate,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
	})
	if err != nil {
		return nil, err
	}
	dto := deliverableDTO(saved)
	return &dto, nil
}

func (s *DeliverableService) GetByID(ctx context.Context, id uuid.UUID) (*DeliverableDTO, error) {
	deliverable, err := s.deliverables.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	dto := deliverableDTO(deliverable)
	return &dto, nil
}

func (s *DeliverableService) ListForContract(ctx context.Context, contractID uuid.UUID) ([]DeliverableDTO, error) {
	deliverables, err := s.deliverables.ListForContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	result := make([]DeliverableDTO, 0, len(deliverables))
	for i := range deliverables {
		result = append(result, deliverableDTO(&deliverables[i]))
	}
	return result, nil
}

func (s *DeliverableService) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return fmt.Errorf("%w: delivered at is required", ErrInvalidInput)
	}
	updated, err := s.deliverables.MarkDelivered(ctx, id, deliveredAt)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}
