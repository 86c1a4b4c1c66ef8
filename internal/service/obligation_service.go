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

type ObligationDTO struct {
	ID          uuid.UUID  `json:"id"`
	ContractID  uuid.UUID  `json:"contractId"`
	ClauseRef   string     `json:"clauseRef"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status"`
}

type ObligationInput struct {
	ClauseRef   string
	Description string
	DueDate     *time.Time
	Status      string
}

type ObligationService struct {
	obligations *repository.ObligationRepository
	contracts   *repository.ContractRepository
}

func NewObligationService(obligations *repository.ObligationRepository, contracts *repository.ContractRepository) *ObligationService {
	return &ObligationService{obligations: obligations, contracts: contracts}
}

func (s *ObligationService) Create(ctx context.Context, contractID uuid.UUID, input ObligationInput) (*ObligationDTO, error) {
	if strings.TrimSpace(input.ClauseRef) == "" {
		return nil, fmt.Errorf("%w: clause ref is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: contract %s", ErrNotFound, contractID)
	}

	status := input.Status
	if status == "" {
		status = "Pending"
	}

	saved, err := s.obligations.Create(ctx, model.Obligation{
		ContractID:  contractID,
		ClauseRef:   input.ClauseRef,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}
	return obligationDTO(saved), nil
}

func (s *ObligationService) GetByID(ctx context.Context, id uuid.UUID) (*ObligationDTO, error) {
	obligation, err := s.obligations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return obligationDTO(obligation), nil
}

func (s *ObligationService) ListForContract(ctx context.Context, contractID uuid.UUID) ([]ObligationDTO, error) {
	obligations, err := s.obligations.ListForContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	result := make([]ObligationDTO, 0, len(obligations))
	for i := range obligations {
		result = append(result, *obligationDTO(&obligations[i]))
	}
	return result, nil
}

func (s *ObligationService) Update(ctx context.Context, id uuid.UUID, input ObligationInput) error {
	if strings.TrimSpace(input.ClauseRef) == "" {
		return fmt.Errorf("%w: clause ref is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Status) == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	updated, err := s.obligations.Update(ctx, model.Obligation{
		ID:          id,
		ClauseRef:   input.ClauseRef,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      input.Status,
	})
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *ObligationService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.obligations.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func obligationDTO(o *model.Obligation) *ObligationDTO {
	return &ObligationDTO{
		ID:          o.ID,
		ContractID:  o.ContractID,
		ClauseRef:   o.ClauseRef,
		Description: o.Description,
		DueDate:     o.DueDate,
		Status:      o.Status,
	}
}
