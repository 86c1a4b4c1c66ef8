package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

type NonComplianceInput struct {
	Reason       string
	Severity     string
	RegisteredAt time.Time
}

type PenaltyInput struct {
	Type       string
	LegalBasis *string
	Amount     *decimal.Decimal
}

type NonComplianceService struct {
	nonCompliances *repository.NonComplianceRepository
	obligations    *repository.ObligationRepository
}

func NewNonComplianceService(
	nonCompliances *repository.NonComplianceRepository,
	obligations *repository.ObligationRepository,
) *NonComplianceService {
	return &NonComplianceService{nonCompliances: nonCompliances, obligations: obligations}
}

func (s *NonComplianceService) Register(ctx context.Context, obligationID uuid.UUID, input NonComplianceInput) (*NonComplianceDTO, error) {
	if strings.TrimSpace(input.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Severity) == "" {
		return nil, fmt.Errorf("%w: severity is required", ErrInvalidInput)
	}
	if input.RegisteredAt.IsZero() {
		return nil, fmt.Errorf("%w: registeredAt is required", ErrInvalidInput)
	}

	exists, err := s.obligations.Exists(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: obligation %s", ErrNotFound, obligationID)
	}

	saved, err := s.nonCompliances.Create(ctx, model.NonCompliance{
		ObligationID: obligationID,
		Reason:       input.Reason,
		Severity:     normalizeSeverity(input.Severity),
		RegisteredAt: input.RegisteredAt,
	})
	if err != nil {
		return nil, err
	}
	dto := nonComplianceDTO(saved)
	return &dto, nil
}

func (s *NonComplianceService) GetByID(ctx context.Context, id uuid.UUID) (*NonComplianceDTO, error) {
	nc, err := s.nonCompliances.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	dto := nonComplianceDTO(nc)

	penalty, err := s.nonCompliances.GetPenalty(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if penalty != nil {
		dto.Penalty = penaltyDTO(penalty)
	}
	return &dto, nil
}

func (s *NonComplianceService) ListForObligation(ctx context.Context, obligationID uuid.UUID) ([]NonComplianceDTO, error) {
	nonCompliances, err := s.nonCompliances.ListForObligation(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	result := make([]NonComplianceDTO, 0, len(nonCompliances))
	for i := range nonCompliances {
		result = append(result, nonComplianceDTO(&nonCompliances[i]))
	}
	return result, nil
}

func (s *NonComplianceService) Update(ctx context.Context, id uuid.UUID, input NonComplianceInput) error {
	if strings.TrimSpace(input.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Severity) == "" {
		return fmt.Errorf("%w: severity is required", ErrInvalidInput)
	}
	if input.RegisteredAt.IsZero() {
		return fmt.Errorf("%w: registeredAt is required", ErrInvalidInput)
	}

	updated, err := s.nonCompliances.Update(ctx, model.NonCompliance{
		ID:           id,
		Reason:       input.Reason,
		Severity:     normalizeSeverity(input.Severity),
		RegisteredAt: input.RegisteredAt,
	})
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *NonComplianceService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.nonCompliances.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ApplyPenalty attaches the single allowed penalty to a non-compliance. A
// second application is rejected with ErrConflict.
func (s *NonComplianceService) ApplyPenalty(ctx context.Context, nonComplianceID uuid.UUID, input PenaltyInput) (*PenaltyDTO, error) {
	if strings.TrimSpace(input.Type) == "" {
		return nil, fmt.Errorf("%w: penalty type is required", ErrInvalidInput)
	}
	if input.Amount != nil && input.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: penalty amount must not be negative", ErrInvalidInput)
	}

	if _, err := s.nonCompliances.GetByID(ctx, nonComplianceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	_, err := s.nonCompliances.GetPenalty(ctx, nonComplianceID)
	if err == nil {
		return nil, fmt.Errorf("%w: penalty already applied to non-compliance %s", ErrConflict, nonComplianceID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	saved, err := s.nonCompliances.CreatePenalty(ctx, model.Penalty{
		NonComplianceID: nonComplianceID,
		Type:            input.Type,
		LegalBasis:      input.LegalBasis,
		Amount:          input.Amount,
	})
	if err != nil {
		return nil, err
	}
	return penaltyDTO(saved), nil
}

func (s *NonComplianceService) GetPenalty(ctx context.Context, nonComplianceID uuid.UUID) (*PenaltyDTO, error) {
	penalty, err := s.nonCompliances.GetPenalty(ctx, nonComplianceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return penaltyDTO(penalty), nil
}

// normalizeSeverity folds known severity names to their canonical lowercase
// form and leaves unknown values as registered.
func normalizeSeverity(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if model.KnownSeverity(trimmed) {
		return strings.ToLower(trimmed)
	}
	return trimmed
}
