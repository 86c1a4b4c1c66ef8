package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

type OrgUnitDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code *string   `json:"code,omitempty"`
}

type OrgUnitInput struct {
	Name string
	Code *string
}

type OrgUnitService struct {
	repo *repository.OrgUnitRepository
}

func NewOrgUnitService(repo *repository.OrgUnitRepository) *OrgUnitService {
	return &OrgUnitService{repo: repo}
}

func (s *OrgUnitService) Create(ctx context.Context, input OrgUnitInput) (*OrgUnitDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.checkCode(ctx, input.Code, nil); err != nil {
		return nil, err
	}

	saved, err := s.repo.Create(ctx, model.OrgUnit{Name: input.Name, Code: input.Code})
	if err != nil {
		return nil, err
	}
	return orgUnitDTO(saved), nil
}

func (s *OrgUnitService) GetByID(ctx context.Context, id uuid.UUID) (*OrgUnitDTO, error) {
	unit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return orgUnitDTO(unit), nil
}

func (s *OrgUnitService) List(ctx context.Context) ([]OrgUnitDTO, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]OrgUnitDTO, 0, len(units))
	for i := range units {
		result = append(result, *orgUnitDTO(&units[i]))
	}
	return result, nil
}

func (s *OrgUnitService) Update(ctx context.Context, id uuid.UUID, input OrgUnitInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.checkCode(ctx, input.Code, &id); err != nil {
		return err
	}

	updated, err := s.repo.Update(ctx, model.OrgUnit{ID: id, Name: input.Name, Code: input.Code})
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *OrgUnitService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *OrgUnitService) checkCode(ctx context.Context, code *string, excludeID *uuid.UUID) error {
	if code == nil || strings.TrimSpace(*code) == "" {
		return nil
	}
	exists, err := s.repo.ExistsByCode(ctx, *code, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: code %s already in use", ErrConflict, *code)
	}
	return nil
}

func orgUnitDTO(o *model.OrgUnit) *OrgUnitDTO {
	return &OrgUnitDTO{ID: o.ID, Name: o.Name, Code: o.Code}
}
