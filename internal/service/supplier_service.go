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

type SupplierDTO struct {
	ID            uuid.UUID `json:"id"`
	CorporateName string    `json:"corporateName"`
	TaxID         string    `json:"taxId"`
	Active        bool      `json:"active"`
}

type SupplierInput struct {
	CorporateName string
	TaxID         string
	Active        bool
}

type SupplierService struct {
	repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

func (s *SupplierService) Create(ctx context.Context, input SupplierInput) (*SupplierDTO, error) {
	if strings.TrimSpace(input.CorporateName) == "" {
		return nil, fmt.Errorf("%w: corporate name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.TaxID) == "" {
		return nil, fmt.Errorf("%w: tax id is required", ErrInvalidInput)
	}

	exists, err := s.repo.ExistsByTaxID(ctx, input.TaxID, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: tax id %s already registered", ErrConflict, input.TaxID)
	}

	saved, err := s.repo.Create(ctx, model.Supplier{
		CorporateName: input.CorporateName,
		TaxID:         input.TaxID,
		Active:        input.Active,
	})
	if err != nil {
		return nil, err
	}
	return supplierDTO(saved), nil
}

func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierDTO, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return supplierDTO(supplier), nil
}

func (s *SupplierService) List(ctx context.Context) ([]SupplierDTO, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]SupplierDTO, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, *supplierDTO(&suppliers[i]))
	}
	return result, nil
}

func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, input SupplierInput) error {
	if strings.TrimSpace(input.CorporateName) == "" {
		return fmt.Errorf("%w: corporate name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.TaxID) == "" {
		return fmt.Errorf("%w: tax id is required", ErrInvalidInput)
	}

	exists, err := s.repo.ExistsByTaxID(ctx, input.TaxID, &id)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: tax id %s already registered", ErrConflict, input.TaxID)
	}

	updated, err := s.repo.Update(ctx, model.Supplier{
		ID:            id,
		CorporateName: input.CorporateName,
		TaxID:         input.TaxID,
		Active:        input.Active,
	})
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func supplierDTO(s *model.Supplier) *SupplierDTO {
	return &SupplierDTO{
		ID:            s.ID,
		CorporateName: s.CorporateName,
		TaxID:         s.TaxID,
		Active:        s.Active,
	}
}
