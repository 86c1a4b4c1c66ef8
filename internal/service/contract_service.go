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

// PDFGenerator renders a contract summary document.
type PDFGenerator interface {
	Summary(summary model.ContractSummary) ([]byte, error)
}

type ContractListItemDTO struct {
	ID             uuid.UUID `json:"id"`
	OfficialNumber string    `json:"officialNumber"`
	Status         string    `json:"status"`
}

type DeliverableDTO struct {
	ID           uuid.UUID       `json:"id"`
	ObligationID uuid.UUID       `json:"obligationId"`
	ExpectedDate time.Time       `json:"expectedDate"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	DeliveredAt  *time.Time      `json:"deliveredAt,omitempty"`
}

type PenaltyDTO struct {
	ID         uuid.UUID        `json:"id"`
	Type       string           `json:"type"`
	LegalBasis *string          `json:"legalBasis,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

type NonComplianceDTO struct {
	ID           uuid.UUID   `json:"id"`
	ObligationID uuid.UUID   `json:"obligationId"`
	Reason       string      `json:"reason"`
	Severity     string      `json:"severity"`
	RegisteredAt time.Time   `json:"registeredAt"`
	Penalty      *PenaltyDTO `json:"penalty,omitempty"`
}

type ObligationDetailDTO struct {
	ID             uuid.UUID          `json:"id"`
	ClauseRef      string             `json:"clauseRef"`
	Description    string             `json:"description"`
	DueDate        *time.Time         `json:"dueDate,omitempty"`
	Status         string             `json:"status"`
	Deliverables   []DeliverableDTO   `json:"deliverables"`
	NonCompliances []NonComplianceDTO `json:"nonCompliances"`
}

type ContractDetailsDTO struct {
	ID                    uuid.UUID             `json:"id"`
	OfficialNumber        string                `json:"officialNumber"`
	AdministrativeProcess *string               `json:"administrativeProcess,omitempty"`
	Type                  string                `json:"type"`
	Modality              string                `json:"modality"`
	Status                string                `json:"status"`
	TermStart             time.Time             `json:"termStart"`
	TermEnd               time.Time             `json:"termEnd"`
	TotalAmount           decimal.Decimal       `json:"totalAmount"`
	Currency              string                `json:"currency"`
	SupplierID            uuid.UUID             `json:"supplierId"`
	SupplierName          string                `json:"supplierName"`
	SupplierTaxID         string                `json:"supplierTaxId"`
	OrgUnitID             uuid.UUID             `json:"orgUnitId"`
	OrgUnitName           string                `json:"orgUnitName"`
	OrgUnitCode           *string               `json:"orgUnitCode,omitempty"`
	Obligations           []ObligationDetailDTO `json:"obligations"`
}

type CreateContractInput struct {
	OfficialNumber        string
	AdministrativeProcess *string
	SupplierID            uuid.UUID
	OrgUnitID             uuid.UUID
	Type                  string
	Modality              string
	TermStart             time.Time
	TermEnd               time.Time
	TotalAmount           decimal.Decimal
	Currency              string
}

type ContractService struct {
	contracts      *repository.ContractRepository
	suppliers      *repository.SupplierRepository
	orgUnits       *repository.OrgUnitRepository
	obligations    *repository.ObligationRepository
	deliverables   *repository.DeliverableRepository
	nonCompliances *repository.NonComplianceRepository
	pdf            PDFGenerator
}

func NewContractService(
	contracts *repository.ContractRepository,
	suppliers *repository.SupplierRepository,
	orgUnits *repository.OrgUnitRepository,
	obligations *repository.ObligationRepository,
	deliverables *repository.DeliverableRepository,
	nonCompliances *repository.NonComplianceRepository,
	pdf PDFGenerator,
) *ContractService {
	return &ContractService{
		contracts:      contracts,
		suppliers:      suppliers,
		orgUnits:       orgUnits,
		obligations:    obligations,
		deliverables:   deliverables,
		nonCompliances: nonCompliances,
		pdf:            pdf,
	}
}

func (s *ContractService) Create(ctx context.Context, input CreateContractInput) (uuid.UUID, error) {
	if strings.TrimSpace(input.OfficialNumber) == "" {
		return uuid.Nil, fmt.Errorf("%w: official number is required", ErrInvalidInput)
	}
	contractType, err := model.ParseContractType(input.Type)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	modality, err := model.ParseContractModality(input.Modality)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := model.ValidateTerm(input.TermStart, input.TermEnd); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.TotalAmount.IsNegative() {
		return uuid.Nil, fmt.Errorf("%w: total amount must not be negative", ErrInvalidInput)
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "BRL"
	}

	supplierExists, err := s.suppliers.Exists(ctx, input.SupplierID)
	if err != nil {
		return uuid.Nil, err
	}
	if !supplierExists {
		return uuid.Nil, fmt.Errorf("%w: supplier %s", ErrNotFound, input.SupplierID)
	}
	orgUnitExists, err := s.orgUnits.Exists(ctx, input.OrgUnitID)
	if err != nil {
		return uuid.Nil, err
	}
	if !orgUnitExists {
		return uuid.Nil, fmt.Errorf("%w: org unit %s", ErrNotFound, input.OrgUnitID)
	}

	duplicate, err := s.contracts.ExistsByOfficialNumber(ctx, input.OfficialNumber)
	if err != nil {
		return uuid.Nil, err
	}
	if duplicate {
		return uuid.Nil, fmt.Errorf("%w: official number %s already in use", ErrConflict, input.OfficialNumber)
	}

	saved, err := s.contracts.Create(ctx, model.Contract{
		OfficialNumber:        input.OfficialNumber,
		AdministrativeProcess: input.AdministrativeProcess,
		SupplierID:            input.SupplierID,
		OrgUnitID:             input.OrgUnitID,
		Type:                  contractType,
		Modality:              modality,
		Status:                model.ContractStatusActive,
		TermStart:             input.TermStart,
		TermEnd:               input.TermEnd,
		TotalAmount:           input.TotalAmount,
		Currency:              currency,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return saved.ID, nil
}

func (s *ContractService) GetDetails(ctx context.Context, id uuid.UUID) (*ContractDetailsDTO, error) {
	header, err := s.contracts.GetHeader(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	obligations, err := s.obligations.ListForContract(ctx, id)
	if err != nil {
		return nil, err
	}
	deliverables, err := s.deliverables.ListForContract(ctx, id)
	if err != nil {
		return nil, err
	}
	nonCompliances, err := s.nonCompliances.ListForContract(ctx, id)
	if err != nil {
		return nil, err
	}
	penalties, err := s.nonCompliances.ListPenaltiesForContract(ctx, id)
	if err != nil {
		return nil, err
	}

	deliverablesByObligation := make(map[uuid.UUID][]DeliverableDTO)
	for _, d := range deliverables {
		deliverablesByObligation[d.ObligationID] = append(deliverablesByObligation[d.ObligationID], deliverableDTO(&d))
	}
	penaltiesByNonCompliance := make(map[uuid.UUID]*PenaltyDTO, len(penalties))
	for i := range penalties {
		penaltiesByNonCompliance[penalties[i].NonComplianceID] = penaltyDTO(&penalties[i])
	}
	nonCompliancesByObligation := make(map[uuid.UUID][]NonComplianceDTO)
	for i := range nonCompliances {
		nc := nonComplianceDTO(&nonCompliances[i])
		nc.Penalty = penaltiesByNonCompliance[nonCompliances[i].ID]
		nonCompliancesByObligation[nonCompliances[i].ObligationID] = append(
			nonCompliancesByObligation[nonCompliances[i].ObligationID], nc)
	}

	dto := &ContractDetailsDTO{
		ID:                    header.Contract.ID,
		OfficialNumber:        header.Contract.OfficialNumber,
		AdministrativeProcess: header.Contract.AdministrativeProcess,
		Type:                  string(header.Contract.Type),
		Modality:              string(header.Contract.Modality),
		Status:                string(header.Contract.Status),
		TermStart:             header.Contract.TermStart,
		TermEnd:               header.Contract.TermEnd,
		TotalAmount:           header.Contract.TotalAmount,
		Currency:              header.Contract.Currency,
		SupplierID:            header.Supplier.ID,
		SupplierName:          header.Supplier.CorporateName,
		SupplierTaxID:         header.Supplier.TaxID,
		OrgUnitID:             header.OrgUnit.ID,
		OrgUnitName:           header.OrgUnit.Name,
		OrgUnitCode:           header.OrgUnit.Code,
		Obligations:           make([]ObligationDetailDTO, 0, len(obligations)),
	}

	for _, o := range obligations {
		detail := ObligationDetailDTO{
			ID:             o.ID,
			ClauseRef:      o.ClauseRef,
			Description:    o.Description,
			DueDate:        o.DueDate,
			Status:         o.Status,
			Deliverables:   deliverablesByObligation[o.ID],
			NonCompliances: nonCompliancesByObligation[o.ID],
		}
		if detail.Deliverables == nil {
			detail.Deliverables = []DeliverableDTO{}
		}
		if detail.NonCompliances == nil {
			detail.NonCompliances = []NonComplianceDTO{}
		}
		dto.Obligations = append(dto.Obligations, detail)
	}

	return dto, nil
}

func (s *ContractService) ListRecent(ctx context.Context) ([]ContractListItemDTO, error) {
	items, err := s.contracts.ListRecent(ctx, 20)
	if err != nil {
		return nil, err
	}
	result := make([]ContractListItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, ContractListItemDTO{
			ID:             item.ID,
			OfficialNumber: item.OfficialNumber,
			Status:         string(item.Status),
		})
	}
	return result, nil
}

func (s *ContractService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) error {
	status, err := model.ParseContractStatus(rawStatus)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated, err := s.contracts.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.contracts.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// SummaryPDF renders the contract header and obligations as a PDF document.
func (s *ContractService) SummaryPDF(ctx context.Context, id uuid.UUID) (*FileResult, error) {
	header, err := s.contracts.GetHeader(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	obligations, err := s.obligations.ListForContract(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Summary(model.ContractSummary{
		Contract:    header.Contract,
		Supplier:    header.Supplier,
		OrgUnit:     header.OrgUnit,
		Obligations: obligations,
	})
	if err != nil {
		return nil, err
	}

	return &FileResult{
		FileName: fmt.Sprintf("contract-%s.pdf", sanitizeFileName(header.Contract.OfficialNumber)),
		MimeType: "application/pdf",
		Content:  content,
	}, nil
}

func deliverableDTO(d *model.Deliverable) DeliverableDTO {
	return DeliverableDTO{
		ID:           d.ID,
		ObligationID: d.ObligationID,
		ExpectedDate: d.ExpectedDate,
		Quantity:     d.Quantity,
		Unit:         d.Unit,
		DeliveredAt:  d.DeliveredAt,
	}
}

func penaltyDTO(p *model.Penalty) *PenaltyDTO {
	return &PenaltyDTO{
		ID:         p.ID,
		Type:       p.Type,
		LegalBasis: p.LegalBasis,
		Amount:     p.Amount,
	}
}

func nonComplianceDTO(nc *model.NonCompliance) NonComplianceDTO {
	return NonComplianceDTO{
		ID:           nc.ID,
		ObligationID: nc.ObligationID,
		Reason:       nc.Reason,
		Severity:     nc.Severity,
		RegisteredAt: nc.RegisteredAt,
	}
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
