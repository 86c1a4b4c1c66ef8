package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contractflow/backend/internal/model"
	"github.com/contractflow/backend/internal/repository"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkbookGenerator renders report rows into spreadsheet files.
type WorkbookGenerator interface {
	DueDeliverables(rows []DueDeliverableDTO) ([]byte, error)
	ContractStatus(rows []ContractStatusDTO) ([]byte, error)
	Deliveries(groupLabel string, rows []DeliveryGroupDTO) ([]byte, error)
	Penalties(rows []PenaltyReportDTO) ([]byte, error)
}

type DueDeliverableDTO struct {
	DeliverableID uuid.UUID       `json:"deliverableId"`
	ObligationID  uuid.UUID       `json:"obligationId"`
	ContractID    uuid.UUID       `json:"contractId"`
	ExpectedDate  time.Time       `json:"expectedDate"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	Status        string          `json:"status"`
}

type ContractStatusDTO struct {
	ContractID           uuid.UUID `json:"contractId"`
	OfficialNumber       string    `json:"officialNumber"`
	TotalObligations     int       `json:"totalObligations"`
	CompletedObligations int       `json:"completedObligations"`
}

type DeliveryGroupDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	TotalDeliveries int       `json:"totalDeliveries"`
	OnTime          int       `json:"onTime"`
	Late            int       `json:"late"`
}

type PenaltyReportDTO struct {
	PenaltyID       uuid.UUID        `json:"penaltyId"`
	NonComplianceID uuid.UUID        `json:"nonComplianceId"`
	ContractID      uuid.UUID        `json:"contractId"`
	Reason          string           `json:"reason"`
	Severity        string           `json:"severity"`
	RegisteredAt    time.Time        `json:"registeredAt"`
	Type            string           `json:"type"`
	LegalBasis      *string          `json:"legalBasis,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
}

type ReportService struct {
	reports  *repository.ReportRepository
	workbook WorkbookGenerator
	now      func() time.Time
}

func NewReportService(reports *repository.ReportRepository, workbook WorkbookGenerator) *ReportService {
	return &ReportService{reports: reports, workbook: workbook, now: time.Now}
}

func (s *ReportService) DueDeliverables(ctx context.Context, from, to *time.Time) ([]DueDeliverableDTO, error) {
	rows, err := s.reports.ListUndelivered(ctx, from, to)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]DueDeliverableDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, DueDeliverableDTO{
			DeliverableID: row.DeliverableID,
			ObligationID:  row.ObligationID,
			ContractID:    row.ContractID,
			ExpectedDate:  row.ExpectedDate,
			Quantity:      row.Quantity,
			Unit:          row.Unit,
			Status:        classifyDueStatus(row.ExpectedDate, now),
		})
	}
	return result, nil
}

func (s *ReportService) DueDeliverablesWorkbook(ctx context.Context, from, to *time.Time) (*FileResult, error) {
	rows, err := s.DueDeliverables(ctx, from, to)
	if err != nil {
		return nil, err
	}
	content, err := s.workbook.DueDeliverables(rows)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: "due-deliverables.xlsx", MimeType: xlsxMimeType, Content: content}, nil
}

func (s *ReportService) ContractStatus(ctx context.Context) ([]ContractStatusDTO, error) {
	rows, err := s.reports.ListObligationProgress(ctx)
	if err != nil {
		return nil, err
	}
	return aggregateContractStatus(rows), nil
}

func (s *ReportService) ContractStatusWorkbook(ctx context.Context) (*FileResult, error) {
	rows, err := s.ContractStatus(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.workbook.ContractStatus(rows)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: "contract-status.xlsx", MimeType: xlsxMimeType, Content: content}, nil
}

func (s *ReportService) DeliveriesBySupplier(ctx context.Context, from, to *time.Time) ([]DeliveryGroupDTO, error) {
	facts, err := s.reports.ListDeliveryFactsBySupplier(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return groupDeliveries(facts, s.now()), nil
}

func (s *ReportService) DeliveriesByOrgUnit(ctx context.Context, from, to *time.Time) ([]DeliveryGroupDTO, error) {
	facts, err := s.reports.ListDeliveryFactsByOrgUnit(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return groupDeliveries(facts, s.now()), nil
}

func (s *ReportService) DeliveriesBySupplierWorkbook(ctx context.Context, from, to *time.Time) (*FileResult, error) {
	rows, err := s.DeliveriesBySupplier(ctx, from, to)
	if err != nil {
		return nil, err
	}
	content, err := s.workbook.Deliveries("Supplier", rows)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: "deliveries-by-supplier.xlsx", MimeType: xlsxMimeType, Content: content}, nil
}

func (s *ReportService) DeliveriesByOrgUnitWorkbook(ctx context.Context, from, to *time.Time) (*FileResult, error) {
	rows, err := s.DeliveriesByOrgUnit(ctx, from, to)
	if err != nil {
		return nil, err
	}
	content, err := s.workbook.Deliveries("Org unit", rows)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: "deliveries-by-org-unit.xlsx", MimeType: xlsxMimeType, Content: content}, nil
}

func (s *ReportService) Penalties(ctx context.Context, from, to *time.Time) ([]PenaltyReportDTO, error) {
	rows, err := s.reports.ListPenaltyRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	result := make([]PenaltyReportDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, PenaltyReportDTO{
			PenaltyID:       row.PenaltyID,
			NonComplianceID: row.NonComplianceID,
			ContractID:      row.ContractID,
			Reason:          row.Reason,
			Severity:        row.Severity,
			RegisteredAt:    row.RegisteredAt,
			Type:            row.Type,
			LegalBasis:      row.LegalBasis,
			Amount:          row.Amount,
		})
	}
	return result, nil
}

func (s *ReportService) PenaltiesWorkbook(ctx context.Context, from, to *time.Time) (*FileResult, error) {
	rows, err := s.Penalties(ctx, from, to)
	if err != nil {
		return nil, err
	}
	content, err := s.workbook.Penalties(rows)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: "penalties.xlsx", MimeType: xlsxMimeType, Content: content}, nil
}

// classifyDueStatus marks an undelivered deliverable overdue once its
// expected date has passed.
func classifyDueStatus(expected, now time.Time) string {
	if expected.Before(now) {
		return model.DeliverableStatusOverdue
	}
	return model.DeliverableStatusPending
}

// aggregateContractStatus folds flat obligation rows into one row per
// contract. An obligation counts as completed when its status says so, or
// when it has deliverables and all of them have been delivered. Contracts
// without obligations still appear with zero counts.
func aggregateContractStatus(rows []model.ObligationProgress) []ContractStatusDTO {
	byContract := make(map[uuid.UUID]*ContractStatusDTO)
	order := make([]uuid.UUID, 0)

	for _, row := range rows {
		status, ok := byContract[row.ContractID]
		if !ok {
			status = &ContractStatusDTO{
				ContractID:     row.ContractID,
				OfficialNumber: row.OfficialNumber,
			}
			byContract[row.ContractID] = status
			order = append(order, row.ContractID)
		}
		if row.ObligationID == uuid.Nil {
			continue
		}
		status.TotalObligations++
		if obligationCompleted(row) {
			status.CompletedObligations++
		}
	}

	result := make([]ContractStatusDTO, 0, len(order))
	for _, id := range order {
		result = append(result, *byContract[id])
	}
	return result
}

func obligationCompleted(row model.ObligationProgress) bool {
	if strings.EqualFold(row.Status, model.ObligationStatusCompleted) {
		return true
	}
	return row.DeliverableCount >= 1 && row.DeliveredCount == row.DeliverableCount
}

// groupDeliveries partitions delivery facts per group. A delivery is on
// time when it happened no later than its expected date; it is late when it
// happened after, or when it is still undelivered past the expected date.
func groupDeliveries(facts []model.DeliveryFact, now time.Time) []DeliveryGroupDTO {
	byGroup := make(map[uuid.UUID]*DeliveryGroupDTO)
	order := make([]uuid.UUID, 0)

	for _, fact := range facts {
		group, ok := byGroup[fact.GroupID]
		if !ok {
			group = &DeliveryGroupDTO{ID: fact.GroupID, Name: fact.GroupName}
			byGroup[fact.GroupID] = group
			order = append(order, fact.GroupID)
		}
		group.TotalDeliveries++
		switch {
		case fact.DeliveredAt != nil && !fact.DeliveredAt.After(fact.ExpectedDate):
			group.OnTime++
		case fact.DeliveredAt != nil:
			group.Late++
		case fact.ExpectedDate.Before(now):
			group.Late++
		}
	}

	result := make([]DeliveryGroupDTO, 0, len(order))
	for _, id := range order {
		result = append(result, *byGroup[id])
	}
	return result
}
