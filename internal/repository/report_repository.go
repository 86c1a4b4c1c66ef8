package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ListUndelivered returns undelivered deliverables, optionally bounded on
// expected date, sorted ascending. Status is filled in by the service.
func (r *ReportRepository) ListUndelivered(ctx context.Context, from, to *time.Time) ([]model.DueDeliverable, error) {
	baseQuery := `
		SELECT
			d.id AS deliverable_id,
			d.obligation_id,
			o.contract_id,
			d.expected_date,
			d.quantity,
			d.unit
		FROM deliverables d
		JOIN obligations o ON o.id = d.obligation_id
		WHERE d.delivered_at IS NULL
			AND NOT d.is_deleted
			AND NOT o.is_deleted
	`
	args := []interface{}{}
	if from != nil {
		baseQuery += " AND d.expected_date >= ?"
		args = append(args, *from)
	}
	if to != nil {
		baseQuery += " AND d.expected_date <= ?"
		args = append(args, *to)
	}
	baseQuery += " ORDER BY d.expected_date ASC"

	var rows []model.DueDeliverable
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListObligationProgress returns one row per non-deleted obligation with its
// deliverable counts, plus a zero row for contracts without obligations so
// every contract appears in the status report.
func (r *ReportRepository) ListObligationProgress(ctx context.Context) ([]model.ObligationProgress, error) {
	var rows []model.ObligationProgress
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id AS contract_id,
			c.official_number,
			COALESCE(o.id, '00000000-0000-0000-0000-000000000000'::uuid) AS obligation_id,
			COALESCE(o.status, '') AS status,
			COUNT(d.id) AS deliverable_count,
			COUNT(d.delivered_at) AS delivered_count
		FROM contracts c
		LEFT JOIN obligations o ON o.contract_id = c.id AND NOT o.is_deleted
		LEFT JOIN deliverables d ON d.obligation_id = o.id AND NOT d.is_deleted
		WHERE NOT c.is_deleted
		GROUP BY c.id, c.official_number, o.id, o.status
		ORDER BY c.official_number ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) ListDeliveryFactsBySupplier(ctx context.Context, from, to *time.Time) ([]model.DeliveryFact, error) {
	return r.listDeliveryFacts(ctx, `
		SELECT
			s.id AS group_id,
			s.corporate_name AS group_name,
			d.expected_date,
			d.delivered_at
		FROM deliverables d
		JOIN obligations o ON o.id = d.obligation_id
		JOIN contracts c ON c.id = o.contract_id
		JOIN suppliers s ON s.id = c.supplier_id
		WHERE NOT d.is_deleted AND NOT o.is_deleted AND NOT c.is_deleted
	`, from, to)
}

func (r *ReportRepository) ListDeliveryFactsByOrgUnit(ctx context.Context, from, to *time.Time) ([]model.DeliveryFact, error) {
	return r.listDeliveryFacts(ctx, `
		SELECT
			u.id AS group_id,
			u.name AS group_name,
			d.expected_date,
			d.delivered_at
		FROM deliverables d
		JOIN obligations o ON o.id = d.obligation_id
		JOIN contracts c ON c.id = o.contract_id
		JOIN org_units u ON u.id = c.org_unit_id
		WHERE NOT d.is_deleted AND NOT o.is_deleted AND NOT c.is_deleted
	`, from, to)
}

func (r *ReportRepository) listDeliveryFacts(ctx context.Context, baseQuery string, from, to *time.Time) ([]model.DeliveryFact, error) {
	args := []interface{}{}
	if from != nil {
		baseQuery += " AND d.expected_date >= ?"
		args = append(args, *from)
	}
	if to != nil {
		baseQuery += " AND d.expected_date <= ?"
		args = append(args, *to)
	}
	baseQuery += " ORDER BY group_name ASC, d.expected_date ASC"

	var facts []model.DeliveryFact
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&facts).Error; err != nil {
		return nil, err
	}
	return facts, nil
}

func (r *ReportRepository) ListPenaltyRows(ctx context.Context, from, to *time.Time) ([]model.PenaltyRow, error) {
	baseQuery := `
		SELECT
			p.id AS penalty_id,
			p.non_compliance_id,
			o.contract_id,
			nc.reason,
			nc.severity,
			nc.registered_at,
			p.type,
			p.legal_basis,
			p.amount
		FROM penalties p
		JOIN non_compliances nc ON nc.id = p.non_compliance_id
		JOIN obligations o ON o.id = nc.obligation_id
		WHERE NOT p.is_deleted AND NOT nc.is_deleted AND NOT o.is_deleted
	`
	args := []interface{}{}
	if from != nil {
		baseQuery += " AND nc.registered_at >= ?"
		args = append(args, *from)
	}
	if to != nil {
		baseQuery += " AND nc.registered_at <= ?"
		args = append(args, *to)
	}
	baseQuery += " ORDER BY nc.registered_at DESC"

	var rows []model.PenaltyRow
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
