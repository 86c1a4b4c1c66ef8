package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/contractflow/backend/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// ContractHeader carries a contract row together with its supplier and org
// unit, as the details endpoint and the PDF summary need all three.
type ContractHeader struct {
	Contract model.Contract
	Supplier model.Supplier
	OrgUnit  model.OrgUnit
}

// ContractListItem is the minimal projection returned by the list endpoint.
type ContractListItem struct {
	ID             uuid.UUID
	OfficialNumber string
	Status         model.ContractStatus
	CreatedAt      time.Time
}

func (r *ContractRepository) Create(ctx context.Context, c model.Contract) (*model.Contract, error) {
	var saved model.Contract
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (
			official_number,
			administrative_process,
			supplier_id,
			org_unit_id,
			type,
			modality,
			status,
			term_start,
			term_end,
			total_amount,
			currency
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING
			id, official_number, administrative_process, supplier_id, org_unit_id,
			type, modality, status, term_start, term_end, total_amount, currency,
			created_at, updated_at, is_deleted
	`,
		c.OfficialNumber,
		c.AdministrativeProcess,
		c.SupplierID,
		c.OrgUnitID,
		c.Type,
		c.Modality,
		c.Status,
		c.TermStart,
		c.TermEnd,
		c.TotalAmount,
		c.Currency,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ContractRepository) GetHeader(ctx context.Context, id uuid.UUID) (*ContractHeader, error) {
	var row struct {
		ID                    uuid.UUID
		OfficialNumber        string
		AdministrativeProcess *string
		SupplierID            uuid.UUID
		OrgUnitID             uuid.UUID
		Type                  model.ContractType
		Modality              model.ContractModality
		Status                model.ContractStatus
		TermStart             time.Time
		TermEnd               time.Time
		TotalAmount           decimal.Decimal
		Currency              string
		CreatedAt             time.Time
		UpdatedAt             *time.Time
		SupplierName          string
		SupplierTaxID         string
		SupplierActive        bool
		OrgUnitName           string
		OrgUnitCode           *string
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.official_number,
			c.administrative_process,
			c.supplier_id,
			c.org_unit_id,
			c.type,
			c.modality,
			c.status,
			c.term_start,
			c.term_end,
			c.total_amount,
			c.currency,
			c.created_at,
			c.updated_at,
			s.corporate_name AS supplier_name,
			s.tax_id AS supplier_tax_id,
			s.active AS supplier_active,
			u.name AS org_unit_name,
			u.code AS org_unit_code
		FROM contracts c
		JOIN suppliers s ON s.id = c.supplier_id
		JOIN org_units u ON u.id = c.org_unit_id
		WHERE c.id = ? AND NOT c.is_deleted
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	return &ContractHeader{
		Contract: model.Contract{
			ID:                    row.ID,
			OfficialNumber:        row.OfficialNumber,
			AdministrativeProcess: row.AdministrativeProcess,
			SupplierID:            row.SupplierID,
			OrgUnitID:             row.OrgUnitID,
			Type:                  row.Type,
			Modality:              row.Modality,
			Status:                row.Status,
			TermStart:             row.TermStart,
			TermEnd:               row.TermEnd,
			TotalAmount:           row.TotalAmount,
			Currency:              row.Currency,
			CreatedAt:             row.CreatedAt,
			UpdatedAt:             row.UpdatedAt,
		},
		Supplier: model.Supplier{
			ID:            row.SupplierID,
			CorporateName: row.SupplierName,
			TaxID:         row.SupplierTaxID,
			Active:        row.SupplierActive,
		},
		OrgUnit: model.OrgUnit{
			ID:   row.OrgUnitID,
			Name: row.OrgUnitName,
			Code: row.OrgUnitCode,
		},
	}, nil
}

func (r *ContractRepository) ListRecent(ctx context.Context, limit int) ([]ContractListItem, error) {
	var items []ContractListItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, official_number, status, created_at
		FROM contracts
		WHERE NOT is_deleted
		ORDER BY created_at DESC
		LIMIT ?
	`, limit).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContractStatus) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET status = ?, updated_at = NOW()
		WHERE id = ? AND NOT is_deleted
	`, status, id)
	return res.RowsAffected > 0, res.Error
}

// SoftDelete marks the contract and its owned subtree as deleted in one
// transaction: obligations, their deliverables and inspections, their
// non-compliances and penalties. Evidence and attachments are not cascaded
// and stay retrievable until removed individually.
func (r *ContractRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE contracts SET is_deleted = TRUE, updated_at = NOW()
			WHERE id = ? AND NOT is_deleted
		`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := tx.Exec(`
			UPDATE penalties SET is_deleted = TRUE, updated_at = NOW()
			WHERE non_compliance_id IN (
				SELECT nc.id FROM non_compliances nc
				JOIN obligations o ON o.id = nc.obligation_id
				WHERE o.contract_id = ?
			) AND NOT is_deleted
		`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE non_compliances SET is_deleted = TRUE, updated_at = NOW()
			WHERE obligation_id IN (SELECT id FROM obligations WHERE contract_id = ?)
				AND NOT is_deleted
		`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE inspections SET is_deleted = TRUE, updated_at = NOW()
			WHERE deliverable_id IN (
				SELECT d.id FROM deliverables d
				JOIN obligations o ON o.id = d.obligation_id
				WHERE o.contract_id = ?
			) AND NOT is_deleted
		`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			UPDATE deliverables SET is_deleted = TRUE, updated_at = NOW()
			WHERE obligation_id IN (SELECT id FROM obligations WHERE contract_id = ?)
				AND NOT is_deleted
		`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE obligations SET is_deleted = TRUE, updated_at = NOW()
			WHERE contract_id = ? AND NOT is_deleted
		`, id).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *ContractRepository) ExistsByOfficialNumber(ctx context.Context, officialNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM contracts WHERE official_number = ? AND NOT is_deleted
	`, officialNumber).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ContractRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM contracts WHERE id = ? AND NOT is_deleted
	`, id).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
