package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		corporate_name VARCHAR(255) NOT NULL,
		tax_id VARCHAR(32) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_suppliers_tax_id ON suppliers (tax_id);`,
	`CREATE TABLE IF NOT EXISTS org_units (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		code VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_org_units_code ON org_units (code) WHERE code IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		official_number VARCHAR(100) NOT NULL,
		administrative_process VARCHAR(100),
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		org_unit_id UUID NOT NULL REFERENCES org_units(id),
		type VARCHAR(32) NOT NULL,
		modality VARCHAR(32) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'Active',
		term_start DATE NOT NULL,
		term_end DATE NOT NULL,
		total_amount NUMERIC(18,2) NOT NULL,
		currency CHAR(3) NOT NULL DEFAULT 'BRL',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT ck_contracts_term CHECK (term_end > term_start),
		CONSTRAINT ck_contracts_amount CHECK (total_amount >= 0)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_official_number ON contracts (official_number);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_supplier_id ON contracts (supplier_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_org_unit_id ON contracts (org_unit_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_term_end ON contracts (term_end) WHERE NOT is_deleted;`,
	`CREATE TABLE IF NOT EXISTS obligations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id),
		clause_ref VARCHAR(50) NOT NULL,
		description VARCHAR(2000) NOT NULL,
		due_date DATE,
		status VARCHAR(30) NOT NULL DEFAULT 'Pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_obligations_contract_id ON obligations (contract_id);`,
	`CREATE TABLE IF NOT EXISTS deliverables (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		obligation_id UUID NOT NULL REFERENCES obligations(id),
		expected_date DATE NOT NULL,
		quantity NUMERIC(18,2) NOT NULL,
		unit VARCHAR(20) NOT NULL,
		delivered_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT ck_deliverables_quantity CHECK (quantity >= 0)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_deliverables_obligation_expected ON deliverables (obligation_id, expected_date);`,
	`CREATE INDEX IF NOT EXISTS idx_deliverables_expected_undelivered ON deliverables (expected_date) WHERE delivered_at IS NULL AND NOT is_deleted;`,
	`CREATE TABLE IF NOT EXISTS inspections (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		deliverable_id UUID NOT NULL REFERENCES deliverables(id),
		inspected_at DATE NOT NULL,
		inspector VARCHAR(255) NOT NULL,
		notes VARCHAR(1000),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_inspections_deliverable_id ON inspections (deliverable_id);`,
	`CREATE TABLE IF NOT EXISTS evidences (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		owner_kind VARCHAR(16) NOT NULL,
		owner_id UUID NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		mime_type VARCHAR(100) NOT NULL,
		storage_path VARCHAR(500) NOT NULL,
		notes VARCHAR(1000),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT ck_evidences_owner_kind CHECK (owner_kind IN ('deliverable', 'inspection'))
	);`,
	`CREATE INDEX IF NOT EXISTS idx_evidences_owner ON evidences (owner_kind, owner_id);`,
	`CREATE TABLE IF NOT EXISTS non_compliances (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		obligation_id UUID NOT NULL REFERENCES obligations(id),
		reason VARCHAR(2000) NOT NULL,
		severity VARCHAR(30) NOT NULL,
		registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_non_compliances_obligation_id ON non_compliances (obligation_id);`,
	`CREATE TABLE IF NOT EXISTS penalties (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		non_compliance_id UUID NOT NULL REFERENCES non_compliances(id),
		type VARCHAR(60) NOT NULL,
		legal_basis VARCHAR(500),
		amount NUMERIC(18,2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_penalties_non_compliance_id ON penalties (non_compliance_id);`,
	`CREATE TABLE IF NOT EXISTS attachments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id),
		file_name VARCHAR(255) NOT NULL,
		mime_type VARCHAR(100) NOT NULL,
		storage_path VARCHAR(500) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_attachments_contract_id ON attachments (contract_id);`,
	`CREATE TABLE IF NOT EXISTS alerts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		message VARCHAR(500) NOT NULL,
		contract_id UUID REFERENCES contracts(id),
		deliverable_id UUID REFERENCES deliverables(id),
		target_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_alerts_created_at ON alerts (created_at DESC);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
