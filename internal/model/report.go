package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DeliverableStatusOverdue = "overdue"
	DeliverableStatusPending = "pending"
)

// DueDeliverable is one row of the due-deliverables report. The
// overdue/pending status is computed at evaluation time, not stored.
type DueDeliverable struct {
	DeliverableID uuid.UUID
	ObligationID  uuid.UUID
	ContractID    uuid.UUID
	ExpectedDate  time.Time
	Quantity      decimal.Decimal
	Unit          string
}

// ObligationProgress is a flat row used to derive the contract-status
// report: one row per non-deleted obligation with its deliverable counts.
type ObligationProgress struct {
	ContractID       uuid.UUID
	OfficialNumber   string
	ObligationID     uuid.UUID
	Status           string
	DeliverableCount int64
	DeliveredCount   int64
}

// DeliveryFact is a flat row joining a deliverable to its contract's
// supplier or org unit, depending on the grouping requested.
type DeliveryFact struct {
	GroupID      uuid.UUID
	GroupName    string
	ExpectedDate time.Time
	DeliveredAt  *time.Time
}

type PenaltyRow struct {
	PenaltyID       uuid.UUID
	NonComplianceID uuid.UUID
	ContractID      uuid.UUID
	Reason          string
	Severity        string
	RegisteredAt    time.Time
	Type            string
	LegalBasis      *string
	Amount          *decimal.Decimal
}
