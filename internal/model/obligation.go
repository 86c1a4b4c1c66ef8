package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ObligationStatusCompleted is the status value that marks an obligation as
// done regardless of its deliverables. Compared case-insensitively.
const ObligationStatusCompleted = "Completed"

type Obligation struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	ClauseRef   string
	Description string
	DueDate     *time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsDeleted   bool
}

type Deliverable struct {
	ID           uuid.UUID
	ObligationID uuid.UUID
	ExpectedDate time.Time
	Quantity     decimal.Decimal
	Unit         string
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	IsDeleted    bool
}

type Inspection struct {
	ID            uuid.UUID
	DeliverableID uuid.UUID
	InspectedAt   time.Time
	Inspector     string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	IsDeleted     bool
}
