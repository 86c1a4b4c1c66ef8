package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Severity vocabulary for non-compliances. Stored values are free text and
// compared case-insensitively; unknown values are kept as registered.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

func KnownSeverity(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

type NonCompliance struct {
	ID           uuid.UUID
	ObligationID uuid.UUID
	Reason       string
	Severity     string
	RegisteredAt time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	IsDeleted    bool
}

// Penalty is the sanction applied to a non-compliance. At most one penalty
// exists per non-compliance; the store enforces this with a unique index.
type Penalty struct {
	ID              uuid.UUID
	NonComplianceID uuid.UUID
	Type            string
	LegalBasis      *string
	Amount          *decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	IsDeleted       bool
}
