package model

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID            uuid.UUID
	CorporateName string
	TaxID         string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	IsDeleted     bool
}

// OrgUnit is the organisational unit responsible for a contract. Code is
// optional but unique when present.
type OrgUnit struct {
	ID        uuid.UUID
	Name      string
	Code      *string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsDeleted bool
}
