package model

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceOwnerKind tags the single parent of an evidence record. The
// mutual-exclusivity between deliverable and inspection ownership is carried
// by the tag instead of two nullable foreign keys.
type EvidenceOwnerKind string

const (
	EvidenceOwnerDeliverable EvidenceOwnerKind = "deliverable"
	EvidenceOwnerInspection  EvidenceOwnerKind = "inspection"
)

type Evidence struct {
	ID          uuid.UUID
	OwnerKind   EvidenceOwnerKind
	OwnerID     uuid.UUID
	FileName    string
	MimeType    string
	StoragePath string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsDeleted   bool
}

type Attachment struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	FileName    string
	MimeType    string
	StoragePath string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsDeleted   bool
}
