package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractTypeService ContractType = "Service"
	ContractTypeWork    ContractType = "Work"
	ContractTypeSupply  ContractType = "Supply"
	ContractTypeLease   ContractType = "Lease"
	ContractTypeOther   ContractType = "Other"
)

type ContractModality string

const (
	ModalityPregao          ContractModality = "Pregao"
	ModalityConcorrencia    ContractModality = "Concorrencia"
	ModalityTomadaPreco     ContractModality = "TomadaPreco"
	ModalityConvite         ContractModality = "Convite"
	ModalityDispensa        ContractModality = "Dispensa"
	ModalityInexigibilidade ContractModality = "Inexigibilidade"
	ModalityRDC             ContractModality = "RDC"
	ModalityCredenciamento  ContractModality = "Credenciamento"
)

type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "Draft"
	ContractStatusActive     ContractStatus = "Active"
	ContractStatusSuspended  ContractStatus = "Suspended"
	ContractStatusClosed     ContractStatus = "Closed"
	ContractStatusTerminated ContractStatus = "Terminated"
	ContractStatusCancelled  ContractStatus = "Cancelled"
)

type Contract struct {
	ID                    uuid.UUID
	OfficialNumber        string
	AdministrativeProcess *string
	SupplierID            uuid.UUID
	OrgUnitID             uuid.UUID
	Type                  ContractType
	Modality              ContractModality
	Status                ContractStatus
	TermStart             time.Time
	TermEnd               time.Time
	TotalAmount           decimal.Decimal
	Currency              string
	CreatedAt             time.Time
	UpdatedAt             *time.Time
	IsDeleted             bool
}

func ParseContractType(raw string) (ContractType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "service":
		return ContractTypeService, nil
	case "work":
		return ContractTypeWork, nil
	case "supply":
		return ContractTypeSupply, nil
	case "lease":
		return ContractTypeLease, nil
	case "other":
		return ContractTypeOther, nil
	default:
		return "", fmt.Errorf("unknown contract type %q", raw)
	}
}

func ParseContractModality(raw string) (ContractModality, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pregao":
		return ModalityPregao, nil
	case "concorrencia":
		return ModalityConcorrencia, nil
	case "tomadapreco":
		return ModalityTomadaPreco, nil
	case "convite":
		return ModalityConvite, nil
	case "dispensa":
		return ModalityDispensa, nil
	case "inexigibilidade":
		return ModalityInexigibilidade, nil
	case "rdc":
		return ModalityRDC, nil
	case "credenciamento":
		return ModalityCredenciamento, nil
	default:
		return "", fmt.Errorf("unknown contract modality %q", raw)
	}
}

func ParseContractStatus(raw string) (ContractStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "draft":
		return ContractStatusDraft, nil
	case "active":
		return ContractStatusActive, nil
	case "suspended":
		return ContractStatusSuspended, nil
	case "closed":
		return ContractStatusClosed, nil
	case "terminated":
		return ContractStatusTerminated, nil
	case "cancelled":
		return ContractStatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown contract status %q", raw)
	}
}

// ValidateTerm enforces the contract term invariant: the end date must be
// strictly after the start date.
func ValidateTerm(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("term end %s must be after term start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return nil
}
