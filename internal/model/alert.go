package model

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	ID            uuid.UUID
	Message       string
	ContractID    *uuid.UUID
	DeliverableID *uuid.UUID
	TargetDate    time.Time
	CreatedAt     time.Time
}
