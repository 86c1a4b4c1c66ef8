package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/contractflow/backend/internal/repository"
)

type AlertDTO struct {
	ID            uuid.UUID  `json:"id"`
	Message       string     `json:"message"`
	ContractID    *uuid.UUID `json:"contractId,omitempty"`
	DeliverableID *uuid.UUID `json:"deliverableId,omitempty"`
	TargetDate    time.Time  `json:"targetDate"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type AlertService struct {
	alerts *repository.AlertRepository
}

func NewAlertService(alerts *repository.AlertRepository) *AlertService {
	return &AlertService{alerts: alerts}
}

func (s *AlertService) List(ctx context.Context) ([]AlertDTO, error) {
	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		result = append(result, AlertDTO{
			ID:            a.ID,
			Message:       a.Message,
			ContractID:    a.ContractID,
			DeliverableID: a.DeliverableID,
			TargetDate:    a.TargetDate,
			CreatedAt:     a.CreatedAt,
		})
	}
	return result, nil
}
