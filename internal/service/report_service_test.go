package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractflow/backend/internal/model"
)

var reportNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestClassifyDueStatus(t *testing.T) {
	t.Run("past expected date is overdue", func(t *testing.T) {
		assert.Equal(t, model.DeliverableStatusOverdue, classifyDueStatus(reportNow.AddDate(0, 0, -1), reportNow))
	})

	t.Run("future expected date is pending", func(t *testing.T) {
		assert.Equal(t, model.DeliverableStatusPending, classifyDueStatus(reportNow.AddDate(0, 0, 3), reportNow))
	})
}

func TestAggregateContractStatus(t *testing.T) {
	contractA := uuid.New()
	contractB := uuid.New()

	t.Run("counts completed by status regardless of case", func(t *testing.T) {
		rows := []model.ObligationProgress{
			{ContractID: contractA, OfficialNumber: "CT-001", ObligationID: uuid.New(), Status: "completed"},
			{ContractID: contractA, OfficialNumber: "CT-001", ObligationID: uuid.New(), Status: "Pending"},
		}
		result := aggregateContractStatus(rows)
		require.Len(t, result, 1)
		assert.Equal(t, "CT-001", result[0].OfficialNumber)
		assert.Equal(t, 2, result[0].TotalObligations)
		assert.Equal(t, 1, result[0].CompletedObligations)
	})

	t.Run("counts completed when all deliverables delivered", func(t *testing.T) {
		rows := []model.ObligationProgress{
			{ContractID: contractA, ObligationID: uuid.New(), Status: "Pending", DeliverableCount: 3, DeliveredCount: 3},
			{ContractID: contractA, ObligationID: uuid.New(), Status: "Pending", DeliverableCount: 2, DeliveredCount: 1},
		}
		result := aggregateContractStatus(rows)
		require.Len(t, result, 1)
		assert.Equal(t, 2, result[0].TotalObligations)
		assert.Equal(t, 1, result[0].CompletedObligations)
	})

	t.Run("obligation without deliverables is not completed by delivery", func(t *testing.T) {
		rows := []model.ObligationProgress{
			{ContractID: contractA, ObligationID: uuid.New(), Status: "Pending", DeliverableCount: 0, DeliveredCount: 0},
		}
		result := aggregateContractStatus(rows)
		require.Len(t, result, 1)
		assert.Equal(t, 0, result[0].CompletedObligations)
	})

	t.Run("contract without obligations keeps zero counts", func(t *testing.T) {
		rows := []model.ObligationProgress{
			{ContractID: contractB, OfficialNumber: "CT-002", ObligationID: uuid.Nil},
		}
		result := aggregateContractStatus(rows)
		require.Len(t, result, 1)
		assert.Equal(t, 0, result[0].TotalObligations)
		assert.Equal(t, 0, result[0].CompletedObligations)
	})

	t.Run("keeps one row per contract in input order", func(t *testing.T) {
		rows := []model.ObligationProgress{
			{ContractID: contractA, OfficialNumber: "CT-001", ObligationID: uuid.New(), Status: "Pending"},
			{ContractID: contractB, OfficialNumber: "CT-002", ObligationID: uuid.New(), Status: "Pending"},
			{ContractID: contractA, OfficialNumber: "CT-001", ObligationID: uuid.New(), Status: "Completed"},
		}
		result := aggregateContractStatus(rows)
		require.Len(t, result, 2)
		assert.Equal(t, contractA, result[0].ContractID)
		assert.Equal(t, contractB, result[1].ContractID)
		assert.Equal(t, 2, result[0].TotalObligations)
	})
}

func TestGroupDeliveries(t *testing.T) {
	groupID := uuid.New()
	expected := reportNow.AddDate(0, 0, -10)

	delivered := func(at time.Time) *time.Time { return &at }

	t.Run("delivered on expected date is on time", func(t *testing.T) {
		facts := []model.DeliveryFact{
			{GroupID: groupID, GroupName: "ACME", ExpectedDate: expected, DeliveredAt: delivered(expected)},
		}
		result := groupDeliveries(facts, reportNow)
		require.Len(t, result, 1)
		assert.Equal(t, 1, result[0].OnTime)
		assert.Equal(t, 0, result[0].Late)
	})

	t.Run("delivered after expected date is late", func(t *testing.T) {
		facts := []model.DeliveryFact{
			{GroupID: groupID, ExpectedDate: expected, DeliveredAt: delivered(expected.AddDate(0, 0, 2))},
		}
		result := groupDeliveries(facts, reportNow)
		require.Len(t, result, 1)
		assert.Equal(t, 1, result[0].Late)
	})

	t.Run("undelivered past expected date is late", func(t *testing.T) {
		facts := []model.DeliveryFact{
			{GroupID: groupID, ExpectedDate: expected},
		}
		result := groupDeliveries(facts, reportNow)
		require.Len(t, result, 1)
		assert.Equal(t, 1, result[0].TotalDeliveries)
		assert.Equal(t, 1, result[0].Late)
	})

	t.Run("undelivered before expected date is neither", func(t *testing.T) {
		facts := []model.DeliveryFact{
			{GroupID: groupID, ExpectedDate: reportNow.AddDate(0, 0, 5)},
		}
		result := groupDeliveries(facts, reportNow)
		require.Len(t, result, 1)
		assert.Equal(t, 1, result[0].TotalDeliveries)
		assert.Equal(t, 0, result[0].OnTime)
		assert.Equal(t, 0, result[0].Late)
	})

	t.Run("partitions by group", func(t *testing.T) {
		otherGroup := uuid.New()
		facts := []model.DeliveryFact{
			{GroupID: groupID, GroupName: "ACME", ExpectedDate: expected, DeliveredAt: delivered(expected)},
			{GroupID: otherGroup, GroupName: "Umbrella", ExpectedDate: expected, DeliveredAt: delivered(expected.AddDate(0, 0, 1))},
			{GroupID: groupID, GroupName: "ACME", ExpectedDate: expected},
		}
		result := groupDeliveries(facts, reportNow)
		require.Len(t, result, 2)
		assert.Equal(t, "ACME", result[0].Name)
		assert.Equal(t, 2, result[0].TotalDeliveries)
		assert.Equal(t, 1, result[0].OnTime)
		assert.Equal(t, 1, result[0].Late)
		assert.Equal(t, "Umbrella", result[1].Name)
		assert.Equal(t, 1, result[1].Late)
	})
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "CT-2026-001", sanitizeFileName("CT/2026\\001"))
	assert.Equal(t, "contract", sanitizeFileName("contract"))
}
