package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/contractflow/backend/internal/service"
)

func TestGeneratorDueDeliverables(t *testing.T) {
	g := NewGenerator()
	rows := []service.DueDeliverableDTO{
		{
			DeliverableID: uuid.New(),
			ObligationID:  uuid.New(),
			ContractID:    uuid.New(),
			ExpectedDate:  time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			Quantity:      decimal.NewFromInt(12),
			Unit:          "unit",
			Status:        "overdue",
		},
	}

	content, err := g.DueDeliverables(rows)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	status, err := file.GetCellValue("Due deliverables", "G2")
	require.NoError(t, err)
	assert.Equal(t, "overdue", status)

	date, err := file.GetCellValue("Due deliverables", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-10", date)
}

func TestGeneratorDeliveries(t *testing.T) {
	g := NewGenerator()
	rows := []service.DeliveryGroupDTO{
		{ID: uuid.New(), Name: "ACME", TotalDeliveries: 5, OnTime: 3, Late: 2},
	}

	content, err := g.Deliveries("Supplier", rows)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	header, err := file.GetCellValue("Deliveries", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Supplier", header)

	name, err := file.GetCellValue("Deliveries", "A2")
	require.NoError(t, err)
	assert.Equal(t, "ACME", name)

	late, err := file.GetCellValue("Deliveries", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2", late)
}

func TestGeneratorPenaltiesHandlesNilFields(t *testing.T) {
	g := NewGenerator()
	rows := []service.PenaltyReportDTO{
		{
			PenaltyID:       uuid.New(),
			NonComplianceID: uuid.New(),
			ContractID:      uuid.New(),
			Reason:          "missed delivery",
			Severity:        "high",
			RegisteredAt:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Type:            "warning",
		},
	}

	content, err := g.Penalties(rows)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	legalBasis, err := file.GetCellValue("Penalties", "G2")
	require.NoError(t, err)
	assert.Empty(t, legalBasis)

	amount, err := file.GetCellValue("Penalties", "H2")
	require.NoError(t, err)
	assert.Empty(t, amount)
}
