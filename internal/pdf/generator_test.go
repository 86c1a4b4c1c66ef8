package pdf

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractflow/backend/internal/model"
)

func TestGeneratorSummary(t *testing.T) {
	g := NewGenerator()

	summary := model.ContractSummary{
		Contract: model.Contract{
			ID:             uuid.New(),
			OfficialNumber: "CT-2026-001",
			Type:           model.ContractTypeService,
			Modality:       model.ModalityPregao,
			Status:         model.ContractStatusActive,
			TermStart:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			TermEnd:        time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			TotalAmount:    decimal.NewFromFloat(250000.00),
			Currency:       "BRL",
		},
		Supplier: model.Supplier{CorporateName: "ACME Ltda", TaxID: "12.345.678/0001-90"},
		OrgUnit:  model.OrgUnit{Name: "Procurement"},
		Obligations: []model.Obligation{
			{ClauseRef: "3.1", Description: "Monthly maintenance", Status: "Pending"},
		},
	}

	content, err := g.Summary(summary)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestTitleLineStaysASCII(t *testing.T) {
	line := titleLine(model.Contract{
		OfficialNumber: "CT-2026-001",
		TermStart:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TermEnd:        time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, "Contract CT-2026-001 (2026-01-01 to 2026-12-31)", line)
	for _, r := range line {
		assert.Less(t, r, rune(128))
	}
}

func TestGeneratorSummaryWithoutObligations(t *testing.T) {
	g := NewGenerator()

	content, err := g.Summary(model.ContractSummary{
		Contract: model.Contract{
			OfficialNumber: "CT-2026-002",
			TermStart:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			TermEnd:        time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			TotalAmount:    decimal.Zero,
			Currency:       "BRL",
		},
		Supplier: model.Supplier{CorporateName: "ACME Ltda", TaxID: "12.345.678/0001-90"},
		OrgUnit:  model.OrgUnit{Name: "Procurement"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
