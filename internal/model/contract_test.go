package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContractType(t *testing.T) {
	t.Run("accepts known values case-insensitively", func(t *testing.T) {
		parsed, err := ParseContractType("  SERVICE ")
		require.NoError(t, err)
		assert.Equal(t, ContractTypeService, parsed)

		parsed, err = ParseContractType("supply")
		require.NoError(t, err)
		assert.Equal(t, ContractTypeSupply, parsed)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseContractType("rental")
		assert.Error(t, err)
	})
}

func TestParseContractModality(t *testing.T) {
	parsed, err := ParseContractModality("pregao")
	require.NoError(t, err)
	assert.Equal(t, ModalityPregao, parsed)

	parsed, err = ParseContractModality("RDC")
	require.NoError(t, err)
	assert.Equal(t, ModalityRDC, parsed)

	_, err = ParseContractModality("auction")
	assert.Error(t, err)
}

func TestParseContractStatus(t *testing.T) {
	parsed, err := ParseContractStatus("active")
	require.NoError(t, err)
	assert.Equal(t, ContractStatusActive, parsed)

	_, err = ParseContractStatus("expired")
	assert.Error(t, err)
}

func TestValidateTerm(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("end after start is valid", func(t *testing.T) {
		assert.NoError(t, ValidateTerm(start, start.AddDate(1, 0, 0)))
	})

	t.Run("end equal to start is invalid", func(t *testing.T) {
		assert.Error(t, ValidateTerm(start, start))
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		assert.Error(t, ValidateTerm(start, start.AddDate(0, 0, -1)))
	})
}

func TestKnownSeverity(t *testing.T) {
	assert.True(t, KnownSeverity("low"))
	assert.True(t, KnownSeverity(" Critical "))
	assert.False(t, KnownSeverity("catastrophic"))
	assert.False(t, KnownSeverity(""))
}
