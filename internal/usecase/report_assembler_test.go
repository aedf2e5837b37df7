package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockScope/internal/domain/models"
)

func TestMergeFieldsConfiguredOrderWins(t *testing.T) {
	results := map[string]models.ProviderResult{
		"a": {Provider: "a", Fields: models.RawFieldSet{"dividend_yield": "6,0%"}},
		"b": {Provider: "b", Fields: models.RawFieldSet{"dividend_yield": "7,0%", "payout": "50%"}},
	}

	merged := mergeFields([]string{"a", "b"}, results)
	assert.Equal(t, "6,0%", merged["dividend_yield"])
	assert.Equal(t, "50%", merged["payout"])

	// reversing the configured order flips the winner
	merged = mergeFields([]string{"b", "a"}, results)
	assert.Equal(t, "7,0%", merged["dividend_yield"])
}

func TestMergeFieldsSkipsFailedProviders(t *testing.T) {
	results := map[string]models.ProviderResult{
		"a": {Provider: "a", Failure: &models.FailureReason{Provider: "a", Kind: models.FailureTimeout}},
		"b": {Provider: "b", Fields: models.RawFieldSet{"payout": "50%"}},
	}

	merged := mergeFields([]string{"a", "b"}, results)
	assert.Equal(t, models.RawFieldSet{"payout": "50%"}, merged)
}

func TestAssembleReportAbsentFields(t *testing.T) {
	report := assembleReport("PETR4", nil, nil, nil, nil)

	assert.Equal(t, "PETR4", report.Ticker)
	assert.NotNil(t, report.Warnings)
	for name, iv := range report.Indicators {
		assert.Equal(t, "-", iv.Value, name)
		assert.Equal(t, models.VerdictNeutral, iv.Class, name)
	}
}
