package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

func TestGroupCount_ByFraudEvaluation(t *testing.T) {
	evaluator := service.NewRulesEvaluator()
	claims := []model.Claim{
		claimWith("C001", 0.1, 5000),
		claimWith("C002", 0.4, 12000),
		claimWith("C004", 0.8, 8000),
		claimWith("C010", 0.5, 10000),
	}

	evaluations := make([]service.Evaluation, 0, len(claims))
	for _, c := range claims {
		e, err := evaluator.Evaluate(c)
		require.NoError(t, err)
		evaluations = append(evaluations, e)
	}

	counts := service.GroupCount(evaluations, service.FraudEvaluationKey)

	assert.Equal(t, map[string]int{
		"Low Risk - Auto Approve":   3,
		"High Risk - Manual Review": 1,
	}, counts)

	byAssessment := service.GroupCount(evaluations, service.ClaimAssessmentKey)
	assert.Equal(t, 3, byAssessment["Standard Claim"])
	assert.Equal(t, 1, byAssessment["High Claim - Further Assessment"])
}

func TestGroupCount_Empty(t *testing.T) {
	counts := service.GroupCount([]string(nil), func(s string) string { return s })
	assert.Empty(t, counts)
	assert.Empty(t, service.SortedCounts(counts))
}

func TestSortedCounts(t *testing.T) {
	sorted := service.SortedCounts(map[string]int{"b": 2, "a": 2, "c": 5, "d": 1})

	assert.Equal(t, []service.LabelCount{
		{Label: "c", Count: 5},
		{Label: "a", Count: 2},
		{Label: "b", Count: 2},
		{Label: "d", Count: 1},
	}, sorted)
}
