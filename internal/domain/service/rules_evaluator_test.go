package service_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

func claimWith(id string, fraudRisk float64, amount int64) model.Claim {
	return model.Claim{
		ID:        id,
		Type:      "Auto",
		Amount:    decimal.NewFromInt(amount),
		FraudRisk: fraudRisk,
		Status:    valueobject.ClaimStatusPending,
	}
}

func TestRulesEvaluator_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		claim       model.Claim
		fraud       valueobject.FraudEvaluation
		assessment  valueobject.ClaimAssessment
		autoApprove bool
	}{
		{
			name:        "low risk standard claim",
			claim:       claimWith("C001", 0.1, 5000),
			fraud:       valueobject.FraudEvaluationLowRisk,
			assessment:  valueobject.ClaimAssessmentStandard,
			autoApprove: true,
		},
		{
			name:        "low risk high claim",
			claim:       claimWith("C002", 0.4, 12000),
			fraud:       valueobject.FraudEvaluationLowRisk,
			assessment:  valueobject.ClaimAssessmentHighClaim,
			autoApprove: true,
		},
		{
			name:        "high risk standard claim",
			claim:       claimWith("C004", 0.8, 8000),
			fraud:       valueobject.FraudEvaluationHighRisk,
			assessment:  valueobject.ClaimAssessmentStandard,
			autoApprove: false,
		},
		{
			name:        "both boundaries",
			claim:       claimWith("C010", 0.5, 10000),
			fraud:       valueobject.FraudEvaluationLowRisk,
			assessment:  valueobject.ClaimAssessmentStandard,
			autoApprove: true,
		},
	}

	evaluator := service.NewRulesEvaluator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fraud, err := evaluator.EvaluateFraudRisk(tt.claim)
			require.NoError(t, err)
			assert.True(t, tt.fraud.Equal(fraud), "fraud evaluation: got %s", fraud)

			assessment, err := evaluator.AssessClaimAmount(tt.claim)
			require.NoError(t, err)
			assert.True(t, tt.assessment.Equal(assessment), "claim assessment: got %s", assessment)

			ok, err := evaluator.CanAutoApprove(tt.claim)
			require.NoError(t, err)
			assert.Equal(t, tt.autoApprove, ok)

			evaluation, err := evaluator.Evaluate(tt.claim)
			require.NoError(t, err)
			assert.Equal(t, tt.claim.ID, evaluation.ClaimID)
			assert.True(t, tt.fraud.Equal(evaluation.FraudEvaluation))
			assert.True(t, tt.assessment.Equal(evaluation.ClaimAssessment))
			assert.Equal(t, tt.autoApprove, evaluation.AutoApprovable)
		})
	}
}

func TestRulesEvaluator_FraudRiskIsMonotonic(t *testing.T) {
	evaluator := service.NewRulesEvaluator()

	seenHigh := false
	for i := 0; i <= 100; i++ {
		risk := float64(i) / 100
		fraud, err := evaluator.EvaluateFraudRisk(claimWith("C001", risk, 100))
		require.NoError(t, err)

		if seenHigh {
			assert.True(t, fraud.IsHighRisk(), "risk %v flipped back to low", risk)
		}
		if fraud.IsHighRisk() {
			seenHigh = true
			assert.Greater(t, risk, 0.5)
		}
	}
	assert.True(t, seenHigh)
}

func TestRulesEvaluator_GateMatchesFraudEvaluation(t *testing.T) {
	evaluator := service.NewRulesEvaluator()

	for i := 0; i <= 20; i++ {
		c := claimWith("C001", float64(i)/20, int64(i*1000))

		fraud, err := evaluator.EvaluateFraudRisk(c)
		require.NoError(t, err)
		ok, err := evaluator.CanAutoApprove(c)
		require.NoError(t, err)

		assert.Equal(t, fraud.Equal(valueobject.FraudEvaluationLowRisk), ok)
	}
}

func TestRulesEvaluator_Idempotent(t *testing.T) {
	evaluator := service.NewRulesEvaluator()
	c := claimWith("C002", 0.4, 12000)

	first, err := evaluator.Evaluate(c)
	require.NoError(t, err)
	second, err := evaluator.Evaluate(c)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRulesEvaluator_RejectsInvalidClaims(t *testing.T) {
	evaluator := service.NewRulesEvaluator()

	tests := []struct {
		name  string
		claim model.Claim
	}{
		{"fraud risk above one", claimWith("C001", 1.5, 100)},
		{"fraud risk below zero", claimWith("C001", -0.2, 100)},
		{"negative amount", claimWith("C001", 0.2, -100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluator.EvaluateFraudRisk(tt.claim)
			assert.ErrorIs(t, err, model.ErrInvalidClaim)

			_, err = evaluator.AssessClaimAmount(tt.claim)
			assert.ErrorIs(t, err, model.ErrInvalidClaim)

			ok, err := evaluator.CanAutoApprove(tt.claim)
			assert.ErrorIs(t, err, model.ErrInvalidClaim)
			assert.False(t, ok)

			_, err = evaluator.Evaluate(tt.claim)
			assert.ErrorIs(t, err, model.ErrInvalidClaim)
		})
	}
}

func TestNewRulesEvaluatorWithThresholds(t *testing.T) {
	t.Run("applies custom thresholds strictly", func(t *testing.T) {
		evaluator, err := service.NewRulesEvaluatorWithThresholds(service.Thresholds{
			FraudRisk:       0.3,
			HighClaimAmount: decimal.NewFromInt(5000),
		})
		require.NoError(t, err)

		atBoundary, err := evaluator.Evaluate(claimWith("C001", 0.3, 5000))
		require.NoError(t, err)
		assert.False(t, atBoundary.FraudEvaluation.IsHighRisk())
		assert.False(t, atBoundary.ClaimAssessment.IsHighClaim())

		above, err := evaluator.Evaluate(claimWith("C002", 0.31, 5001))
		require.NoError(t, err)
		assert.True(t, above.FraudEvaluation.IsHighRisk())
		assert.True(t, above.ClaimAssessment.IsHighClaim())
	})

	t.Run("rejects out of range thresholds", func(t *testing.T) {
		_, err := service.NewRulesEvaluatorWithThresholds(service.Thresholds{
			FraudRisk:       1.5,
			HighClaimAmount: decimal.NewFromInt(5000),
		})
		require.Error(t, err)

		_, err = service.NewRulesEvaluatorWithThresholds(service.Thresholds{
			FraudRisk:       0.5,
			HighClaimAmount: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
	})

	t.Run("rejects a NaN fraud threshold", func(t *testing.T) {
		_, err := service.NewRulesEvaluatorWithThresholds(service.Thresholds{
			FraudRisk:       math.NaN(),
			HighClaimAmount: decimal.NewFromInt(10000),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fraud risk threshold")
	})

	t.Run("defaults are 0.5 and 10000", func(t *testing.T) {
		th := service.NewRulesEvaluator().Thresholds()
		assert.Equal(t, 0.5, th.FraudRisk)
		assert.True(t, decimal.NewFromInt(10000).Equal(th.HighClaimAmount))
	})
}
