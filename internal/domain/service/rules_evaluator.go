package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

// Thresholds are the two cut-offs applied by the RulesEvaluator.
// Both comparisons are strict.
type Thresholds struct {
	HighClaimAmount decimal.Decimal
	FraudRisk       float64
}

// DefaultThresholds returns fraud risk 0.5 and high claim amount 10,000.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FraudRisk:       valueobject.DefaultFraudRiskThreshold,
		HighClaimAmount: valueobject.DefaultHighClaimThreshold,
	}
}

// Validate checks that the thresholds describe a usable rule set.
func (t Thresholds) Validate() error {
	if math.IsNaN(t.FraudRisk) || t.FraudRisk < 0 || t.FraudRisk > 1 {
		return fmt.Errorf("fraud risk threshold must be between 0 and 1, got %v", t.FraudRisk)
	}
	if t.HighClaimAmount.IsNegative() {
		return fmt.Errorf("high claim threshold must not be negative, got %s", t.HighClaimAmount)
	}
	return nil
}

// RulesEvaluator is a domain service that labels claims with two independent
// threshold rules. It holds no state besides its thresholds.
type RulesEvaluator struct {
	thresholds Thresholds
}

// NewRulesEvaluator creates a RulesEvaluator using the default thresholds.
func NewRulesEvaluator() *RulesEvaluator {
	return &RulesEvaluator{thresholds: DefaultThresholds()}
}

// NewRulesEvaluatorWithThresholds creates a RulesEvaluator with custom thresholds.
func NewRulesEvaluatorWithThresholds(t Thresholds) (*RulesEvaluator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &RulesEvaluator{thresholds: t}, nil
}

// Thresholds returns the thresholds in use.
func (e *RulesEvaluator) Thresholds() Thresholds {
	return e.thresholds
}

// EvaluateFraudRisk returns High Risk - Manual Review when the claim's fraud
// risk is strictly above the threshold, otherwise Low Risk - Auto Approve.
func (e *RulesEvaluator) EvaluateFraudRisk(claim model.Claim) (valueobject.FraudEvaluation, error) {
	if err := claim.Validate(); err != nil {
		return valueobject.FraudEvaluation{}, err
	}
	return valueobject.FraudEvaluationFromRisk(claim.FraudRisk, e.thresholds.FraudRisk), nil
}

// AssessClaimAmount returns High Claim - Further Assessment when the amount is
// strictly above the threshold, otherwise Standard Claim.
func (e *RulesEvaluator) AssessClaimAmount(claim model.Claim) (valueobject.ClaimAssessment, error) {
	if err := claim.Validate(); err != nil {
		return valueobject.ClaimAssessment{}, err
	}
	return valueobject.ClaimAssessmentFromAmount(claim.Amount, e.thresholds.HighClaimAmount), nil
}

// CanAutoApprove is the auto-approval gate: approval is permitted if and only
// if the fraud evaluation is low risk.
func (e *RulesEvaluator) CanAutoApprove(claim model.Claim) (bool, error) {
	evaluation, err := e.EvaluateFraudRisk(claim)
	if err != nil {
		return false, err
	}
	return evaluation.AllowsAutoApproval(), nil
}

// Evaluate computes both labels and the gate for a claim.
func (e *RulesEvaluator) Evaluate(claim model.Claim) (Evaluation, error) {
	if err := claim.Validate(); err != nil {
		return Evaluation{}, err
	}

	fraud := valueobject.FraudEvaluationFromRisk(claim.FraudRisk, e.thresholds.FraudRisk)
	assessment := valueobject.ClaimAssessmentFromAmount(claim.Amount, e.thresholds.HighClaimAmount)

	return Evaluation{
		ClaimID:         claim.ID,
		FraudEvaluation: fraud,
		ClaimAssessment: assessment,
		AutoApprovable:  fraud.AllowsAutoApproval(),
	}, nil
}
