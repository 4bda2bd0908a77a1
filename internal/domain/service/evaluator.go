package service

import (
	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

// Evaluation is the set of labels derived from a single claim.
type Evaluation struct {
	FraudEvaluation valueobject.FraudEvaluation
	ClaimAssessment valueobject.ClaimAssessment
	ClaimID         string
	AutoApprovable  bool
}

// Evaluator defines the interface for claim labelling strategies.
// RulesEvaluator is the stateless implementation; the cache package wraps it
// with memoization.
type Evaluator interface {
	Evaluate(claim model.Claim) (Evaluation, error)
}
