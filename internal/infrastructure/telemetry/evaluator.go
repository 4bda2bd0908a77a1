// Package telemetry decorates domain services with metrics.
package telemetry

import (
	"context"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
	"github.com/bibbank/claims-dashboard/pkg/observability"
)

var _ service.Evaluator = (*InstrumentedEvaluator)(nil)

// InstrumentedEvaluator counts successful evaluations by fraud label.
type InstrumentedEvaluator struct {
	next    service.Evaluator
	metrics *observability.Metrics
}

// NewInstrumentedEvaluator wraps next. A nil metrics disables counting.
func NewInstrumentedEvaluator(next service.Evaluator, metrics *observability.Metrics) *InstrumentedEvaluator {
	return &InstrumentedEvaluator{next: next, metrics: metrics}
}

// Evaluate delegates to the wrapped evaluator and records the result.
func (e *InstrumentedEvaluator) Evaluate(claim model.Claim) (service.Evaluation, error) {
	evaluation, err := e.next.Evaluate(claim)
	if err != nil {
		return service.Evaluation{}, err
	}
	e.metrics.RecordEvaluation(context.Background(), evaluation.FraudEvaluation.String())
	return evaluation, nil
}
