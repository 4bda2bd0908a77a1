package usecase

import (
	"context"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

// RiskDistribution is the use case behind the risk distribution chart.
type RiskDistribution struct {
	repo      port.ClaimRepository
	evaluator service.Evaluator
}

// NewRiskDistribution creates a new RiskDistribution use case.
func NewRiskDistribution(repo port.ClaimRepository, evaluator service.Evaluator) *RiskDistribution {
	return &RiskDistribution{repo: repo, evaluator: evaluator}
}

// Execute counts the filtered claims by fraud evaluation, largest bar first.
func (uc *RiskDistribution) Execute(ctx context.Context, filter dto.ClaimFilter) ([]dto.LabelCount, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	all, err := evaluateAll(ctx, uc.repo, uc.evaluator)
	if err != nil {
		return nil, err
	}

	return riskDistribution(filterEvaluated(all, filter)), nil
}
