package usecase

import (
	"context"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

// ListClaims is the use case for listing evaluated claims through a filter.
type ListClaims struct {
	repo      port.ClaimRepository
	evaluator service.Evaluator
}

// NewListClaims creates a new ListClaims use case.
func NewListClaims(repo port.ClaimRepository, evaluator service.Evaluator) *ListClaims {
	return &ListClaims{repo: repo, evaluator: evaluator}
}

// Execute evaluates every claim and returns those matching filter, in store order.
func (uc *ListClaims) Execute(ctx context.Context, filter dto.ClaimFilter) ([]dto.ClaimView, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	all, err := evaluateAll(ctx, uc.repo, uc.evaluator)
	if err != nil {
		return nil, err
	}

	return toViews(filterEvaluated(all, filter)), nil
}
