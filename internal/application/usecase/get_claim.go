package usecase

import (
	"context"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

// GetClaim is the use case for retrieving one evaluated claim.
type GetClaim struct {
	repo      port.ClaimRepository
	evaluator service.Evaluator
}

// NewGetClaim creates a new GetClaim use case.
func NewGetClaim(repo port.ClaimRepository, evaluator service.Evaluator) *GetClaim {
	return &GetClaim{repo: repo, evaluator: evaluator}
}

// Execute retrieves a claim by ID and evaluates it.
func (uc *GetClaim) Execute(ctx context.Context, claimID string) (dto.ClaimView, error) {
	ec, err := findEvaluated(ctx, uc.repo, uc.evaluator, claimID)
	if err != nil {
		return dto.ClaimView{}, err
	}
	return dto.NewClaimView(ec.claim, ec.evaluation), nil
}
