package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

var (
	// ErrClaimNotFound is returned when no claim has the requested ID.
	ErrClaimNotFound = errors.New("claim not found")

	// ErrInvalidFilter is returned when a filter names an unknown status.
	ErrInvalidFilter = errors.New("invalid filter")
)

// evaluatedClaim pairs a claim with its evaluation for a single pass.
type evaluatedClaim struct {
	claim      model.Claim
	evaluation service.Evaluation
}

// evaluateAll runs a full evaluation pass over the repository.
func evaluateAll(ctx context.Context, repo port.ClaimRepository, evaluator service.Evaluator) ([]evaluatedClaim, error) {
	claims, err := repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	out := make([]evaluatedClaim, 0, len(claims))
	for _, c := range claims {
		e, err := evaluator.Evaluate(c)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate claim %s: %w", c.ID, err)
		}
		out = append(out, evaluatedClaim{claim: c, evaluation: e})
	}
	return out, nil
}

// findEvaluated loads and evaluates a single claim.
func findEvaluated(ctx context.Context, repo port.ClaimRepository, evaluator service.Evaluator, id string) (evaluatedClaim, error) {
	c, err := repo.FindByID(ctx, id)
	if err != nil {
		return evaluatedClaim{}, fmt.Errorf("failed to find claim: %w", err)
	}
	if c == nil {
		return evaluatedClaim{}, fmt.Errorf("%w: %s", ErrClaimNotFound, id)
	}

	e, err := evaluator.Evaluate(*c)
	if err != nil {
		return evaluatedClaim{}, fmt.Errorf("failed to evaluate claim %s: %w", id, err)
	}
	return evaluatedClaim{claim: *c, evaluation: e}, nil
}

func validateFilter(f dto.ClaimFilter) error {
	for _, s := range f.Statuses {
		if _, err := valueobject.ClaimStatusFromString(s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
	}
	return nil
}

func filterEvaluated(all []evaluatedClaim, f dto.ClaimFilter) []evaluatedClaim {
	out := make([]evaluatedClaim, 0, len(all))
	for _, ec := range all {
		if f.Matches(ec.claim) {
			out = append(out, ec)
		}
	}
	return out
}

func toViews(items []evaluatedClaim) []dto.ClaimView {
	views := make([]dto.ClaimView, 0, len(items))
	for _, ec := range items {
		views = append(views, dto.NewClaimView(ec.claim, ec.evaluation))
	}
	return views
}

func riskDistribution(items []evaluatedClaim) []dto.LabelCount {
	counts := service.GroupCount(items, func(ec evaluatedClaim) string {
		return service.FraudEvaluationKey(ec.evaluation)
	})
	return dto.FromLabelCounts(service.SortedCounts(counts))
}
