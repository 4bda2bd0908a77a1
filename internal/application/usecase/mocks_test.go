package usecase_test

import (
	"context"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/fixture"
)

// mockClaimRepository is a test double for port.ClaimRepository.
type mockClaimRepository struct {
	allFunc      func(ctx context.Context) ([]model.Claim, error)
	findByIDFunc func(ctx context.Context, id string) (*model.Claim, error)
}

func (m *mockClaimRepository) All(ctx context.Context) ([]model.Claim, error) {
	if m.allFunc != nil {
		return m.allFunc(ctx)
	}
	return fixture.Claims(), nil
}

func (m *mockClaimRepository) FindByID(ctx context.Context, id string) (*model.Claim, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	for _, c := range fixture.Claims() {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

// countingEvaluator records how many evaluations were requested.
type countingEvaluator struct {
	next  service.Evaluator
	calls int
}

func (e *countingEvaluator) Evaluate(c model.Claim) (service.Evaluation, error) {
	e.calls++
	return e.next.Evaluate(c)
}
