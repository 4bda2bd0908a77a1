package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

// Feedback messages shown after an action.
const (
	MessageAutoApproved   = "Claim Approved Automatically."
	MessageApprovalDenied = "Claim flagged for manual review. Auto-approval not allowed."
	MessageFlagged        = "Claim flagged for manual review."
)

// ApproveClaim is the use case for the automatic approval action. It applies
// the auto-approval gate and reports the outcome without changing the claim.
type ApproveClaim struct {
	repo      port.ClaimRepository
	evaluator service.Evaluator
}

// NewApproveClaim creates a new ApproveClaim use case.
func NewApproveClaim(repo port.ClaimRepository, evaluator service.Evaluator) *ApproveClaim {
	return &ApproveClaim{repo: repo, evaluator: evaluator}
}

// Execute evaluates the claim's current labels and reports success only when
// the fraud evaluation is low risk.
func (uc *ApproveClaim) Execute(ctx context.Context, claimID string) (dto.ActionResult, error) {
	ec, err := findEvaluated(ctx, uc.repo, uc.evaluator, claimID)
	if err != nil {
		return dto.ActionResult{}, err
	}

	result := dto.ActionResult{
		ClaimID: ec.claim.ID,
		Action:  dto.ActionApprove,
	}
	if ec.evaluation.AutoApprovable {
		result.Outcome = dto.OutcomeSuccess
		result.Message = MessageAutoApproved
	} else {
		result.Outcome = dto.OutcomeError
		result.Message = MessageApprovalDenied
	}
	return result, nil
}

// FlagClaim is the use case for the manual review action.
type FlagClaim struct {
	repo port.ClaimRepository
}

// NewFlagClaim creates a new FlagClaim use case.
func NewFlagClaim(repo port.ClaimRepository) *FlagClaim {
	return &FlagClaim{repo: repo}
}

// Execute confirms the claim exists and returns the warning feedback.
func (uc *FlagClaim) Execute(ctx context.Context, claimID string) (dto.ActionResult, error) {
	c, err := uc.repo.FindByID(ctx, claimID)
	if err != nil {
		return dto.ActionResult{}, fmt.Errorf("failed to find claim: %w", err)
	}
	if c == nil {
		return dto.ActionResult{}, fmt.Errorf("%w: %s", ErrClaimNotFound, claimID)
	}

	return dto.ActionResult{
		ClaimID: c.ID,
		Action:  dto.ActionFlag,
		Outcome: dto.OutcomeWarning,
		Message: MessageFlagged,
	}, nil
}
