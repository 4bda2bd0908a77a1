package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

var (
	// ErrInvalidClaim is returned for a claim with a missing identifier, a fraud
	// risk outside [0, 1] or a negative amount.
	ErrInvalidClaim = errors.New("invalid claim")

	// ErrDuplicateClaim is returned when two claims share an identifier.
	ErrDuplicateClaim = errors.New("duplicate claim id")
)

// Claim is a single insurance claim record. Claims are values: the store hands
// out copies and nothing in the application mutates them after loading.
type Claim struct {
	Amount    decimal.Decimal
	Status    valueobject.ClaimStatus
	Details   ClaimantDetails
	ID        string
	Type      string
	FraudRisk float64
}

// ClaimantDetails are descriptive fields with no effect on evaluation.
// Zero values mean the detail is unknown.
type ClaimantDetails struct {
	Location     string
	ClaimantAge  int
	DaysToSettle int
}

// NewClaim builds and validates a claim.
func NewClaim(
	id string,
	claimType string,
	amount decimal.Decimal,
	fraudRisk float64,
	status valueobject.ClaimStatus,
	details ClaimantDetails,
) (Claim, error) {
	c := Claim{
		ID:        strings.TrimSpace(id),
		Type:      strings.TrimSpace(claimType),
		Amount:    amount,
		FraudRisk: fraudRisk,
		Status:    status,
		Details:   details,
	}
	if err := c.Validate(); err != nil {
		return Claim{}, err
	}
	return c, nil
}

// Validate reports whether the claim satisfies the record invariants.
// Every failure wraps ErrInvalidClaim.
func (c Claim) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: claim ID is required", ErrInvalidClaim)
	}
	if c.Type == "" {
		return fmt.Errorf("%w: claim %s: claim type is required", ErrInvalidClaim, c.ID)
	}
	if c.Amount.IsNegative() {
		return fmt.Errorf("%w: claim %s: amount must not be negative, got %s", ErrInvalidClaim, c.ID, c.Amount)
	}
	if math.IsNaN(c.FraudRisk) || c.FraudRisk < 0 || c.FraudRisk > 1 {
		return fmt.Errorf("%w: claim %s: fraud risk must be between 0 and 1, got %v", ErrInvalidClaim, c.ID, c.FraudRisk)
	}
	if c.Status.IsZero() {
		return fmt.Errorf("%w: claim %s: status is required", ErrInvalidClaim, c.ID)
	}
	if c.Details.ClaimantAge < 0 || c.Details.DaysToSettle < 0 {
		return fmt.Errorf("%w: claim %s: claimant details must not be negative", ErrInvalidClaim, c.ID)
	}
	return nil
}

// ValidateCollection checks every claim and rejects duplicate identifiers.
func ValidateCollection(claims []Claim) error {
	seen := make(map[string]struct{}, len(claims))
	for i, c := range claims {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("claim at position %d: %w", i, err)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateClaim, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
