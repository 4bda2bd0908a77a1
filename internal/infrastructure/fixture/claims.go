// Package fixture provides the built-in mock claim data set.
package fixture

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

// Loader implements port.ClaimLoader with the built-in mock claims.
type Loader struct{}

// NewLoader creates a fixture loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadClaims returns a fresh copy of the mock claims.
func (l *Loader) LoadClaims(_ context.Context) ([]model.Claim, error) {
	return Claims(), nil
}

// Claims returns the mock claim data set in display order.
func Claims() []model.Claim {
	return []model.Claim{
		{
			ID: "C001", Type: "Auto", Amount: decimal.NewFromInt(5000), FraudRisk: 0.1,
			Status:  valueobject.ClaimStatusPending,
			Details: model.ClaimantDetails{ClaimantAge: 34, Location: "Dubai", DaysToSettle: 10},
		},
		{
			ID: "C002", Type: "Home", Amount: decimal.NewFromInt(12000), FraudRisk: 0.4,
			Status:  valueobject.ClaimStatusPending,
			Details: model.ClaimantDetails{ClaimantAge: 58, Location: "Riyadh", DaysToSettle: 25},
		},
		{
			ID: "C003", Type: "Health", Amount: decimal.NewFromInt(3000), FraudRisk: 0.05,
			Status:  valueobject.ClaimStatusApproved,
			Details: model.ClaimantDetails{ClaimantAge: 48, Location: "Doha", DaysToSettle: 7},
		},
		{
			ID: "C004", Type: "Auto", Amount: decimal.NewFromInt(8000), FraudRisk: 0.8,
			Status:  valueobject.ClaimStatusPending,
			Details: model.ClaimantDetails{ClaimantAge: 27, Location: "Manama", DaysToSettle: 15},
		},
		{
			ID: "C005", Type: "Travel", Amount: decimal.NewFromInt(1500), FraudRisk: 0.2,
			Status:  valueobject.ClaimStatusPending,
			Details: model.ClaimantDetails{ClaimantAge: 42, Location: "Muscat", DaysToSettle: 5},
		},
	}
}
