package model_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

func validClaim() model.Claim {
	return model.Claim{
		ID:        "C001",
		Type:      "Auto",
		Amount:    decimal.NewFromInt(5000),
		FraudRisk: 0.1,
		Status:    valueobject.ClaimStatusPending,
		Details: model.ClaimantDetails{
			ClaimantAge:  34,
			Location:     "Dubai",
			DaysToSettle: 10,
		},
	}
}

func TestNewClaim(t *testing.T) {
	t.Run("creates a valid claim", func(t *testing.T) {
		c, err := model.NewClaim(" C001 ", "Auto", decimal.NewFromInt(5000), 0.1,
			valueobject.ClaimStatusPending, model.ClaimantDetails{Location: "Dubai"})

		require.NoError(t, err)
		assert.Equal(t, "C001", c.ID)
		assert.Equal(t, "Auto", c.Type)
		assert.True(t, decimal.NewFromInt(5000).Equal(c.Amount))
		assert.Equal(t, "Dubai", c.Details.Location)
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		_, err := model.NewClaim("C100", "Home", decimal.Zero, 0, valueobject.ClaimStatusApproved, model.ClaimantDetails{})
		require.NoError(t, err)

		_, err = model.NewClaim("C101", "Home", decimal.NewFromInt(1), 1, valueobject.ClaimStatusRejected, model.ClaimantDetails{})
		require.NoError(t, err)
	})
}

func TestClaim_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *model.Claim)
		message string
	}{
		{"missing ID", func(c *model.Claim) { c.ID = "" }, "claim ID is required"},
		{"missing type", func(c *model.Claim) { c.Type = "" }, "claim type is required"},
		{"negative amount", func(c *model.Claim) { c.Amount = decimal.NewFromInt(-1) }, "amount must not be negative"},
		{"fraud risk above 1", func(c *model.Claim) { c.FraudRisk = 1.2 }, "fraud risk must be between 0 and 1"},
		{"fraud risk below 0", func(c *model.Claim) { c.FraudRisk = -0.01 }, "fraud risk must be between 0 and 1"},
		{"fraud risk NaN", func(c *model.Claim) { c.FraudRisk = math.NaN() }, "fraud risk must be between 0 and 1"},
		{"missing status", func(c *model.Claim) { c.Status = valueobject.ClaimStatus{} }, "status is required"},
		{"negative age", func(c *model.Claim) { c.Details.ClaimantAge = -3 }, "claimant details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClaim()
			tt.mutate(&c)

			err := c.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidClaim)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateCollection(t *testing.T) {
	t.Run("accepts unique valid claims", func(t *testing.T) {
		a := validClaim()
		b := validClaim()
		b.ID = "C002"

		require.NoError(t, model.ValidateCollection([]model.Claim{a, b}))
	})

	t.Run("rejects duplicate IDs", func(t *testing.T) {
		err := model.ValidateCollection([]model.Claim{validClaim(), validClaim()})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDuplicateClaim)
	})

	t.Run("reports the position of an invalid claim", func(t *testing.T) {
		bad := validClaim()
		bad.ID = "C009"
		bad.FraudRisk = 2

		err := model.ValidateCollection([]model.Claim{validClaim(), bad})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidClaim)
		assert.Contains(t, err.Error(), "position 1")
	})

	t.Run("accepts an empty collection", func(t *testing.T) {
		require.NoError(t, model.ValidateCollection(nil))
	})
}
