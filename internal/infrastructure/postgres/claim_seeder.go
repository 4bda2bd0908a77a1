package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
)

const (
	deleteClaims = `DELETE FROM claims`

	insertClaim = `
		INSERT INTO claims (
			claim_id, position, claim_type, amount, fraud_risk, status,
			claimant_age, location, days_to_settle
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
)

// ClaimSeeder replaces the contents of the claims table. It backs the
// seed command; the dashboard itself never writes.
type ClaimSeeder struct {
	pool *pgxpool.Pool
}

// NewClaimSeeder creates a new seeder.
func NewClaimSeeder(pool *pgxpool.Pool) *ClaimSeeder {
	return &ClaimSeeder{pool: pool}
}

// ReplaceClaims atomically swaps the table contents for claims, keeping
// their order in the position column.
func (s *ClaimSeeder) ReplaceClaims(ctx context.Context, claims []model.Claim) error {
	if err := model.ValidateCollection(claims); err != nil {
		return fmt.Errorf("failed to validate claims: %w", err)
	}

	return inTransaction(ctx, s.pool, func(q execer) error {
		return writeClaims(ctx, q, claims)
	})
}

func writeClaims(ctx context.Context, q execer, claims []model.Claim) error {
	if _, err := q.Exec(ctx, deleteClaims); err != nil {
		return fmt.Errorf("failed to clear claims: %w", err)
	}

	for i, c := range claims {
		args := claimArgs(i, c)
		if _, err := q.Exec(ctx, insertClaim, args...); err != nil {
			return fmt.Errorf("failed to insert claim %s: %w", c.ID, err)
		}
	}
	return nil
}

// claimArgs maps a claim to insert arguments. Zero details are stored as NULL.
func claimArgs(position int, c model.Claim) []any {
	var (
		age      *int32
		location *string
		days     *int32
	)
	if c.Details.ClaimantAge > 0 {
		v := int32(c.Details.ClaimantAge)
		age = &v
	}
	if c.Details.Location != "" {
		v := c.Details.Location
		location = &v
	}
	if c.Details.DaysToSettle > 0 {
		v := int32(c.Details.DaysToSettle)
		days = &v
	}

	return []any{
		c.ID, int32(position), c.Type, c.Amount, c.FraudRisk, c.Status.String(),
		age, location, days,
	}
}
