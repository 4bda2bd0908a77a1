package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

const selectClaims = `
	SELECT claim_id, claim_type, amount, fraud_risk, status,
		claimant_age, location, days_to_settle
	FROM claims
	ORDER BY position, claim_id
`

// ClaimLoader implements port.ClaimLoader using PostgreSQL. It only reads.
type ClaimLoader struct {
	pool *pgxpool.Pool
}

// NewClaimLoader creates a new PostgreSQL-backed claim loader.
func NewClaimLoader(pool *pgxpool.Pool) *ClaimLoader {
	return &ClaimLoader{pool: pool}
}

// LoadClaims reads every row of the claims table in display order.
func (l *ClaimLoader) LoadClaims(ctx context.Context) ([]model.Claim, error) {
	rows, err := l.pool.Query(ctx, selectClaims)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	claims := make([]model.Claim, 0)
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate claims: %w", err)
	}

	return claims, nil
}

// claimRow mirrors one row of the claims table. Detail columns are nullable.
type claimRow struct {
	amount       decimal.Decimal
	claimantAge  *int32
	location     *string
	daysToSettle *int32
	id           string
	claimType    string
	status       string
	fraudRisk    float64
}

func scanClaim(row pgx.Row) (model.Claim, error) {
	var r claimRow
	err := row.Scan(
		&r.id, &r.claimType, &r.amount, &r.fraudRisk, &r.status,
		&r.claimantAge, &r.location, &r.daysToSettle,
	)
	if err != nil {
		return model.Claim{}, fmt.Errorf("failed to scan claim row: %w", err)
	}
	return r.toModel()
}

func (r claimRow) toModel() (model.Claim, error) {
	status, err := valueobject.ClaimStatusFromString(r.status)
	if err != nil {
		return model.Claim{}, fmt.Errorf("failed to parse status of claim %s: %w", r.id, err)
	}

	var details model.ClaimantDetails
	if r.claimantAge != nil {
		details.ClaimantAge = int(*r.claimantAge)
	}
	if r.location != nil {
		details.Location = *r.location
	}
	if r.daysToSettle != nil {
		details.DaysToSettle = int(*r.daysToSettle)
	}

	return model.NewClaim(r.id, r.claimType, r.amount, r.fraudRisk, status, details)
}
