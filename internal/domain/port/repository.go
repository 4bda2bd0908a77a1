package port

import (
	"context"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
)

// ClaimLoader defines the port for reading the claim collection once at startup.
type ClaimLoader interface {
	// LoadClaims returns every claim in display order.
	LoadClaims(ctx context.Context) ([]model.Claim, error)
}

// ClaimRepository defines the read-only port over the loaded claims.
// There are no write operations: claims are fixed for the process lifetime.
type ClaimRepository interface {
	// All returns the full ordered collection.
	All(ctx context.Context) ([]model.Claim, error)

	// FindByID retrieves a claim by its identifier. It returns (nil, nil) when
	// no claim has that identifier.
	FindByID(ctx context.Context, id string) (*model.Claim, error)
}
