package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/port"
)

// Compile-time assertion that ClaimsStore implements port.ClaimRepository.
var _ port.ClaimRepository = (*ClaimsStore)(nil)

// ClaimsStore is the immutable in-memory claim collection. It is built once
// and only read afterwards, so it needs no locking.
type ClaimsStore struct {
	byID   map[string]int
	claims []model.Claim
}

// NewClaimsStore validates claims and freezes them into a store.
func NewClaimsStore(claims []model.Claim) (*ClaimsStore, error) {
	if err := model.ValidateCollection(claims); err != nil {
		return nil, err
	}

	s := &ClaimsStore{
		claims: make([]model.Claim, len(claims)),
		byID:   make(map[string]int, len(claims)),
	}
	copy(s.claims, claims)
	for i, c := range s.claims {
		s.byID[c.ID] = i
	}
	return s, nil
}

// Load reads all claims from loader and builds a store from them.
func Load(ctx context.Context, loader port.ClaimLoader, logger *slog.Logger) (*ClaimsStore, error) {
	claims, err := loader.LoadClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claims: %w", err)
	}

	store, err := NewClaimsStore(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to build claims store: %w", err)
	}

	logger.Info("claims store loaded", slog.Int("claims", store.Len()))
	return store, nil
}

// All returns a copy of the ordered collection.
func (s *ClaimsStore) All(_ context.Context) ([]model.Claim, error) {
	out := make([]model.Claim, len(s.claims))
	copy(out, s.claims)
	return out, nil
}

// FindByID retrieves a claim by its identifier.
func (s *ClaimsStore) FindByID(_ context.Context, id string) (*model.Claim, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	c := s.claims[i]
	return &c, nil
}

// Len returns the number of claims held.
func (s *ClaimsStore) Len() int {
	return len(s.claims)
}
