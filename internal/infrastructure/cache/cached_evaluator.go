// Package cache memoizes claim evaluations in process memory.
package cache

import (
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

// Compile-time assertion that CachedEvaluator implements service.Evaluator.
var _ service.Evaluator = (*CachedEvaluator)(nil)

// CachedEvaluator wraps an Evaluator and memoizes results per claim. The key
// includes every input field the rules read, so an entry can never describe a
// claim whose inputs have changed.
type CachedEvaluator struct {
	next  service.Evaluator
	cache *gocache.Cache
}

// NewCachedEvaluator creates a memoizing evaluator. A ttl of zero keeps
// entries until the process exits.
func NewCachedEvaluator(next service.Evaluator, ttl time.Duration) *CachedEvaluator {
	expiration := ttl
	cleanup := 2 * ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
		cleanup = 0
	}
	return &CachedEvaluator{
		next:  next,
		cache: gocache.New(expiration, cleanup),
	}
}

// Evaluate returns the cached evaluation or computes and stores a new one.
// Errors are never cached.
func (c *CachedEvaluator) Evaluate(claim model.Claim) (service.Evaluation, error) {
	key := Key(claim)
	if v, found := c.cache.Get(key); found {
		return v.(service.Evaluation), nil
	}

	evaluation, err := c.next.Evaluate(claim)
	if err != nil {
		return service.Evaluation{}, err
	}

	c.cache.SetDefault(key, evaluation)
	return evaluation, nil
}

// Len returns the number of cached evaluations.
func (c *CachedEvaluator) Len() int {
	return c.cache.ItemCount()
}

// Key builds the cache key for a claim from its identifier and rule inputs.
func Key(claim model.Claim) string {
	var b strings.Builder
	b.WriteString("claims:v1:")
	b.WriteString(claim.ID)
	b.WriteByte('|')
	b.WriteString(claim.Amount.String())
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(claim.FraudRisk, 'g', -1, 64))
	return b.String()
}
