// Package yamlfile loads claims from a YAML document.
package yamlfile

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/valueobject"
)

// document is the on-disk layout:
//
//	claims:
//	  - claim_id: C001
//	    claim_type: Auto
//	    amount: 5000
//	    fraud_risk: 0.1
//	    status: Pending
type document struct {
	Claims []claimRecord `yaml:"claims"`
}

type claimRecord struct {
	FraudRisk    *float64 `yaml:"fraud_risk"`
	Amount       *string  `yaml:"amount"`
	ID           string   `yaml:"claim_id"`
	Type         string   `yaml:"claim_type"`
	Status       string   `yaml:"status"`
	Location     string   `yaml:"location"`
	ClaimantAge  int      `yaml:"claimant_age"`
	DaysToSettle int      `yaml:"days_to_settle"`
}

// Loader implements port.ClaimLoader by reading a YAML file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadClaims reads and parses the file.
func (l *Loader) LoadClaims(_ context.Context) ([]model.Claim, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read claims file %s: %w", l.path, err)
	}
	return Parse(data)
}

// Parse decodes a claims document. Each record is validated.
func Parse(data []byte) ([]model.Claim, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse claims document: %w", err)
	}

	claims := make([]model.Claim, 0, len(doc.Claims))
	for i, rec := range doc.Claims {
		c, err := rec.toModel()
		if err != nil {
			return nil, fmt.Errorf("claims[%d]: %w", i, err)
		}
		claims = append(claims, c)
	}
	return claims, nil
}

// toModel rejects records that omit amount or fraud_risk; a zero default
// would classify them as Low Risk.
func (r claimRecord) toModel() (model.Claim, error) {
	if r.Amount == nil {
		return model.Claim{}, fmt.Errorf("%w: claim %s: amount is required", model.ErrInvalidClaim, r.ID)
	}
	if r.FraudRisk == nil {
		return model.Claim{}, fmt.Errorf("%w: claim %s: fraud_risk is required", model.ErrInvalidClaim, r.ID)
	}

	amount, err := decimal.NewFromString(*r.Amount)
	if err != nil {
		return model.Claim{}, fmt.Errorf("%w: claim %s: invalid amount %q", model.ErrInvalidClaim, r.ID, *r.Amount)
	}

	status, err := valueobject.ClaimStatusFromString(r.Status)
	if err != nil {
		return model.Claim{}, fmt.Errorf("%w: claim %s: %v", model.ErrInvalidClaim, r.ID, err)
	}

	return model.NewClaim(r.ID, r.Type, amount, *r.FraudRisk, status, model.ClaimantDetails{
		ClaimantAge:  r.ClaimantAge,
		Location:     r.Location,
		DaysToSettle: r.DaysToSettle,
	})
}
