package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

// ClaimFilter selects claims by type and status. A nil slice means every
// value is accepted; an empty non-nil slice accepts nothing.
type ClaimFilter struct {
	ClaimTypes []string `json:"claim_types"`
	Statuses   []string `json:"statuses"`
}

// Matches reports whether a claim passes the filter.
func (f ClaimFilter) Matches(c model.Claim) bool {
	return allowed(f.ClaimTypes, c.Type) && allowed(f.Statuses, c.Status.String())
}

func allowed(values []string, v string) bool {
	if values == nil {
		return true
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// ClaimView is a claim together with its derived labels.
type ClaimView struct {
	Amount          decimal.Decimal `json:"amount"`
	ClaimID         string          `json:"claim_id"`
	ClaimType       string          `json:"claim_type"`
	Status          string          `json:"status"`
	Location        string          `json:"location,omitempty"`
	FraudEvaluation string          `json:"fraud_evaluation"`
	ClaimAssessment string          `json:"claim_assessment"`
	FraudRisk       float64         `json:"fraud_risk"`
	ClaimantAge     int             `json:"claimant_age,omitempty"`
	DaysToSettle    int             `json:"days_to_settle,omitempty"`
	HighRisk        bool            `json:"high_risk"`
	HighClaim       bool            `json:"high_claim"`
	AutoApprovable  bool            `json:"auto_approvable"`
}

// NewClaimView maps a claim and its evaluation to the view DTO.
func NewClaimView(c model.Claim, e service.Evaluation) ClaimView {
	return ClaimView{
		ClaimID:         c.ID,
		ClaimType:       c.Type,
		Amount:          c.Amount,
		FraudRisk:       c.FraudRisk,
		Status:          c.Status.String(),
		ClaimantAge:     c.Details.ClaimantAge,
		Location:        c.Details.Location,
		DaysToSettle:    c.Details.DaysToSettle,
		FraudEvaluation: e.FraudEvaluation.String(),
		ClaimAssessment: e.ClaimAssessment.String(),
		HighRisk:        e.FraudEvaluation.IsHighRisk(),
		HighClaim:       e.ClaimAssessment.IsHighClaim(),
		AutoApprovable:  e.AutoApprovable,
	}
}

// LabelCount is one bar of the risk distribution chart.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FromLabelCounts maps domain counts to DTOs.
func FromLabelCounts(counts []service.LabelCount) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, LabelCount{Label: c.Label, Count: c.Count})
	}
	return out
}
