package valueobject

import "github.com/shopspring/decimal"

// DefaultHighClaimThreshold is the amount above which a claim needs further assessment.
var DefaultHighClaimThreshold = decimal.NewFromInt(10000)

// ClaimAssessment is an immutable value object labelling a claim by its size.
type ClaimAssessment struct {
	value string
}

var (
	ClaimAssessmentHighClaim = ClaimAssessment{value: "High Claim - Further Assessment"}
	ClaimAssessmentStandard  = ClaimAssessment{value: "Standard Claim"}
)

// ClaimAssessmentFromAmount classifies an amount against threshold.
// An amount equal to the threshold is a standard claim.
func ClaimAssessmentFromAmount(amount, threshold decimal.Decimal) ClaimAssessment {
	if amount.GreaterThan(threshold) {
		return ClaimAssessmentHighClaim
	}
	return ClaimAssessmentStandard
}

// String returns the display label.
func (a ClaimAssessment) String() string {
	return a.value
}

// IsZero returns true if the assessment has not been set.
func (a ClaimAssessment) IsZero() bool {
	return a.value == ""
}

// Equal checks equality with another ClaimAssessment.
func (a ClaimAssessment) Equal(other ClaimAssessment) bool {
	return a.value == other.value
}

// IsHighClaim returns true if the claim needs further assessment.
func (a ClaimAssessment) IsHighClaim() bool {
	return a.value == ClaimAssessmentHighClaim.value
}
