package valueobject

// DefaultFraudRiskThreshold is the fraud risk above which a claim requires manual review.
const DefaultFraudRiskThreshold = 0.5

// FraudEvaluation is an immutable value object labelling a claim as
// auto-approvable or requiring manual review.
type FraudEvaluation struct {
	value string
}

var (
	FraudEvaluationHighRisk = FraudEvaluation{value: "High Risk - Manual Review"}
	FraudEvaluationLowRisk  = FraudEvaluation{value: "Low Risk - Auto Approve"}
)

// FraudEvaluationFromRisk classifies a fraud risk score against threshold.
// The comparison is strict: a score equal to the threshold is low risk.
func FraudEvaluationFromRisk(risk, threshold float64) FraudEvaluation {
	if risk > threshold {
		return FraudEvaluationHighRisk
	}
	return FraudEvaluationLowRisk
}

// String returns the display label.
func (e FraudEvaluation) String() string {
	return e.value
}

// IsZero returns true if the evaluation has not been set.
func (e FraudEvaluation) IsZero() bool {
	return e.value == ""
}

// Equal checks equality with another FraudEvaluation.
func (e FraudEvaluation) Equal(other FraudEvaluation) bool {
	return e.value == other.value
}

// IsHighRisk returns true if the claim must go to manual review.
func (e FraudEvaluation) IsHighRisk() bool {
	return e.value == FraudEvaluationHighRisk.value
}

// AllowsAutoApproval returns true for the low risk label only.
func (e FraudEvaluation) AllowsAutoApproval() bool {
	return e.value == FraudEvaluationLowRisk.value
}
