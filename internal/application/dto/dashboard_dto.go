package dto

// DashboardRequest carries the UI state for one render. The caller owns this
// state; nothing is remembered between requests.
type DashboardRequest struct {
	SelectedClaimID string      `json:"selected_claim_id"`
	Filter          ClaimFilter `json:"filter"`
}

// DashboardMetrics are the headline numbers, computed over every claim
// regardless of the active filter.
type DashboardMetrics struct {
	TotalClaims      int `json:"total_claims"`
	HighRiskClaims   int `json:"high_risk_claims"`
	HighAmountClaims int `json:"high_amount_claims"`
}

// DashboardResponse is everything needed to render the dashboard.
type DashboardResponse struct {
	Selected         *ClaimView       `json:"selected,omitempty"`
	ClaimTypes       []string         `json:"claim_types"`
	Statuses         []string         `json:"statuses"`
	SelectedTypes    []string         `json:"selected_types"`
	SelectedStatuses []string         `json:"selected_statuses"`
	Claims           []ClaimView      `json:"claims"`
	RiskDistribution []LabelCount     `json:"risk_distribution"`
	Metrics          DashboardMetrics `json:"metrics"`
}

// Action names.
const (
	ActionApprove = "approve"
	ActionFlag    = "flag"
)

// Action outcomes, matching the severity of the feedback banner.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeWarning = "warning"
)

// ActionResult is the ephemeral feedback of an Approve or Flag action. It is
// never stored and the claim is never modified.
type ActionResult struct {
	ClaimID string `json:"claim_id"`
	Action  string `json:"action"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}
