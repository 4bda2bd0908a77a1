package usecase

import (
	"context"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
)

// BuildDashboard is the use case that assembles a full dashboard render from
// the caller's UI state.
type BuildDashboard struct {
	repo      port.ClaimRepository
	evaluator service.Evaluator
}

// NewBuildDashboard creates a new BuildDashboard use case.
func NewBuildDashboard(repo port.ClaimRepository, evaluator service.Evaluator) *BuildDashboard {
	return &BuildDashboard{repo: repo, evaluator: evaluator}
}

// Execute runs one evaluation pass and derives every dashboard section from it.
func (uc *BuildDashboard) Execute(ctx context.Context, req dto.DashboardRequest) (dto.DashboardResponse, error) {
	if err := validateFilter(req.Filter); err != nil {
		return dto.DashboardResponse{}, err
	}

	// 1. Evaluate the whole store.
	all, err := evaluateAll(ctx, uc.repo, uc.evaluator)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	// 2. Headline metrics ignore the filter.
	metrics := dto.DashboardMetrics{TotalClaims: len(all)}
	for _, ec := range all {
		if ec.evaluation.FraudEvaluation.IsHighRisk() {
			metrics.HighRiskClaims++
		}
		if ec.evaluation.ClaimAssessment.IsHighClaim() {
			metrics.HighAmountClaims++
		}
	}

	// 3. Filter options in first-seen order.
	types, statuses := filterOptions(all)

	// 4. Apply the filter for the table, selection and chart.
	filtered := filterEvaluated(all, req.Filter)
	views := toViews(filtered)

	resp := dto.DashboardResponse{
		Metrics:          metrics,
		ClaimTypes:       types,
		Statuses:         statuses,
		SelectedTypes:    effectiveSelection(req.Filter.ClaimTypes, types),
		SelectedStatuses: effectiveSelection(req.Filter.Statuses, statuses),
		Claims:           views,
		RiskDistribution: riskDistribution(filtered),
	}

	// 5. Selection falls back to the first visible claim.
	if len(views) > 0 {
		selected := views[0]
		for _, v := range views {
			if v.ClaimID == req.SelectedClaimID {
				selected = v
				break
			}
		}
		resp.Selected = &selected
	}

	return resp, nil
}

func filterOptions(all []evaluatedClaim) (types, statuses []string) {
	seenType := make(map[string]bool)
	seenStatus := make(map[string]bool)
	types = make([]string, 0)
	statuses = make([]string, 0)

	for _, ec := range all {
		if t := ec.claim.Type; !seenType[t] {
			seenType[t] = true
			types = append(types, t)
		}
		if s := ec.claim.Status.String(); !seenStatus[s] {
			seenStatus[s] = true
			statuses = append(statuses, s)
		}
	}
	return types, statuses
}

// effectiveSelection resolves a nil selection to every option.
func effectiveSelection(selection, options []string) []string {
	if selection == nil {
		out := make([]string, len(options))
		copy(out, options)
		return out
	}
	return selection
}
