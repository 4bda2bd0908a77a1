package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/application/usecase"
	"github.com/bibbank/claims-dashboard/pkg/money"
)

// Column indexes of the claims table.
const (
	colStatus = 4
	colFraud  = 8
	colAssess = 9
)

func (a *app) claimsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Print evaluated claims as a coloured table",
		Long: `Load claims from the configured source, evaluate them, and print the
claims overview with summary metrics and the risk distribution.

Repeat --type and --status to select several values. Omitting a flag selects
every value.`,
		RunE: a.runClaims,
	}

	cmd.Flags().StringSlice("type", nil, "claim types to include")
	cmd.Flags().StringSlice("status", nil, "claim statuses to include")

	return cmd
}

func (a *app) runClaims(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var filter dto.ClaimFilter
	if cmd.Flags().Changed("type") {
		filter.ClaimTypes, _ = cmd.Flags().GetStringSlice("type")
	}
	if cmd.Flags().Changed("status") {
		filter.Statuses, _ = cmd.Flags().GetStringSlice("status")
	}

	store, cleanup, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	evaluator, _, err := a.newEvaluator(nil)
	if err != nil {
		return err
	}

	resp, err := usecase.NewBuildDashboard(store, evaluator).Execute(ctx, dto.DashboardRequest{Filter: filter})
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Agentic AI Insurance Claims Dashboard"))
	fmt.Fprintln(out, InfoStyle.Render(fmt.Sprintf("Total Claims: %d   High Risk Claims: %d   High Amount Claims: %d",
		resp.Metrics.TotalClaims, resp.Metrics.HighRiskClaims, resp.Metrics.HighAmountClaims)))
	fmt.Fprintln(out)

	if len(resp.Claims) == 0 {
		fmt.Fprintln(out, InfoStyle.Render("No claims match the current filters."))
		return nil
	}

	fmt.Fprintln(out, renderClaimsTable(resp.Claims))
	fmt.Fprintln(out)
	fmt.Fprintln(out, TitleStyle.Render("Claims Risk Distribution"))
	for _, b := range resp.RiskDistribution {
		fmt.Fprintf(out, "  %-28s %d\n", b.Label, b.Count)
	}
	return nil
}

func renderClaimsTable(views []dto.ClaimView) string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.ClaimID,
			v.ClaimType,
			money.FormatUSD(v.Amount),
			strconv.FormatFloat(v.FraudRisk, 'f', 2, 64),
			v.Status,
			strconv.Itoa(v.ClaimantAge),
			v.Location,
			strconv.Itoa(v.DaysToSettle),
			v.FraudEvaluation,
			v.ClaimAssessment,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Claim ID", "Type", "Amount", "Fraud Risk", "Status", "Age", "Location", "Days", "Fraud Evaluation", "Claim Assessment").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			if row < 0 || row >= len(rows) {
				return CellStyle
			}
			switch col {
			case colStatus:
				return statusStyle(rows[row][col])
			case colFraud:
				return riskStyle(rows[row][col])
			case colAssess:
				return assessmentStyle(rows[row][col])
			default:
				return CellStyle
			}
		})

	return t.String()
}
