package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/application/usecase"
)

// dashboardPage is the template model for dashboard.html.
type dashboardPage struct {
	Feedback *dto.ActionResult
	dto.DashboardResponse
	ApproveURL   template.URL
	FlagURL      template.URL
	FilterFields []hiddenField
}

func (s *Server) handleDashboard(c *gin.Context) {
	s.renderDashboard(c, dashboardRequest(c), nil)
}

func (s *Server) handleApprove(c *gin.Context) {
	result, err := s.uc.ApproveClaim.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.htmlError(c, err)
		return
	}
	s.metrics.RecordAction(c.Request.Context(), result.Action, result.Outcome)
	s.renderAction(c, result)
}

func (s *Server) handleFlag(c *gin.Context) {
	result, err := s.uc.FlagClaim.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.htmlError(c, err)
		return
	}
	s.metrics.RecordAction(c.Request.Context(), result.Action, result.Outcome)
	s.renderAction(c, result)
}

// renderAction shows the dashboard with the acted-on claim selected. When the
// active filter hides that claim the filter is dropped so the banner and the
// detail pane describe the same claim.
func (s *Server) renderAction(c *gin.Context, result dto.ActionResult) {
	req := dashboardRequest(c)
	req.SelectedClaimID = result.ClaimID

	resp, err := s.uc.BuildDashboard.Execute(c.Request.Context(), req)
	if err != nil {
		s.htmlError(c, err)
		return
	}
	if resp.Selected == nil || resp.Selected.ClaimID != result.ClaimID {
		req.Filter = dto.ClaimFilter{}
		if resp, err = s.uc.BuildDashboard.Execute(c.Request.Context(), req); err != nil {
			s.htmlError(c, err)
			return
		}
	}
	s.writeDashboard(c, req, resp, &result)
}

func (s *Server) renderDashboard(c *gin.Context, req dto.DashboardRequest, feedback *dto.ActionResult) {
	resp, err := s.uc.BuildDashboard.Execute(c.Request.Context(), req)
	if err != nil {
		s.htmlError(c, err)
		return
	}
	s.writeDashboard(c, req, resp, feedback)
}

func (s *Server) writeDashboard(c *gin.Context, req dto.DashboardRequest, resp dto.DashboardResponse, feedback *dto.ActionResult) {
	s.metrics.RecordRender(c.Request.Context(), "html")

	page := dashboardPage{
		DashboardResponse: resp,
		Feedback:          feedback,
		FilterFields:      filterFields(req.Filter),
	}
	if resp.Selected != nil {
		page.ApproveURL = actionURL(resp.Selected.ClaimID, dto.ActionApprove, req.Filter)
		page.FlagURL = actionURL(resp.Selected.ClaimID, dto.ActionFlag, req.Filter)
	}

	s.renderTemplate(c, http.StatusOK, "dashboard.html", page)
}

func (s *Server) htmlError(c *gin.Context, err error) {
	status := s.statusFor(c, err)
	c.String(status, http.StatusText(status))
}

// statusFor maps use case errors to HTTP status codes and logs the unexpected ones.
func (s *Server) statusFor(c *gin.Context, err error) int {
	switch {
	case errors.Is(err, usecase.ErrClaimNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidFilter):
		return http.StatusBadRequest
	default:
		_ = c.Error(err)
		return http.StatusInternalServerError
	}
}
