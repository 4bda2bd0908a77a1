package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
)

func (s *Server) apiListClaims(c *gin.Context) {
	views, err := s.uc.ListClaims.Execute(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": views})
}

func (s *Server) apiGetClaim(c *gin.Context) {
	view, err := s.uc.GetClaim.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) apiRiskDistribution(c *gin.Context) {
	counts, err := s.uc.RiskDistribution.Execute(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buckets": counts})
}

func (s *Server) apiDashboard(c *gin.Context) {
	resp, err := s.uc.BuildDashboard.Execute(c.Request.Context(), dashboardRequest(c))
	if err != nil {
		s.apiError(c, err)
		return
	}
	s.metrics.RecordRender(c.Request.Context(), "api")
	c.JSON(http.StatusOK, resp)
}

func (s *Server) apiApprove(c *gin.Context) {
	result, err := s.uc.ApproveClaim.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	s.writeAction(c, result)
}

func (s *Server) apiFlag(c *gin.Context) {
	result, err := s.uc.FlagClaim.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	s.writeAction(c, result)
}

func (s *Server) writeAction(c *gin.Context, result dto.ActionResult) {
	s.metrics.RecordAction(c.Request.Context(), result.Action, result.Outcome)
	c.JSON(http.StatusOK, result)
}

func (s *Server) apiError(c *gin.Context, err error) {
	status := s.statusFor(c, err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}
