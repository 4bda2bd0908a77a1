// Package web serves the HTML dashboard and its JSON API over gin.
package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/bibbank/claims-dashboard/internal/application/usecase"
	"github.com/bibbank/claims-dashboard/internal/presentation/middleware"
	"github.com/bibbank/claims-dashboard/internal/presentation/rest"
	"github.com/bibbank/claims-dashboard/pkg/observability"
)

// UseCases groups the application use cases behind the HTTP routes.
type UseCases struct {
	BuildDashboard   *usecase.BuildDashboard
	ListClaims       *usecase.ListClaims
	GetClaim         *usecase.GetClaim
	ApproveClaim     *usecase.ApproveClaim
	FlagClaim        *usecase.FlagClaim
	RiskDistribution *usecase.RiskDistribution
}

// Options wires the server's collaborators. Health, MetricsHandler, Metrics
// and ActionLimiter are optional.
type Options struct {
	Health         *rest.HealthHandler
	MetricsHandler http.Handler
	Metrics        *observability.Metrics
	ActionLimiter  *rate.Limiter
	Logger         *slog.Logger
	UseCases       UseCases
}

// Server is the HTTP front end of the dashboard.
type Server struct {
	router    *gin.Engine
	templates *template.Template
	uc        UseCases
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewServer parses the embedded templates and registers every route.
func NewServer(opts Options) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(opts.Logger))

	s := &Server{
		router:    router,
		templates: tmpl,
		uc:        opts.UseCases,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
	}
	s.registerRoutes(opts)
	return s, nil
}

func (s *Server) registerRoutes(opts Options) {
	limit := middleware.RateLimit(opts.ActionLimiter)

	s.router.GET("/", s.handleDashboard)
	s.router.POST("/claims/:id/approve", limit, s.handleApprove)
	s.router.POST("/claims/:id/flag", limit, s.handleFlag)

	api := s.router.Group("/api/v1")
	api.GET("/claims", s.apiListClaims)
	api.GET("/claims/distribution", s.apiRiskDistribution)
	api.GET("/claims/:id", s.apiGetClaim)
	api.GET("/dashboard", s.apiDashboard)
	api.POST("/claims/:id/approve", limit, s.apiApprove)
	api.POST("/claims/:id/flag", limit, s.apiFlag)

	if opts.Health != nil {
		s.router.GET("/healthz", gin.WrapF(opts.Health.Healthz))
		s.router.GET("/readyz", gin.WrapF(opts.Health.Readyz))
	}
	if opts.MetricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
