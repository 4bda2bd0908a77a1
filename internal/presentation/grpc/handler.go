package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/application/usecase"
	"github.com/bibbank/claims-dashboard/pkg/observability"
)

// Compile-time assertion that ClaimsServiceHandler implements ClaimsServiceServer.
var _ ClaimsServiceServer = (*ClaimsServiceHandler)(nil)

// ClaimsServiceHandler implements the gRPC ClaimsServiceServer interface.
type ClaimsServiceHandler struct {
	UnimplementedClaimsServiceServer
	listClaims       *usecase.ListClaims
	getClaim         *usecase.GetClaim
	approveClaim     *usecase.ApproveClaim
	flagClaim        *usecase.FlagClaim
	riskDistribution *usecase.RiskDistribution
	metrics          *observability.Metrics
	logger           *slog.Logger
}

// UseCases groups the application use cases the handler delegates to.
type UseCases struct {
	ListClaims       *usecase.ListClaims
	GetClaim         *usecase.GetClaim
	ApproveClaim     *usecase.ApproveClaim
	FlagClaim        *usecase.FlagClaim
	RiskDistribution *usecase.RiskDistribution
}

// NewClaimsServiceHandler creates a new gRPC handler. metrics may be nil.
func NewClaimsServiceHandler(uc UseCases, metrics *observability.Metrics, logger *slog.Logger) *ClaimsServiceHandler {
	return &ClaimsServiceHandler{
		listClaims:       uc.ListClaims,
		getClaim:         uc.GetClaim,
		approveClaim:     uc.ApproveClaim,
		flagClaim:        uc.FlagClaim,
		riskDistribution: uc.RiskDistribution,
		metrics:          metrics,
		logger:           logger,
	}
}

// Request/response message types.

// ListClaimsRequest filters claims. A null or omitted list accepts every
// value; an empty list accepts none.
type ListClaimsRequest struct {
	ClaimTypes []string `json:"claim_types"`
	Statuses   []string `json:"statuses"`
}

// ClaimMsg is a claim with its derived labels.
type ClaimMsg struct {
	ClaimID         string  `json:"claim_id"`
	ClaimType       string  `json:"claim_type"`
	Amount          string  `json:"amount"`
	Status          string  `json:"status"`
	Location        string  `json:"location,omitempty"`
	FraudEvaluation string  `json:"fraud_evaluation"`
	ClaimAssessment string  `json:"claim_assessment"`
	FraudRisk       float64 `json:"fraud_risk"`
	ClaimantAge     int32   `json:"claimant_age,omitempty"`
	DaysToSettle    int32   `json:"days_to_settle,omitempty"`
	AutoApprovable  bool    `json:"auto_approvable"`
}

// ListClaimsResponse carries the filtered claims in store order.
type ListClaimsResponse struct {
	Claims []*ClaimMsg `json:"claims"`
}

// GetClaimRequest identifies one claim.
type GetClaimRequest struct {
	ClaimID string `json:"claim_id"`
}

// GetClaimResponse carries one evaluated claim.
type GetClaimResponse struct {
	Claim *ClaimMsg `json:"claim"`
}

// ClaimActionRequest identifies the claim an action applies to.
type ClaimActionRequest struct {
	ClaimID string `json:"claim_id"`
}

// ClaimActionResponse is the feedback of an action.
type ClaimActionResponse struct {
	ClaimID string `json:"claim_id"`
	Action  string `json:"action"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// LabelCountMsg is one bar of the risk distribution.
type LabelCountMsg struct {
	Label string `json:"label"`
	Count int32  `json:"count"`
}

// RiskDistributionResponse carries the chart bars, largest first.
type RiskDistributionResponse struct {
	Buckets []*LabelCountMsg `json:"buckets"`
}

// ListClaims handles a list claims request.
func (h *ClaimsServiceHandler) ListClaims(ctx context.Context, req *ListClaimsRequest) (*ListClaimsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	views, err := h.listClaims.Execute(ctx, toFilter(req))
	if err != nil {
		return nil, h.toStatus("list claims", err)
	}

	claims := make([]*ClaimMsg, 0, len(views))
	for _, v := range views {
		claims = append(claims, toClaimMsg(v))
	}
	return &ListClaimsResponse{Claims: claims}, nil
}

// GetClaim handles a get claim request.
func (h *ClaimsServiceHandler) GetClaim(ctx context.Context, req *GetClaimRequest) (*GetClaimResponse, error) {
	claimID, err := requireClaimID(req.GetClaimID())
	if err != nil {
		return nil, err
	}

	view, err := h.getClaim.Execute(ctx, claimID)
	if err != nil {
		return nil, h.toStatus("get claim", err)
	}
	return &GetClaimResponse{Claim: toClaimMsg(view)}, nil
}

// ApproveClaim handles an auto-approval request.
func (h *ClaimsServiceHandler) ApproveClaim(ctx context.Context, req *ClaimActionRequest) (*ClaimActionResponse, error) {
	claimID, err := requireClaimID(req.GetClaimID())
	if err != nil {
		return nil, err
	}

	result, err := h.approveClaim.Execute(ctx, claimID)
	if err != nil {
		return nil, h.toStatus("approve claim", err)
	}
	return h.actionResponse(ctx, result), nil
}

// FlagClaim handles a manual review request.
func (h *ClaimsServiceHandler) FlagClaim(ctx context.Context, req *ClaimActionRequest) (*ClaimActionResponse, error) {
	claimID, err := requireClaimID(req.GetClaimID())
	if err != nil {
		return nil, err
	}

	result, err := h.flagClaim.Execute(ctx, claimID)
	if err != nil {
		return nil, h.toStatus("flag claim", err)
	}
	return h.actionResponse(ctx, result), nil
}

// GetRiskDistribution handles a risk distribution request.
func (h *ClaimsServiceHandler) GetRiskDistribution(ctx context.Context, req *ListClaimsRequest) (*RiskDistributionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	counts, err := h.riskDistribution.Execute(ctx, toFilter(req))
	if err != nil {
		return nil, h.toStatus("risk distribution", err)
	}

	buckets := make([]*LabelCountMsg, 0, len(counts))
	for _, c := range counts {
		buckets = append(buckets, &LabelCountMsg{Label: c.Label, Count: int32(c.Count)})
	}
	return &RiskDistributionResponse{Buckets: buckets}, nil
}

// GetClaimID returns the claim ID, tolerating a nil receiver.
func (r *GetClaimRequest) GetClaimID() string {
	if r == nil {
		return ""
	}
	return r.ClaimID
}

// GetClaimID returns the claim ID, tolerating a nil receiver.
func (r *ClaimActionRequest) GetClaimID() string {
	if r == nil {
		return ""
	}
	return r.ClaimID
}

func requireClaimID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", status.Error(codes.InvalidArgument, "claim_id is required")
	}
	return id, nil
}

func toFilter(req *ListClaimsRequest) dto.ClaimFilter {
	return dto.ClaimFilter{ClaimTypes: req.ClaimTypes, Statuses: req.Statuses}
}

func toClaimMsg(v dto.ClaimView) *ClaimMsg {
	return &ClaimMsg{
		ClaimID:         v.ClaimID,
		ClaimType:       v.ClaimType,
		Amount:          v.Amount.StringFixed(2),
		Status:          v.Status,
		Location:        v.Location,
		FraudEvaluation: v.FraudEvaluation,
		ClaimAssessment: v.ClaimAssessment,
		FraudRisk:       v.FraudRisk,
		ClaimantAge:     int32(v.ClaimantAge),
		DaysToSettle:    int32(v.DaysToSettle),
		AutoApprovable:  v.AutoApprovable,
	}
}

func (h *ClaimsServiceHandler) actionResponse(ctx context.Context, r dto.ActionResult) *ClaimActionResponse {
	h.metrics.RecordAction(ctx, r.Action, r.Outcome)
	h.logger.Info("claim action",
		slog.String("claim_id", r.ClaimID),
		slog.String("action", r.Action),
		slog.String("outcome", r.Outcome),
	)
	return &ClaimActionResponse{
		ClaimID: r.ClaimID,
		Action:  r.Action,
		Outcome: r.Outcome,
		Message: r.Message,
	}
}

// toStatus maps use case errors to gRPC status codes.
func (h *ClaimsServiceHandler) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrClaimNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, usecase.ErrInvalidFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		h.logger.Error("failed to "+op, slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal error")
	}
}
