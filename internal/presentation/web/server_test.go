package web_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/internal/application/usecase"
	"github.com/bibbank/claims-dashboard/internal/domain/model"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/fixture"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/memory"
	"github.com/bibbank/claims-dashboard/internal/presentation/rest"
	"github.com/bibbank/claims-dashboard/internal/presentation/web"
)

func newTestServer(t *testing.T, limiter *rate.Limiter) http.Handler {
	t.Helper()
	return newTestServerWithClaims(t, fixture.Claims(), limiter)
}

func newTestServerWithClaims(t *testing.T, claims []model.Claim, limiter *rate.Limiter) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := memory.NewClaimsStore(claims)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	evaluator := service.NewRulesEvaluator()

	srv, err := web.NewServer(web.Options{
		Logger:        logger,
		ActionLimiter: limiter,
		Health:        rest.NewHealthHandler(logger, nil),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
		UseCases: web.UseCases{
			BuildDashboard:   usecase.NewBuildDashboard(store, evaluator),
			ListClaims:       usecase.NewListClaims(store, evaluator),
			GetClaim:         usecase.NewGetClaim(store, evaluator),
			ApproveClaim:     usecase.NewApproveClaim(store, evaluator),
			FlagClaim:        usecase.NewFlagClaim(store),
			RiskDistribution: usecase.NewRiskDistribution(store, evaluator),
		},
	})
	require.NoError(t, err)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestDashboardPage(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("renders every section", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		assert.Contains(t, body, "Agentic AI Insurance Claims Dashboard")
		assert.Contains(t, body, "$12,000.00")
		assert.Contains(t, body, `class="risk-high">High Risk - Manual Review`)
		assert.Contains(t, body, `class="status-approved">Approved`)
		assert.Contains(t, body, "<strong>Claim ID:</strong> C001")
		assert.Contains(t, body, "Claims Risk Distribution")
		assert.Contains(t, body, "width: 100%")
	})

	t.Run("selects the requested claim", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/?claim=C002")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<strong>Location:</strong> Riyadh")
		assert.Contains(t, rec.Body.String(), "<strong>Fraud Risk:</strong> 0.40")
	})

	t.Run("explicit empty selection hides every claim", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/?type=")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "No claims match the current filters.")
		assert.Contains(t, body, "No claim selected.")
		assert.Contains(t, body, "No claims to chart.")
	})

	t.Run("unknown status is a bad request", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/?status=Closed")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDashboardActions(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("approve low risk shows success banner", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/claims/C001/approve")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `feedback-success`)
		assert.Contains(t, rec.Body.String(), "Claim Approved Automatically.")
	})

	t.Run("approve high risk shows error banner and keeps filters", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/claims/C004/approve?type=&type=Auto")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Claim flagged for manual review. Auto-approval not allowed.")
		assert.Contains(t, body, "<strong>Claim ID:</strong> C004")
		assert.NotContains(t, body, "<td>C002</td>")
	})

	t.Run("flag shows warning banner", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/claims/C003/flag")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "feedback-warning")
	})

	t.Run("unknown claim is not found", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/claims/C999/flag")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("claim hidden by the filter is shown with the banner", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/claims/C002/approve?type=&type=Auto")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Claim Approved Automatically.")
		assert.Contains(t, body, "<strong>Claim ID:</strong> C002")
		assert.Contains(t, body, "<td>C002</td>")
	})
}

func TestDashboardActions_EscapedClaimID(t *testing.T) {
	claims := fixture.Claims()
	claims[0].ID = "C 1"
	h := newTestServerWithClaims(t, claims, nil)

	page := do(t, h, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `action="/claims/C%201/approve?`)

	rec := do(t, h, http.MethodPost, "/claims/C%201/approve")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<strong>Claim ID:</strong> C 1")
}

func TestAPI(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("lists claims with filters", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/claims?status=Approved")

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Claims []dto.ClaimView `json:"claims"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body.Claims, 1)
		assert.Equal(t, "C003", body.Claims[0].ClaimID)
	})

	t.Run("gets one claim", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/claims/C002")

		require.Equal(t, http.StatusOK, rec.Code)
		var view dto.ClaimView
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
		assert.Equal(t, "High Claim - Further Assessment", view.ClaimAssessment)
		assert.Equal(t, "12000", view.Amount.String())
	})

	t.Run("missing claim is 404 with error body", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/claims/nope")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("distribution", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/claims/distribution")

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Buckets []dto.LabelCount `json:"buckets"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, []dto.LabelCount{
			{Label: "Low Risk - Auto Approve", Count: 4},
			{Label: "High Risk - Manual Review", Count: 1},
		}, body.Buckets)
	})

	t.Run("dashboard", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/dashboard?claim=C004")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.DashboardResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, dto.DashboardMetrics{TotalClaims: 5, HighRiskClaims: 1, HighAmountClaims: 1}, resp.Metrics)
		require.NotNil(t, resp.Selected)
		assert.Equal(t, "C004", resp.Selected.ClaimID)
	})

	t.Run("bad status filter is 400", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/claims?status=Open")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("approve and flag", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/claims/C004/approve")
		require.Equal(t, http.StatusOK, rec.Code)
		var result dto.ActionResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, dto.OutcomeError, result.Outcome)

		rec = do(t, h, http.MethodPost, "/api/v1/claims/C004/flag")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, dto.OutcomeWarning, result.Outcome)
	})
}

func TestProbesAndMetrics(t *testing.T) {
	h := newTestServer(t, nil)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/readyz").Code)

	rec := do(t, h, http.MethodGet, "/metrics")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "# metrics"))
}

func TestActionRateLimit(t *testing.T) {
	h := newTestServer(t, rate.NewLimiter(rate.Limit(0.001), 1))

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/claims/C001/flag").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodPost, "/api/v1/claims/C001/flag").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/claims").Code, "reads are not limited")
}
