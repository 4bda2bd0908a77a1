package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
	"github.com/bibbank/claims-dashboard/pkg/money"
)

//go:embed templates/*.html
var templateFiles embed.FS

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return money.FormatUSD(d)
		},
		"risk": func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		},
		"riskClass": func(label string) string {
			if strings.Contains(label, "High") {
				return "risk-high"
			}
			return "risk-low"
		},
		"assessmentClass": func(label string) string {
			if strings.Contains(label, "High") {
				return "assessment-high"
			}
			return "assessment-standard"
		},
		"statusClass": func(s string) string {
			return "status-" + strings.ToLower(s)
		},
		"contains": func(values []string, v string) bool {
			for _, candidate := range values {
				if candidate == v {
					return true
				}
			}
			return false
		},
		"barWidth": barWidth,
	}
}

// barWidth scales count against the largest bucket as a CSS percentage.
func barWidth(count int, buckets []dto.LabelCount) int {
	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	if maxCount == 0 {
		return 0
	}
	return count * 100 / maxCount
}

// renderTemplate executes a template into a buffer first so a failure never
// leaves a half-written page.
func (s *Server) renderTemplate(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("template error",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
