package web

import (
	"html/template"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bibbank/claims-dashboard/internal/application/dto"
)

const (
	paramType   = "type"
	paramStatus = "status"
	paramClaim  = "claim"
)

// selection reads a multi-value filter from the query string. An absent key
// selects everything (nil). A present key selects its non-blank values, so
// "type=" alone is an explicit empty selection.
func selection(c *gin.Context, key string) []string {
	values, ok := c.GetQueryArray(key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func filterFromQuery(c *gin.Context) dto.ClaimFilter {
	return dto.ClaimFilter{
		ClaimTypes: selection(c, paramType),
		Statuses:   selection(c, paramStatus),
	}
}

func dashboardRequest(c *gin.Context) dto.DashboardRequest {
	return dto.DashboardRequest{
		SelectedClaimID: strings.TrimSpace(c.Query(paramClaim)),
		Filter:          filterFromQuery(c),
	}
}

// hiddenField is one name/value pair carried through a form.
type hiddenField struct {
	Name  string
	Value string
}

// filterFields encodes the active filter as hidden inputs, using the same
// blank sentinel the sidebar form sends.
func filterFields(f dto.ClaimFilter) []hiddenField {
	var fields []hiddenField
	add := func(name string, values []string) {
		if values == nil {
			return
		}
		fields = append(fields, hiddenField{Name: name})
		for _, v := range values {
			fields = append(fields, hiddenField{Name: name, Value: v})
		}
	}
	add(paramType, f.ClaimTypes)
	add(paramStatus, f.Statuses)
	return fields
}

// actionURL builds the POST target for an action, keeping the UI state in
// the query string.
func actionURL(claimID, action string, f dto.ClaimFilter) template.URL {
	q := url.Values{}
	for _, field := range filterFields(f) {
		q.Add(field.Name, field.Value)
	}
	q.Set(paramClaim, claimID)

	u := url.URL{
		Path:     "/claims/" + claimID + "/" + action,
		RawPath:  "/claims/" + url.PathEscape(claimID) + "/" + action,
		RawQuery: q.Encode(),
	}
	return template.URL(u.String())
}
