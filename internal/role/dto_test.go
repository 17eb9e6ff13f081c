// AngelaMos | 2026
// dto_test.go

package role

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func makeAssignments(n int) []Assignment {
	assignments := make([]Assignment, n)
	for i := range assignments {
		assignments[i] = Assignment{
			ID:        "assignment",
			Role:      rbac.RoleUser,
			UserID:    "user-1",
			CompanyID: "company-1",
		}
	}
	return assignments
}

func TestListResponseMiddlePage(t *testing.T) {
	params := ListParams{Page: 2, PageSize: 10}
	reqURL := mustParseURL(t, "/api/v1/roles?page=2&limit=10&company_id=company-1")

	resp := NewListResponse(makeAssignments(10), 30, params, reqURL)

	assert.Equal(t, 30, resp.Count)
	assert.Len(t, resp.Results, 10)

	require.NotNil(t, resp.Next)
	next := mustParseURL(t, *resp.Next)
	assert.Equal(t, "3", next.Query().Get("page"))
	assert.Equal(t, "company-1", next.Query().Get("company_id"),
		"filters must survive pagination")

	require.NotNil(t, resp.Previous)
	prev := mustParseURL(t, *resp.Previous)
	assert.Equal(t, "1", prev.Query().Get("page"))
}

func TestListResponseFirstPage(t *testing.T) {
	params := ListParams{Page: 1, PageSize: 10}
	reqURL := mustParseURL(t, "/api/v1/roles?page=1")

	resp := NewListResponse(makeAssignments(10), 25, params, reqURL)

	assert.Nil(t, resp.Previous)
	require.NotNil(t, resp.Next)
}

func TestListResponseLastPage(t *testing.T) {
	params := ListParams{Page: 3, PageSize: 10}
	reqURL := mustParseURL(t, "/api/v1/roles?page=3")

	resp := NewListResponse(makeAssignments(5), 25, params, reqURL)

	assert.Nil(t, resp.Next)
	require.NotNil(t, resp.Previous)
}

func TestListResponseSinglePage(t *testing.T) {
	params := ListParams{Page: 1, PageSize: 20}
	reqURL := mustParseURL(t, "/api/v1/roles")

	resp := NewListResponse(makeAssignments(3), 3, params, reqURL)

	assert.Nil(t, resp.Next)
	assert.Nil(t, resp.Previous)
	assert.Equal(t, 3, resp.Count)
}

func TestListResponseEmpty(t *testing.T) {
	params := ListParams{Page: 1, PageSize: 20}
	reqURL := mustParseURL(t, "/api/v1/roles")

	resp := NewListResponse(nil, 0, params, reqURL)

	assert.NotNil(t, resp.Results, "results serializes as [] not null")
	assert.Empty(t, resp.Results)
	assert.Nil(t, resp.Next)
	assert.Nil(t, resp.Previous)
}

func TestListParamsNormalize(t *testing.T) {
	p := ListParams{Page: 0, PageSize: 0}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)

	p = ListParams{Page: 3, PageSize: 500}
	p.Normalize()
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}
