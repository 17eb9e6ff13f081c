// AngelaMos | 2026
// dto.go

package role

import (
	"net/url"
	"strconv"
	"time"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

type CreateAssignmentRequest struct {
	Role      int    `json:"role"       validate:"min=0,max=90"`
	UserID    string `json:"user_id"    validate:"required,uuid"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

type UpdateAssignmentRequest struct {
	Role *int `json:"role,omitempty" validate:"omitempty,min=0,max=90"`
}

type AssignmentResponse struct {
	ID        string    `json:"id"`
	Role      rbac.Role `json:"role"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListResponse pages with count plus next/previous page links, the
// shape the dashboard client already consumes.
type ListResponse struct {
	Results  []AssignmentResponse `json:"results"`
	Count    int                  `json:"count"`
	Next     *string              `json:"next"`
	Previous *string              `json:"previous"`
}

type ListParams struct {
	Page      int
	PageSize  int
	UserID    string
	CompanyID string
	Role      *rbac.Role
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToAssignmentResponse(a *Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        a.ID,
		Role:      a.Role,
		UserID:    a.UserID,
		CompanyID: a.CompanyID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// NewListResponse builds page links off the request URL so filters
// survive pagination.
func NewListResponse(
	assignments []Assignment,
	total int,
	params ListParams,
	requestURL *url.URL,
) ListResponse {
	results := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		results = append(results, ToAssignmentResponse(&a))
	}

	resp := ListResponse{
		Results: results,
		Count:   total,
	}

	if params.Offset()+len(assignments) < total {
		next := pageURL(requestURL, params.Page+1)
		resp.Next = &next
	}
	if params.Page > 1 {
		prev := pageURL(requestURL, params.Page-1)
		resp.Previous = &prev
	}

	return resp
}

func pageURL(base *url.URL, page int) string {
	u := *base
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
