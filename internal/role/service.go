// AngelaMos | 2026
// service.go

package role

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack-dev/fintrack-api/internal/core"
	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateAssignment validates the level against the role catalog before
// anything touches the database. Assignments never feed back into the
// caller's own session; a re-login picks up the new role.
func (s *Service) CreateAssignment(
	ctx context.Context,
	req CreateAssignmentRequest,
) (*Assignment, error) {
	role, ok := rbac.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf(
			"create assignment: invalid role level %d: %w",
			req.Role,
			core.ErrInvalidInput,
		)
	}

	assignment := &Assignment{
		ID:        uuid.New().String(),
		Role:      role,
		UserID:    req.UserID,
		CompanyID: req.CompanyID,
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *Service) GetAssignment(
	ctx context.Context,
	id string,
) (*Assignment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateAssignment(
	ctx context.Context,
	id string,
	req UpdateAssignmentRequest,
) (*Assignment, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		role, ok := rbac.ParseRole(*req.Role)
		if !ok {
			return nil, fmt.Errorf(
				"update assignment: invalid role level %d: %w",
				*req.Role,
				core.ErrInvalidInput,
			)
		}
		assignment.Role = role
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *Service) DeleteAssignment(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAssignments(
	ctx context.Context,
	params ListParams,
) ([]Assignment, int, error) {
	return s.repo.List(ctx, params)
}
