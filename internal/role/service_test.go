// AngelaMos | 2026
// service_test.go

package role

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack-api/internal/core"
	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, a *Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Assignment), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, a *Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListParams,
) ([]Assignment, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Assignment), args.Int(1), args.Error(2)
}

func TestCreateAssignment(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *Assignment) bool {
		return a.Role == rbac.RoleAccountant &&
			a.UserID == "user-1" &&
			a.CompanyID == "company-1" &&
			a.ID != ""
	})).Return(nil)

	assignment, err := svc.CreateAssignment(context.Background(), CreateAssignmentRequest{
		Role:      30,
		UserID:    "user-1",
		CompanyID: "company-1",
	})

	require.NoError(t, err)
	assert.Equal(t, rbac.RoleAccountant, assignment.Role)
	repo.AssertExpectations(t)
}

func TestCreateAssignmentRejectsUnknownLevel(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.CreateAssignment(context.Background(), CreateAssignmentRequest{
		Role:      15,
		UserID:    "user-1",
		CompanyID: "company-1",
	})

	require.ErrorIs(t, err, core.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdateAssignment(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	existing := &Assignment{
		ID:        "assignment-1",
		Role:      rbac.RoleUser,
		UserID:    "user-1",
		CompanyID: "company-1",
	}

	repo.On("GetByID", mock.Anything, "assignment-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *Assignment) bool {
		return a.Role == rbac.RoleOwner
	})).Return(nil)

	level := 20
	updated, err := svc.UpdateAssignment(
		context.Background(),
		"assignment-1",
		UpdateAssignmentRequest{Role: &level},
	)

	require.NoError(t, err)
	assert.Equal(t, rbac.RoleOwner, updated.Role)
	repo.AssertExpectations(t)
}

func TestUpdateAssignmentRejectsUnknownLevel(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "assignment-1").Return(&Assignment{
		ID:   "assignment-1",
		Role: rbac.RoleUser,
	}, nil)

	level := 55
	_, err := svc.UpdateAssignment(
		context.Background(),
		"assignment-1",
		UpdateAssignmentRequest{Role: &level},
	)

	require.ErrorIs(t, err, core.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateAssignmentNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, core.ErrNotFound)

	level := 0
	_, err := svc.UpdateAssignment(
		context.Background(),
		"missing",
		UpdateAssignmentRequest{Role: &level},
	)

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteAssignment(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, "assignment-1").Return(nil)

	require.NoError(t, svc.DeleteAssignment(context.Background(), "assignment-1"))
	repo.AssertExpectations(t)
}

func TestListAssignmentsPassesFilters(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	roleFilter := rbac.RoleAdmin
	params := ListParams{
		Page:      2,
		PageSize:  10,
		CompanyID: "company-1",
		Role:      &roleFilter,
	}

	repo.On("List", mock.Anything, params).Return([]Assignment{}, 0, nil)

	_, _, err := svc.ListAssignments(context.Background(), params)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
