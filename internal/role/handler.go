// AngelaMos | 2026
// handler.go

package role

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fintrack-dev/fintrack-api/internal/core"
	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the assignment CRUD. The whole subtree sits
// behind the manage-roles guard.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, manageRoles func(http.Handler) http.Handler,
) {
	r.Route("/roles", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(manageRoles)

		r.Get("/", h.ListAssignments)
		r.Post("/", h.CreateAssignment)
		r.Get("/{assignmentID}", h.GetAssignment)
		r.Patch("/{assignmentID}", h.UpdateAssignment)
		r.Delete("/{assignmentID}", h.DeleteAssignment)
	})
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	assignment, err := h.service.CreateAssignment(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "unknown role level")
			return
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("role assignment"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToAssignmentResponse(assignment))
}

func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	assignment, err := h.service.GetAssignment(r.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "role assignment")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAssignmentResponse(assignment))
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	var req UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	assignment, err := h.service.UpdateAssignment(r.Context(), assignmentID, req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "unknown role level")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "role assignment")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAssignmentResponse(assignment))
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")

	if err := h.service.DeleteAssignment(r.Context(), assignmentID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "role assignment")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Page:      parseIntQuery(r, "page", 1),
		PageSize:  parseIntQuery(r, "limit", 20),
		UserID:    r.URL.Query().Get("user_id"),
		CompanyID: r.URL.Query().Get("company_id"),
	}

	if raw := r.URL.Query().Get("role"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			core.BadRequest(w, "role must be a numeric role level")
			return
		}
		role, ok := rbac.ParseRole(level)
		if !ok {
			core.BadRequest(w, "unknown role level")
			return
		}
		params.Role = &role
	}

	params.Normalize()

	assignments, total, err := h.service.ListAssignments(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, NewListResponse(assignments, total, params, r.URL))
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
