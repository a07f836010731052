package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/rolematrix"
	"github.com/talentbase/competency-backend-go/internal/handler/http/response"
	matrixservice "github.com/talentbase/competency-backend-go/internal/service/rolematrix"
)

type RoleMatrixHandler interface {
	ListCompetencies(w http.ResponseWriter, r *http.Request)
	AssignCompetencies(w http.ResponseWriter, r *http.Request)
	UnassignCompetencies(w http.ResponseWriter, r *http.Request)
}

type roleMatrixHandlerImpl struct {
	matrixService matrixservice.RoleMatrixService
}

func NewRoleMatrixHandler(matrixService matrixservice.RoleMatrixService) RoleMatrixHandler {
	return &roleMatrixHandlerImpl{
		matrixService: matrixService,
	}
}

func (h *roleMatrixHandlerImpl) ListCompetencies(w http.ResponseWriter, r *http.Request) {
	roleCode := chi.URLParam(r, "code")

	results, err := h.matrixService.ListByRole(r.Context(), roleCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *roleMatrixHandlerImpl) AssignCompetencies(w http.ResponseWriter, r *http.Request) {
	roleCode := chi.URLParam(r, "code")

	var req rolematrix.AssignCompetenciesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.matrixService.Assign(r.Context(), roleCode, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Competencies assigned successfully", result)
}

func (h *roleMatrixHandlerImpl) UnassignCompetencies(w http.ResponseWriter, r *http.Request) {
	roleCode := chi.URLParam(r, "code")

	var req rolematrix.UnassignCompetenciesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.matrixService.Unassign(r.Context(), roleCode, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Competencies unassigned successfully", result)
}
