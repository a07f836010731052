package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/evaluation"
	"github.com/talentbase/competency-backend-go/internal/handler/http/response"
	evaluationservice "github.com/talentbase/competency-backend-go/internal/service/evaluation"
)

type EvaluationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	BulkSetStatus(w http.ResponseWriter, r *http.Request)
}

type evaluationHandlerImpl struct {
	evaluationService evaluationservice.EvaluationService
}

func NewEvaluationHandler(evaluationService evaluationservice.EvaluationService) EvaluationHandler {
	return &evaluationHandlerImpl{
		evaluationService: evaluationService,
	}
}

func (h *evaluationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	evaluator, err := access.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req evaluation.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.evaluationService.Submit(r.Context(), number, evaluator, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Evaluation submitted successfully", result)
}

func (h *evaluationHandlerImpl) BulkSetStatus(w http.ResponseWriter, r *http.Request) {
	var req employee.BulkEvaluationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.evaluationService.BulkSetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Evaluation status updated successfully", result)
}
