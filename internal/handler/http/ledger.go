package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talentbase/competency-backend-go/internal/domain/ledger"
	"github.com/talentbase/competency-backend-go/internal/handler/http/response"
	ledgerservice "github.com/talentbase/competency-backend-go/internal/service/ledger"
)

type LedgerHandler interface {
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	AssignCompetencies(w http.ResponseWriter, r *http.Request)
	RemoveCompetencies(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledgerservice.LedgerService
}

func NewLedgerHandler(ledgerService ledgerservice.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
	}
}

func (h *ledgerHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	results, err := h.ledgerService.GetForEmployee(r.Context(), number)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *ledgerHandlerImpl) AssignCompetencies(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req ledger.AssignCompetenciesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.Assign(r.Context(), number, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Competencies assigned successfully", result)
}

func (h *ledgerHandlerImpl) RemoveCompetencies(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req ledger.RemoveCompetenciesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.Remove(r.Context(), number, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Competencies removed successfully", result)
}
