package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talentbase/competency-backend-go/internal/handler/http/response"
	reportservice "github.com/talentbase/competency-backend-go/internal/service/report"
)

type ReportHandler interface {
	GapHistogram(w http.ResponseWriter, r *http.Request)
	GapRanking(w http.ResponseWriter, r *http.Request)
	EmployeeCompetencyDetails(w http.ResponseWriter, r *http.Request)
	DepartmentPerformance(w http.ResponseWriter, r *http.Request)
	OrganizationRanking(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService reportservice.ReportService
}

func NewReportHandler(reportService reportservice.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) GapHistogram(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.GapHistogram(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *reportHandlerImpl) GapRanking(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	results, err := h.reportService.GapRanking(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *reportHandlerImpl) EmployeeCompetencyDetails(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.EmployeeCompetencyDetails(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *reportHandlerImpl) DepartmentPerformance(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result, err := h.reportService.DepartmentPerformance(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) OrganizationRanking(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.OrganizationRanking(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
