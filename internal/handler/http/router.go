package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/talentbase/competency-backend-go/internal/config"
	"github.com/talentbase/competency-backend-go/internal/domain/access"
	"github.com/talentbase/competency-backend-go/internal/handler/http/middleware"
	"github.com/talentbase/competency-backend-go/internal/pkg/authtoken"
)

func NewRouter(
	cfg *config.Config,
	tokenService authtoken.Service,
	masterHandler MasterHandler,
	matrixHandler RoleMatrixHandler,
	employeeHandler EmployeeHandler,
	ledgerHandler LedgerHandler,
	evaluationHandler EvaluationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "competency-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.AuthRequired(tokenService.JWTAuth()))

			// Catalog reads are open to any authenticated caller; only
			// mutations are gated.
			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{code}", masterHandler.GetDepartment)
				r.With(middleware.Require(access.PermissionCatalogManage)).Post("/", masterHandler.CreateDepartment)
				r.With(middleware.Require(access.PermissionCatalogManage)).Put("/{code}", masterHandler.UpdateDepartment)
				r.With(middleware.Require(access.PermissionCatalogManage)).Delete("/{code}", masterHandler.DeleteDepartment)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", masterHandler.ListRoles)
				r.Get("/{code}", masterHandler.GetRole)
				r.With(middleware.Require(access.PermissionCatalogManage)).Post("/", masterHandler.CreateRole)
				r.With(middleware.Require(access.PermissionCatalogManage)).Put("/{code}", masterHandler.UpdateRole)
				r.With(middleware.Require(access.PermissionCatalogManage)).Delete("/{code}", masterHandler.DeleteRole)

				r.Route("/{code}/competencies", func(r chi.Router) {
					r.Use(middleware.Require(access.PermissionMatrixManage))
					r.Get("/", matrixHandler.ListCompetencies)
					r.Post("/", matrixHandler.AssignCompetencies)
					r.Delete("/", matrixHandler.UnassignCompetencies)
				})
			})

			r.Route("/competencies", func(r chi.Router) {
				r.Get("/", masterHandler.ListCompetencies)
				r.Get("/{code}", masterHandler.GetCompetency)
				r.With(middleware.Require(access.PermissionCatalogManage)).Post("/", masterHandler.CreateCompetency)
				r.With(middleware.Require(access.PermissionCatalogManage)).Put("/{code}", masterHandler.UpdateCompetency)
				r.With(middleware.Require(access.PermissionCatalogManage)).Delete("/{code}", masterHandler.DeleteCompetency)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.Require(access.PermissionEmployeeManage)).Post("/", employeeHandler.Create)
				r.With(middleware.Require(access.PermissionEmployeeManage)).Post("/import", employeeHandler.Import)
				r.With(middleware.Require(access.PermissionEmployeeList)).Get("/", employeeHandler.List)
				r.With(middleware.Require(access.PermissionEvaluationBulk)).Patch("/evaluation-status", evaluationHandler.BulkSetStatus)

				r.Route("/{number}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.With(middleware.Require(access.PermissionEmployeeManage)).Put("/", employeeHandler.Update)
					r.With(middleware.Require(access.PermissionEmployeeManage)).Delete("/", employeeHandler.Delete)

					r.Route("/competencies", func(r chi.Router) {
						r.Get("/", ledgerHandler.ListForEmployee)
						r.With(middleware.Require(access.PermissionLedgerManage)).Post("/", ledgerHandler.AssignCompetencies)
						r.With(middleware.Require(access.PermissionLedgerManage)).Delete("/", ledgerHandler.RemoveCompetencies)
					})
				})
			})

			r.Route("/evaluations", func(r chi.Router) {
				r.Use(middleware.Require(access.PermissionEvaluationSubmit))
				r.Post("/{number}", evaluationHandler.Submit)
			})

			r.Route("/reports", func(r chi.Router) {
				r.With(middleware.Require(access.PermissionReportGap)).Get("/competency-gaps", reportHandler.GapHistogram)
				r.With(middleware.Require(access.PermissionReportGap)).Get("/competency-gaps/{code}", reportHandler.GapRanking)
				r.With(middleware.Require(access.PermissionReportDetails)).Get("/employee-competencies", reportHandler.EmployeeCompetencyDetails)
				r.With(middleware.Require(access.PermissionReportPerformance)).Get("/department-performance/{code}", reportHandler.DepartmentPerformance)
				r.With(middleware.Require(access.PermissionReportPerformance)).Get("/competency-performance", reportHandler.OrganizationRanking)
			})
		})
	})

	return r
}
