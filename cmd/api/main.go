package main

import (
	"fmt"
	"net/http"

	"github.com/talentbase/competency-backend-go/internal/config"
	appHTTP "github.com/talentbase/competency-backend-go/internal/handler/http"
	"github.com/talentbase/competency-backend-go/internal/pkg/authtoken"
	"github.com/talentbase/competency-backend-go/internal/pkg/database"
	"github.com/talentbase/competency-backend-go/internal/repository/postgresql"
	employeeService "github.com/talentbase/competency-backend-go/internal/service/employee"
	evaluationService "github.com/talentbase/competency-backend-go/internal/service/evaluation"
	ledgerService "github.com/talentbase/competency-backend-go/internal/service/ledger"
	"github.com/talentbase/competency-backend-go/internal/service/master"
	reportService "github.com/talentbase/competency-backend-go/internal/service/report"
	matrixService "github.com/talentbase/competency-backend-go/internal/service/rolematrix"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	departmentRepo := postgresql.NewDepartmentRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	competencyRepo := postgresql.NewCompetencyRepository(db)
	matrixRepo := postgresql.NewRoleCompetencyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	transactor := postgresql.NewTransactor(db)

	tokenService := authtoken.NewService(cfg.JWT.Secret)

	masterSvc := master.NewMasterService(departmentRepo, roleRepo, competencyRepo, employeeRepo, matrixRepo, ledgerRepo)
	matrixSvc := matrixService.NewRoleMatrixService(roleRepo, competencyRepo, matrixRepo, transactor)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, roleRepo, competencyRepo, matrixRepo, ledgerRepo, transactor)
	ledgerSvc := ledgerService.NewLedgerService(employeeRepo, competencyRepo, ledgerRepo, transactor)
	evaluationSvc := evaluationService.NewEvaluationService(employeeRepo, ledgerRepo, transactor)
	reportSvc := reportService.NewReportService(reportRepo, competencyRepo, departmentRepo)

	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	matrixHandler := appHTTP.NewRoleMatrixHandler(matrixSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	evaluationHandler := appHTTP.NewEvaluationHandler(evaluationSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		tokenService,
		masterHandler,
		matrixHandler,
		employeeHandler,
		ledgerHandler,
		evaluationHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
