package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/competency-backend-go/internal/config"
	"github.com/talentbase/competency-backend-go/internal/domain/employee"
	"github.com/talentbase/competency-backend-go/internal/domain/master/competency"
	"github.com/talentbase/competency-backend-go/internal/domain/master/department"
	"github.com/talentbase/competency-backend-go/internal/domain/master/role"
	"github.com/talentbase/competency-backend-go/internal/pkg/authtoken"
	"github.com/talentbase/competency-backend-go/internal/repository/memory"
	employeeService "github.com/talentbase/competency-backend-go/internal/service/employee"
	evaluationService "github.com/talentbase/competency-backend-go/internal/service/evaluation"
	ledgerService "github.com/talentbase/competency-backend-go/internal/service/ledger"
	"github.com/talentbase/competency-backend-go/internal/service/master"
	reportService "github.com/talentbase/competency-backend-go/internal/service/report"
	matrixService "github.com/talentbase/competency-backend-go/internal/service/rolematrix"
)

const routerTestSecret = "test-secret-key-for-jwt"

func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: routerTestSecret},
		App: config.AppConfig{Env: "test", FrontendURL: "http://localhost:3000"},
	}

	transactor := store.Transactor()
	masterSvc := master.NewMasterService(store.Departments(), store.Roles(), store.Competencies(), store.Employees(), store.RoleCompetencies(), store.Ledger())
	matrixSvc := matrixService.NewRoleMatrixService(store.Roles(), store.Competencies(), store.RoleCompetencies(), transactor)
	employeeSvc := employeeService.NewEmployeeService(store.Employees(), store.Departments(), store.Roles(), store.Competencies(), store.RoleCompetencies(), store.Ledger(), transactor)
	ledgerSvc := ledgerService.NewLedgerService(store.Employees(), store.Competencies(), store.Ledger(), transactor)
	evaluationSvc := evaluationService.NewEvaluationService(store.Employees(), store.Ledger(), transactor)
	reportSvc := reportService.NewReportService(store.Reports(), store.Competencies(), store.Departments())

	router := NewRouter(
		cfg,
		authtoken.NewService(cfg.JWT.Secret),
		NewMasterHandler(masterSvc),
		NewRoleMatrixHandler(matrixSvc),
		NewEmployeeHandler(employeeSvc),
		NewLedgerHandler(ledgerSvc),
		NewEvaluationHandler(evaluationSvc),
		NewReportHandler(reportSvc),
	)
	return router, store
}

func mintToken(t *testing.T, sub, roleName, departmentCode string) string {
	t.Helper()
	ja := jwtauth.New("HS256", []byte(routerTestSecret), nil)
	claims := map[string]interface{}{"sub": sub, "role": roleName}
	if departmentCode != "" {
		claims["department_code"] = departmentCode
	}
	_, token, err := ja.Encode(claims)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterRejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/departments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterRejectsTokenWithoutIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	ja := jwtauth.New("HS256", []byte(routerTestSecret), nil)
	_, token, err := ja.Encode(map[string]interface{}{"sub": "E001"}) // no role claim
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/departments", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterEnforcesAllowLists(t *testing.T) {
	router, _ := newTestRouter(t)

	body := map[string]string{"department_code": "ENG", "name": "Engineering"}

	rec := doRequest(t, router, http.MethodPost, "/api/v1/departments", mintToken(t, "E001", "EMPLOYEE", "ENG"), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/departments", mintToken(t, "H001", "HR", ""), body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Authenticated catalog reads are open to every role.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/departments", mintToken(t, "E001", "EMPLOYEE", "ENG"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterScopesEmployeeList(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	_, err := store.Departments().Create(ctx, department.Department{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)
	_, err = store.Departments().Create(ctx, department.Department{Code: "FIN", Name: "Finance"})
	require.NoError(t, err)
	for _, e := range []employee.Employee{
		{EmployeeNumber: "E001", EmployeeName: "Dana", DepartmentCode: "ENG"},
		{EmployeeNumber: "E002", EmployeeName: "Kim", DepartmentCode: "FIN"},
	} {
		_, err := store.Employees().Create(ctx, e)
		require.NoError(t, err)
	}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees", mintToken(t, "M001", "HOD", "ENG"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data []employee.EmployeeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Data, 1)
	assert.Equal(t, "E001", payload.Data[0].EmployeeNumber)

	// EMPLOYEE role cannot list at all.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees", mintToken(t, "E001", "EMPLOYEE", "ENG"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouterValidationAndConflictStatuses(t *testing.T) {
	router, _ := newTestRouter(t)
	hr := mintToken(t, "H001", "HR", "")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/competencies", hr, map[string]interface{}{"code": "", "name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := map[string]interface{}{"code": "GO", "name": "Go", "required_score": 4}
	rec = doRequest(t, router, http.MethodPost, "/api/v1/competencies", hr, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/competencies", hr, body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/competencies/NOPE", hr, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterEvaluationFlow(t *testing.T) {
	router, store := newTestRouter(t)
	ctx := context.Background()

	_, err := store.Departments().Create(ctx, department.Department{Code: "ENG", Name: "Engineering"})
	require.NoError(t, err)
	_, err = store.Roles().Create(ctx, role.Role{Code: "DEV", Name: "Developer"})
	require.NoError(t, err)
	_, err = store.Competencies().Create(ctx, competency.Competency{Code: "GO", Name: "Go", RequiredScore: 4})
	require.NoError(t, err)
	for _, e := range []employee.Employee{
		{EmployeeNumber: "E001", EmployeeName: "Dana", RoleCode: "DEV", DepartmentCode: "ENG"},
		{EmployeeNumber: "M001", EmployeeName: "Morgan", RoleCode: "DEV", DepartmentCode: "ENG"},
	} {
		_, err := store.Employees().Create(ctx, e)
		require.NoError(t, err)
	}

	hr := mintToken(t, "H001", "HR", "")
	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees/E001/competencies", hr, map[string]interface{}{
		"competency_codes": []string{"GO"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// HR may not submit evaluations.
	submitBody := map[string]interface{}{
		"scores": []map[string]interface{}{{"competency_code": "GO", "actual_score": 3}},
	}
	rec = doRequest(t, router, http.MethodPost, "/api/v1/evaluations/E001", hr, submitBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/evaluations/E001", mintToken(t, "M001", "HOD", "ENG"), submitBody)
	require.Equal(t, http.StatusOK, rec.Code)

	evaluated, err := store.Employees().GetByNumber(ctx, "E001")
	require.NoError(t, err)
	assert.True(t, evaluated.EvaluationStatus)
	require.NotNil(t, evaluated.EvaluationBy)
	assert.Equal(t, "Morgan", *evaluated.EvaluationBy)
}
