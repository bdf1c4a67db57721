package payroll

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	payrollerrors "go-hrms/internal/payroll/errors"
)

type fakePayrollService struct {
	calculateFn func(ctx context.Context, callerEmployeeID, callerRole, employeeID string, month, year int) (PayrollResponse, error)
}

func (f *fakePayrollService) Calculate(ctx context.Context, callerEmployeeID, callerRole, employeeID string, month, year int) (PayrollResponse, error) {
	return f.calculateFn(ctx, callerEmployeeID, callerRole, employeeID, month, year)
}

func TestHandlerCalculate_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	target := uuid.NewString()
	svc := &fakePayrollService{
		calculateFn: func(ctx context.Context, caller, role, employeeID string, month, year int) (PayrollResponse, error) {
			assert.Equal(t, "HR", role)
			assert.Equal(t, target, employeeID)
			assert.Equal(t, 6, month)
			assert.Equal(t, 2026, year)
			return PayrollResponse{
				Month: month,
				Year:  year,
				Summary: PayrollSummary{
					NetSalary: 12000,
				},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/calculate?employee_id="+target+"&month=6&year=2026", nil)
	c.Set("employee_id", uuid.NewString())
	c.Set("role", "HR")

	NewHandler(svc).Calculate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Ok   bool `json:"ok"`
		Data struct {
			Summary struct {
				NetSalary float64 `json:"net_salary"`
			} `json:"summary"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.Equal(t, 12000.0, body.Data.Summary.NetSalary)
}

func TestHandlerCalculate_MissingEmployeeID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		calculateFn: func(ctx context.Context, caller, role, employeeID string, month, year int) (PayrollResponse, error) {
			t.Fatal("service must not be called")
			return PayrollResponse{}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/calculate", nil)

	NewHandler(svc).Calculate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCalculateMine_BindsCallerIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	self := uuid.NewString()
	svc := &fakePayrollService{
		calculateFn: func(ctx context.Context, caller, role, employeeID string, month, year int) (PayrollResponse, error) {
			assert.Equal(t, self, caller)
			assert.Equal(t, self, employeeID)
			assert.Equal(t, 0, month)
			return PayrollResponse{}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/me", nil)
	c.Set("employee_id", self)
	c.Set("role", "EMPLOYEE")

	NewHandler(svc).CalculateMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandlerCalculate_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)

	target := uuid.NewString()
	svc := &fakePayrollService{
		calculateFn: func(ctx context.Context, caller, role, employeeID string, month, year int) (PayrollResponse, error) {
			return PayrollResponse{}, payrollerrors.ErrSalaryInfoNotConfigured
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/calculate?employee_id="+target, nil)
	c.Set("employee_id", target)
	c.Set("role", "EMPLOYEE")

	NewHandler(svc).Calculate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "salary info not configured")
}
