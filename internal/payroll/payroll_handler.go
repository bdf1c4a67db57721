package payroll

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Calculate serves HR (any employee) and self-service (own id only)
// payroll queries; the service enforces the HR-or-self gate.
func (h *Handler) Calculate(c *gin.Context) {
	var q CalculateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Calculate(
		c.Request.Context(),
		c.GetString("employee_id"),
		c.GetString("role"),
		q.EmployeeID,
		q.Month,
		q.Year,
	)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CalculateMine(c *gin.Context) {
	var q MyPayrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	employeeID := c.GetString("employee_id")
	resp, err := h.service.Calculate(
		c.Request.Context(),
		employeeID,
		c.GetString("role"),
		employeeID,
		q.Month,
		q.Year,
	)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
