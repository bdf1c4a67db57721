package payrollerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrSalaryInfoNotConfigured = apperror.New(
		apperror.CodeNotFound,
		"salary info not configured for this employee",
		http.StatusNotFound,
	)
	ErrComponentsNotConfigured = apperror.New(
		apperror.CodeNotFound,
		"salary components not configured for this employee",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"you may only view your own payroll",
		http.StatusForbidden,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
