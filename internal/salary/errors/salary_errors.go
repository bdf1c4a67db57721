package salaryerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrSalaryInfoNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary info not configured for this employee",
		http.StatusNotFound,
	)
	ErrComponentsNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary components not configured for this employee",
		http.StatusNotFound,
	)
	ErrUnknownComponentType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown salary component type",
		http.StatusBadRequest,
	)
	ErrPercentageFieldsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"percentage components require percentage_value and percentage_base",
		http.StatusBadRequest,
	)
	ErrFixedAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"fixed components require fixed_amount",
		http.StatusBadRequest,
	)
)
