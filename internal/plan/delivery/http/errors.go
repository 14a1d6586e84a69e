package http

import (
	"errors"

	"cooked-flow/internal/plan"
	pkgErrors "cooked-flow/pkg/errors"
	"cooked-flow/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var missing *plan.MissingColumnsError
	if errors.As(err, &missing) {
		return pkgErrors.NewHTTPError(400, missing.Error())
	}

	switch {
	case errors.Is(err, plan.ErrInvalidWeight):
		return pkgErrors.NewHTTPError(400, plan.ErrInvalidWeight.Error())
	case errors.Is(err, plan.ErrEmptyFile):
		return pkgErrors.NewHTTPError(400, plan.ErrEmptyFile.Error())
	case errors.Is(err, plan.ErrPlanNotFound):
		return pkgErrors.NewHTTPError(404, plan.ErrPlanNotFound.Error())
	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
