package measurement

import "garments-api/internal/domain/apperr"

var (
	ErrTypeNotFound        = apperr.NotFound("measurement type not found")
	ErrMeasurementNotFound = apperr.NotFound("measurement not found")
	ErrValuesRequired      = apperr.Validation("values must be a non-empty list")
)
