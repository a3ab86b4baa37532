package orders

import "garments-api/internal/domain/apperr"

var (
	ErrOrderNotFound  = apperr.NotFound("order not found")
	ErrStatusRequired = apperr.Validation("status is required")
)
