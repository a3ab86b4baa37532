package catalog

import "garments-api/internal/domain/apperr"

var (
	ErrCategoryNotFound = apperr.NotFound("category not found")
	ErrProductNotFound  = apperr.NotFound("product not found")
)
