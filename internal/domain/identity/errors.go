package identity

import "garments-api/internal/domain/apperr"

var (
	ErrSuperAdminNotFound   = apperr.NotFound("super admin not found")
	ErrOrganizationNotFound = apperr.NotFound("organization not found")
	ErrOrgAdminNotFound     = apperr.NotFound("organization admin not found")
	ErrOrgUserNotFound      = apperr.NotFound("organization user not found")
	ErrIndividualNotFound   = apperr.NotFound("individual user not found")
	ErrUserNotFound         = apperr.NotFound("user not found")
	ErrInvalidUserType      = apperr.Validation("invalid user type")
	ErrInvalidCredentials   = apperr.Auth("invalid credentials")
	// bcrypt only reads the first 72 bytes of a password.
	ErrPasswordTooLong      = apperr.Validation("password must be at most 72 bytes")
)
