package identity

import (
	"context"

	"garments-api/internal/domain/patch"
)

type Repository interface {
	CreateSuperAdmin(ctx context.Context, admin *SuperAdmin) error
	GetSuperAdmin(ctx context.Context, id string) (*SuperAdmin, error)
	GetSuperAdminByEmail(ctx context.Context, email string) (*SuperAdmin, error)
	ListSuperAdmins(ctx context.Context) ([]SuperAdmin, error)
	UpdateSuperAdmin(ctx context.Context, id string, set patch.Set) error
	DeleteSuperAdmin(ctx context.Context, id string) error

	CreateOrganization(ctx context.Context, org *Organization) error
	GetOrganization(ctx context.Context, id string) (*Organization, error)
	ListOrganizations(ctx context.Context) ([]Organization, error)
	UpdateOrganization(ctx context.Context, id string, set patch.Set) error
	DeleteOrganization(ctx context.Context, id string) error

	CreateOrgAdmin(ctx context.Context, admin *OrgAdmin) error
	GetOrgAdmin(ctx context.Context, id string) (*OrgAdminView, error)
	GetOrgAdminByEmail(ctx context.Context, email string) (*OrgAdminView, error)
	ListOrgAdmins(ctx context.Context) ([]OrgAdminView, error)
	ListOrgAdminsByOrg(ctx context.Context, orgID string) ([]OrgAdmin, error)
	UpdateOrgAdmin(ctx context.Context, id string, set patch.Set) error
	DeleteOrgAdmin(ctx context.Context, id string) error

	CreateOrgUser(ctx context.Context, user *OrgUser) error
	GetOrgUser(ctx context.Context, id string) (*OrgUserView, error)
	ListOrgUsers(ctx context.Context) ([]OrgUserView, error)
	ListOrgUsersByOrg(ctx context.Context, orgID string) ([]OrgUser, error)
	UpdateOrgUser(ctx context.Context, id string, set patch.Set) error
	DeleteOrgUser(ctx context.Context, id string) error

	CreateIndividual(ctx context.Context, user *Individual) error
	GetIndividual(ctx context.Context, id string) (*Individual, error)
	GetIndividualByEmail(ctx context.Context, email string) (*Individual, error)
	ListIndividuals(ctx context.Context) ([]Individual, error)
	UpdateIndividual(ctx context.Context, id string, set patch.Set) error
	DeleteIndividual(ctx context.Context, id string) error

	// ResetPassword sets the password hash of the account with email. When
	// clearFirstLogin is set, is_first_login becomes false as well.
	ResetPassword(ctx context.Context, account AccountType, email, passwordHash string, clearFirstLogin bool) error
}
