package identity

import (
	"context"
	"errors"
	"time"

	"garments-api/internal/db"
	identitydomain "garments-api/internal/domain/identity"
	"garments-api/internal/domain/patch"
	"gorm.io/gorm"
)

const (
	orgAdminViewSelect = "org_admins.*, organizations.name AS org_name"
	orgAdminViewJoin   = "JOIN organizations ON organizations.id = org_admins.org_id"
	orgUserViewSelect  = "org_users.*, organizations.name AS org_name"
	orgUserViewJoin    = "JOIN organizations ON organizations.id = org_users.org_id"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateSuperAdmin(ctx context.Context, admin *identitydomain.SuperAdmin) error {
	return db.TranslateError("super_admins.create", r.db.WithContext(ctx).Create(admin).Error)
}

func (r *PostgresRepository) GetSuperAdmin(ctx context.Context, id string) (*identitydomain.SuperAdmin, error) {
	var admin identitydomain.SuperAdmin
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&admin).Error; err != nil {
		return nil, notFound("super_admins.get", err, identitydomain.ErrSuperAdminNotFound)
	}
	return &admin, nil
}

func (r *PostgresRepository) GetSuperAdminByEmail(ctx context.Context, email string) (*identitydomain.SuperAdmin, error) {
	var admin identitydomain.SuperAdmin
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&admin).Error; err != nil {
		return nil, notFound("super_admins.get_by_email", err, identitydomain.ErrSuperAdminNotFound)
	}
	return &admin, nil
}

func (r *PostgresRepository) ListSuperAdmins(ctx context.Context) ([]identitydomain.SuperAdmin, error) {
	var admins []identitydomain.SuperAdmin
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&admins).Error; err != nil {
		return nil, db.TranslateError("super_admins.list", err)
	}
	return admins, nil
}

func (r *PostgresRepository) UpdateSuperAdmin(ctx context.Context, id string, set patch.Set) error {
	return r.update(ctx, "super_admins.update", &identitydomain.SuperAdmin{}, id, set)
}

func (r *PostgresRepository) DeleteSuperAdmin(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&identitydomain.SuperAdmin{}).Error
	return db.TranslateError("super_admins.delete", err)
}

func (r *PostgresRepository) CreateOrganization(ctx context.Context, org *identitydomain.Organization) error {
	return db.TranslateError("organizations.create", r.db.WithContext(ctx).Create(org).Error)
}

func (r *PostgresRepository) GetOrganization(ctx context.Context, id string) (*identitydomain.Organization, error) {
	var org identitydomain.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&org).Error; err != nil {
		return nil, notFound("organizations.get", err, identitydomain.ErrOrganizationNotFound)
	}
	return &org, nil
}

func (r *PostgresRepository) ListOrganizations(ctx context.Context) ([]identitydomain.Organization, error) {
	var orgs []identitydomain.Organization
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&orgs).Error; err != nil {
		return nil, db.TranslateError("organizations.list", err)
	}
	return orgs, nil
}

func (r *PostgresRepository) UpdateOrganization(ctx context.Context, id string, set patch.Set) error {
	return r.update(ctx, "organizations.update", &identitydomain.Organization{}, id, set)
}

func (r *PostgresRepository) DeleteOrganization(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&identitydomain.Organization{}).Error
	return db.TranslateError("organizations.delete", err)
}

func (r *PostgresRepository) CreateOrgAdmin(ctx context.Context, admin *identitydomain.OrgAdmin) error {
	return db.TranslateError("org_admins.create", r.db.WithContext(ctx).Create(admin).Error)
}

func (r *PostgresRepository) GetOrgAdmin(ctx context.Context, id string) (*identitydomain.OrgAdminView, error) {
	return r.takeOrgAdmin(ctx, "org_admins.get", "org_admins.id = ?", id)
}

func (r *PostgresRepository) GetOrgAdminByEmail(ctx context.Context, email string) (*identitydomain.OrgAdminView, error) {
	return r.takeOrgAdmin(ctx, "org_admins.get_by_email", "org_admins.email = ?", email)
}

func (r *PostgresRepository) takeOrgAdmin(ctx context.Context, op, where string, arg string) (*identitydomain.OrgAdminView, error) {
	var view identitydomain.OrgAdminView
	err := r.db.WithContext(ctx).
		Table("org_admins").
		Select(orgAdminViewSelect).
		Joins(orgAdminViewJoin).
		Where(where, arg).
		Take(&view).Error
	if err != nil {
		return nil, notFound(op, err, identitydomain.ErrOrgAdminNotFound)
	}
	return &view, nil
}

func (r *PostgresRepository) ListOrgAdmins(ctx context.Context) ([]identitydomain.OrgAdminView, error) {
	var views []identitydomain.OrgAdminView
	err := r.db.WithContext(ctx).
		Table("org_admins").
		Select(orgAdminViewSelect).
		Joins(orgAdminViewJoin).
		Order("org_admins.created_at desc").
		Find(&views).Error
	if err != nil {
		return nil, db.TranslateError("org_admins.list", err)
	}
	return views, nil
}

func (r *PostgresRepository) ListOrgAdminsByOrg(ctx context.Context, orgID string) ([]identitydomain.OrgAdmin, error) {
	var admins []identitydomain.OrgAdmin
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("created_at desc").Find(&admins).Error; err != nil {
		return nil, db.TranslateError("org_admins.list_by_org", err)
	}
	return admins, nil
}

func (r *PostgresRepository) UpdateOrgAdmin(ctx context.Context, id string, set patch.Set) error {
	return r.update(ctx, "org_admins.update", &identitydomain.OrgAdmin{}, id, set)
}

func (r *PostgresRepository) DeleteOrgAdmin(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&identitydomain.OrgAdmin{}).Error
	return db.TranslateError("org_admins.delete", err)
}

func (r *PostgresRepository) CreateOrgUser(ctx context.Context, user *identitydomain.OrgUser) error {
	return db.TranslateError("org_users.create", r.db.WithContext(ctx).Create(user).Error)
}

func (r *PostgresRepository) GetOrgUser(ctx context.Context, id string) (*identitydomain.OrgUserView, error) {
	var view identitydomain.OrgUserView
	err := r.db.WithContext(ctx).
		Table("org_users").
		Select(orgUserViewSelect).
		Joins(orgUserViewJoin).
		Where("org_users.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, notFound("org_users.get", err, identitydomain.ErrOrgUserNotFound)
	}
	return &view, nil
}

func (r *PostgresRepository) ListOrgUsers(ctx context.Context) ([]identitydomain.OrgUserView, error) {
	var views []identitydomain.OrgUserView
	err := r.db.WithContext(ctx).
		Table("org_users").
		Select(orgUserViewSelect).
		Joins(orgUserViewJoin).
		Order("org_users.created_at desc").
		Find(&views).Error
	if err != nil {
		return nil, db.TranslateError("org_users.list", err)
	}
	return views, nil
}

func (r *PostgresRepository) ListOrgUsersByOrg(ctx context.Context, orgID string) ([]identitydomain.OrgUser, error) {
	var users []identitydomain.OrgUser
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, db.TranslateError("org_users.list_by_org", err)
	}
	return users, nil
}

func (r *PostgresRepository) UpdateOrgUser(ctx context.Context, id string, set patch.Set) error {
	return r.update(ctx, "org_users.update", &identitydomain.OrgUser{}, id, set)
}

func (r *PostgresRepository) DeleteOrgUser(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&identitydomain.OrgUser{}).Error
	return db.TranslateError("org_users.delete", err)
}

func (r *PostgresRepository) CreateIndividual(ctx context.Context, user *identitydomain.Individual) error {
	return db.TranslateError("individuals.create", r.db.WithContext(ctx).Create(user).Error)
}

func (r *PostgresRepository) GetIndividual(ctx context.Context, id string) (*identitydomain.Individual, error) {
	var user identitydomain.Individual
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, notFound("individuals.get", err, identitydomain.ErrIndividualNotFound)
	}
	return &user, nil
}

func (r *PostgresRepository) GetIndividualByEmail(ctx context.Context, email string) (*identitydomain.Individual, error) {
	var user identitydomain.Individual
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, notFound("individuals.get_by_email", err, identitydomain.ErrIndividualNotFound)
	}
	return &user, nil
}

func (r *PostgresRepository) ListIndividuals(ctx context.Context) ([]identitydomain.Individual, error) {
	var users []identitydomain.Individual
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, db.TranslateError("individuals.list", err)
	}
	return users, nil
}

func (r *PostgresRepository) UpdateIndividual(ctx context.Context, id string, set patch.Set) error {
	return r.update(ctx, "individuals.update", &identitydomain.Individual{}, id, set)
}

func (r *PostgresRepository) DeleteIndividual(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&identitydomain.Individual{}).Error
	return db.TranslateError("individuals.delete", err)
}

func (r *PostgresRepository) ResetPassword(ctx context.Context, account identitydomain.AccountType, email, passwordHash string, clearFirstLogin bool) error {
	var table string
	switch account {
	case identitydomain.AccountSuperAdmin:
		table = "super_admins"
	case identitydomain.AccountOrgAdmin:
		table = "org_admins"
	case identitydomain.AccountIndividual:
		table = "individuals"
	default:
		return identitydomain.ErrInvalidUserType
	}

	values := map[string]any{
		"password":   passwordHash,
		"updated_at": time.Now().UTC(),
	}
	if clearFirstLogin {
		values["is_first_login"] = false
	}
	err := r.db.WithContext(ctx).Table(table).Where("email = ?", email).Updates(values).Error
	return db.TranslateError(table+".reset_password", err)
}

func (r *PostgresRepository) update(ctx context.Context, op string, model any, id string, set patch.Set) error {
	return db.UpdateByID(ctx, r.db, op, model, id, set)
}

func notFound(op string, err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return db.TranslateError(op, err)
}
