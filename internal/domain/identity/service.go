package identity

import (
	"context"

	"garments-api/internal/domain/patch"
	"garments-api/pkg/idgen"
)

var (
	superAdminFields = []patch.Field{
		{Key: "name", Kind: patch.String},
		{Key: "email", Kind: patch.String},
		{Key: "password", Kind: patch.String},
	}
	organizationFields = []patch.Field{
		{Key: "name", Kind: patch.String},
		{Key: "pan", Kind: patch.String},
		{Key: "email", Kind: patch.String},
		{Key: "phone", Kind: patch.String},
		{Key: "address", Kind: patch.String},
		{Key: "gstin", Kind: patch.String},
		{Key: "logo", Kind: patch.NullableString},
	}
	orgAdminFields = []patch.Field{
		{Key: "org_id", Kind: patch.String},
		{Key: "name", Kind: patch.String},
		{Key: "email", Kind: patch.String},
		{Key: "password", Kind: patch.String},
	}
	orgUserFields = []patch.Field{
		{Key: "org_id", Kind: patch.String},
		{Key: "name", Kind: patch.String},
		{Key: "email", Kind: patch.String},
		{Key: "phone", Kind: patch.String},
		{Key: "address", Kind: patch.String},
		{Key: "age", Kind: patch.NullableInt},
		{Key: "department", Kind: patch.NullableString},
	}
	individualFields = []patch.Field{
		{Key: "name", Kind: patch.String},
		{Key: "email", Kind: patch.String},
		{Key: "password", Kind: patch.String},
		{Key: "phone", Kind: patch.String},
		{Key: "address", Kind: patch.String},
		{Key: "age", Kind: patch.NullableInt},
	}
)

type Service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) CreateSuperAdmin(ctx context.Context, input CreateSuperAdminInput) (*SuperAdmin, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	admin := SuperAdmin{
		ID:           idgen.New(idgen.PrefixSuperAdmin),
		Name:         input.Name,
		Email:        input.Email,
		Password:     hash,
		IsFirstLogin: true,
	}
	if err := s.repo.CreateSuperAdmin(ctx, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *Service) GetSuperAdmin(ctx context.Context, id string) (*SuperAdmin, error) {
	return s.repo.GetSuperAdmin(ctx, id)
}

func (s *Service) ListSuperAdmins(ctx context.Context) ([]SuperAdmin, error) {
	return s.repo.ListSuperAdmins(ctx)
}

func (s *Service) UpdateSuperAdmin(ctx context.Context, id string, changes map[string]any) error {
	set, err := s.prepare(changes, superAdminFields)
	if err != nil {
		return err
	}
	return s.repo.UpdateSuperAdmin(ctx, id, set)
}

func (s *Service) DeleteSuperAdmin(ctx context.Context, id string) error {
	return s.repo.DeleteSuperAdmin(ctx, id)
}

func (s *Service) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*Organization, error) {
	org := Organization{
		ID:        idgen.New(idgen.PrefixOrganization),
		Name:      input.Name,
		PAN:       input.PAN,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		GSTIN:     input.GSTIN,
		Logo:      input.Logo,
		CreatedBy: input.CreatedBy,
	}
	if err := s.repo.CreateOrganization(ctx, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *Service) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	return s.repo.GetOrganization(ctx, id)
}

func (s *Service) ListOrganizations(ctx context.Context) ([]Organization, error) {
	return s.repo.ListOrganizations(ctx)
}

func (s *Service) UpdateOrganization(ctx context.Context, id string, changes map[string]any) error {
	set, err := s.prepare(changes, organizationFields)
	if err != nil {
		return err
	}
	return s.repo.UpdateOrganization(ctx, id, set)
}

// DeleteOrganization removes the organization together with its admins and
// users.
func (s *Service) DeleteOrganization(ctx context.Context, id string) error {
	return s.repo.DeleteOrganization(ctx, id)
}

func (s *Service) CreateOrgAdmin(ctx context.Context, input CreateOrgAdminInput) (*OrgAdmin, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	admin := OrgAdmin{
		ID:           idgen.New(idgen.PrefixOrgAdmin),
		OrgID:        input.OrgID,
		Name:         input.Name,
		Email:        input.Email,
		Password:     hash,
		IsFirstLogin: true,
	}
	if err := s.repo.CreateOrgAdmin(ctx, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *Service) GetOrgAdmin(ctx context.Context, id string) (*OrgAdminView, error) {
	return s.repo.GetOrgAdmin(ctx, id)
}

func (s *Service) ListOrgAdmins(ctx context.Context) ([]OrgAdminView, error) {
	return s.repo.ListOrgAdmins(ctx)
}

func (s *Service) ListOrgAdminsByOrg(ctx context.Context, orgID string) ([]OrgAdmin, error) {
	return s.repo.ListOrgAdminsByOrg(ctx, orgID)
}

func (s *Service) UpdateOrgAdmin(ctx context.Context, id string, changes map[string]any) error {
	set, err := s.prepare(changes, orgAdminFields)
	if err != nil {
		return err
	}
	return s.repo.UpdateOrgAdmin(ctx, id, set)
}

func (s *Service) DeleteOrgAdmin(ctx context.Context, id string) error {
	return s.repo.DeleteOrgAdmin(ctx, id)
}

func (s *Service) CreateOrgUser(ctx context.Context, input CreateOrgUserInput) (*OrgUser, error) {
	user := OrgUser{
		ID:         idgen.New(idgen.PrefixOrgUser),
		OrgID:      input.OrgID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		Age:        input.Age,
		Department: input.Department,
		CreatedBy:  input.CreatedBy,
	}
	if err := s.repo.CreateOrgUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetOrgUser(ctx context.Context, id string) (*OrgUserView, error) {
	return s.repo.GetOrgUser(ctx, id)
}

func (s *Service) ListOrgUsers(ctx context.Context) ([]OrgUserView, error) {
	return s.repo.ListOrgUsers(ctx)
}

func (s *Service) ListOrgUsersByOrg(ctx context.Context, orgID string) ([]OrgUser, error) {
	return s.repo.ListOrgUsersByOrg(ctx, orgID)
}

func (s *Service) UpdateOrgUser(ctx context.Context, id string, changes map[string]any) error {
	set, err := s.prepare(changes, orgUserFields)
	if err != nil {
		return err
	}
	return s.repo.UpdateOrgUser(ctx, id, set)
}

// DeleteOrgUser leaves the user's measurements and orders in place.
func (s *Service) DeleteOrgUser(ctx context.Context, id string) error {
	return s.repo.DeleteOrgUser(ctx, id)
}

func (s *Service) CreateIndividual(ctx context.Context, input CreateIndividualInput) (*Individual, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := Individual{
		ID:       idgen.New(idgen.PrefixIndividual),
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Phone:    input.Phone,
		Address:  input.Address,
		Age:      input.Age,
	}
	if err := s.repo.CreateIndividual(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetIndividual(ctx context.Context, id string) (*Individual, error) {
	return s.repo.GetIndividual(ctx, id)
}

func (s *Service) ListIndividuals(ctx context.Context) ([]Individual, error) {
	return s.repo.ListIndividuals(ctx)
}

func (s *Service) UpdateIndividual(ctx context.Context, id string, changes map[string]any) error {
	set, err := s.prepare(changes, individualFields)
	if err != nil {
		return err
	}
	return s.repo.UpdateIndividual(ctx, id, set)
}

// DeleteIndividual leaves the user's measurements and orders in place.
func (s *Service) DeleteIndividual(ctx context.Context, id string) error {
	return s.repo.DeleteIndividual(ctx, id)
}

// prepare filters changes to the whitelist and hashes a new password.
func (s *Service) prepare(changes map[string]any, fields []patch.Field) (patch.Set, error) {
	set, err := patch.Apply(changes, fields)
	if err != nil {
		return nil, err
	}
	if set.Has("password") {
		hash, err := s.hasher.Hash(set["password"].(string))
		if err != nil {
			return nil, err
		}
		set["password"] = hash
	}
	return set, nil
}
